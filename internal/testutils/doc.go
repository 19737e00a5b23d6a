// Package testutils provides helpers shared by tests across packages: a
// capturing slog handler and a real JWT service with a test-only secret.
// It must only be imported from _test.go files.
package testutils

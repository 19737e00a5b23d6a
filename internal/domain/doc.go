// Package domain contains the core business entities of the restaurant API:
// restaurants, their menu items, and the caller identity derived from an
// authentication token. It has no knowledge of HTTP or of any particular
// storage engine.
package domain

// Package api handles incoming HTTP requests, request validation, and
// response formatting for restaurants and their menus. It acts as an adapter
// between HTTP clients and the restaurant service, translating service errors
// into status codes and safe messages.
package api

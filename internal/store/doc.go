// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. Implementations live under
// internal/platform (mongo for the document database, sqlstore for
// postgres and sqlite).
//
// Implementations must return ErrRestaurantNotFound or ErrMenuItemNotFound
// for absent entities (including ids the backend cannot parse) and wrap
// every other failure in a *StoreError.
package store

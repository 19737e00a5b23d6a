// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// RestaurantService is the single use-case boundary used by the HTTP
// handlers. It validates input through the domain constructors, maps store
// errors to service sentinels, and performs the restaurant cascade delete as
// two sequential store calls: the restaurant first, then its menu items. A
// failure of the second call is reported as a *CascadeDeleteError and logged
// with the restaurant id so orphaned items can be found.
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service

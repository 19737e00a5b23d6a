// Package mongodb implements the store interfaces on top of MongoDB using the
// official mongo-driver. It is the default persistence backend.
//
// Restaurants live in the "restaurants" collection and menu items in
// "menuitems", keyed by ObjectID. Menu items reference their restaurant
// through an ObjectID restaurant_id field. Ids that are not 24-character hex
// strings cannot name a document, so lookups with them report not found.
package mongodb

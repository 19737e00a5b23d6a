// Package sqlstore implements the store interfaces on top of database/sql for
// PostgreSQL (through the pgx stdlib driver) and SQLite (through the pure-Go
// modernc driver).
//
// Queries are built with squirrel so the same store code serves both
// dialects; only the placeholder format differs. The schema is applied with
// goose from migrations embedded in the binary. Ids are UUID strings
// generated by the store.
package sqlstore

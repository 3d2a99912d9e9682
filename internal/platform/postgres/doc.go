// Package postgres implements the store interfaces on PostgreSQL using
// database/sql with the pgx driver, plus the lazily-established shared
// connection handle the request pipeline depends on.
package postgres

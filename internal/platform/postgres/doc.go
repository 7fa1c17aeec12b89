// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles query construction, execution, and mapping between domain
// entities and database rows. Dynamic statements (sparse updates, task
// filters) are built with squirrel using dollar placeholders.
package postgres

// Package pgstore implements ports.TaskStore on PostgreSQL using a pgx
// connection pool. The schema is managed by goose migrations embedded in
// the binary.
package pgstore

// Package storage declares persistence contracts for web-owned state: the
// query cache behind gateway reads and the server-side session table.
//
// Cache rows are derived from backend responses and can always be rebuilt.
package storage

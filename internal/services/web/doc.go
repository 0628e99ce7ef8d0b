// Package web hosts the course catalog front-end: server-rendered pages
// composed from feature modules, backed by the content API through the
// gateway and by a SQLite store for the query cache and sessions.
package web

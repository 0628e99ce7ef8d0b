// Package gateway is the single path from web handlers to the backend REST
// API.
//
// Every call carries the request's bearer token, decodes the
// {data, statusCode, message} envelope, and turns failures into user notices
// instead of errors that callers must handle. Reads can go through a
// key-addressed query cache; successful writes invalidate cache keys.
package gateway

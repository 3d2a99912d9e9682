// Package api contains the HTTP handlers for authentication, articles,
// and comments, plus the request/response models they exchange. Handlers
// return errors instead of writing error responses; translation to HTTP
// happens once, in the middleware package.
package api

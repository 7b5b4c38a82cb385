// Package api contains the HTTP handlers for the gateway's /api routes:
// authentication, users, albums and photos. Handlers decode and validate
// request DTOs, call the services, and translate service errors into
// status codes and safe messages via MapErrorToStatusCode and
// GetSafeErrorMessage.
package api

// Package handler implements the HTTP layer for the referral API.
//
// Handlers are thin: they decode the request, call a service method, and
// translate the result (or error) to a JSON response. No business logic
// lives here.
//
// # Handlers
//
//   - AuthHandler: POST /authenticate, the combined login/registration entry
//   - UserHandler: GET /users/me and the paged GET /users listing
//   - EventsHandler: GET /stream, live domain events over SSE
//   - HealthHandler: GET /health liveness probe
//
// # Error Responses
//
// All errors share the flat shape {"error": "message"} with fixed messages;
// MapServiceError owns the translation from service sentinels to status
// codes.
package handler

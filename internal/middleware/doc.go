// Package middleware provides HTTP middleware for the referral API.
//
// The middleware package contains reusable middleware components for
// authentication and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: bearer token validation plus a store lookup of the subject
//   - RequestID: unique request identifier generation and propagation
//   - Logger: structured request logging
//   - Recovery: panic recovery with a uniform 500 response
//   - CORS: cross-origin request handling
//
// # Authentication
//
// The auth middleware validates the token and re-resolves the subject
// against the store, so revoked users are rejected even with a valid token:
//
//	protected := middleware.Auth(tokenService, authService)(mux)
//
// After authentication, handlers can access the user:
//
//	user := middleware.GetUser(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUser(ctx): Returns the authenticated user
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware

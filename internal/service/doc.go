// Package service implements the business logic layer for the referral API.
//
// The service package contains all domain logic and orchestration of
// repository operations. Services are the primary abstraction between HTTP
// handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Components
//
//   - AuthService: the authenticate-or-register flow, user lookups, listing
//   - TokenService: issuing and verifying signed identity tokens
//   - InviteCodeGenerator: candidate invite codes from the username
//   - EventHub: in-process broadcast of domain events to live subscribers
package service

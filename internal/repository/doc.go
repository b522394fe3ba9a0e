// Package repository implements the data access layer for the killpowa API.
//
// The user repository is the only store surface the service layer sees:
// lookup by username, lookup by invite code, create, and a paged search.
// All interactions use parameterized SurrealQL ($variable syntax); results
// are unwrapped from the SurrealDB response envelope and mapped to model
// structs by hand, since row field names (snake_case) differ from the
// external JSON shape.
//
// The referral count is a derived attribute: every read recomputes it with a
// subquery over referred_by back-references. Uniqueness of username and
// invite_code is enforced by store-level unique indexes (see schema.surql);
// violations are normalized to database.ErrDuplicate.
package repository

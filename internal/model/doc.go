// Package model defines the domain records and transport error type shared
// across the killpowa API.
//
// The User record carries the external JSON shape (camelCase fields) used by
// every endpoint and domain event payload. APIError is the flat
// {"error": message} body the API returns for every failure, with fixed
// messages per error category.
package model

// Package client contains the SkillHub backend transport and the local
// database bootstrap for the terminal client.
//
// # Overview
//
// The package provides:
//  1. The Client interface covering every REST endpoint the client uses:
//     auth, password reset, own and public profiles, resource search and
//     CRUD, saved resources.
//  2. HTTPClient, a net/http implementation. Its transport stamps each
//     request with an X-Request-ID, attaches "Authorization: Bearer <token>"
//     read from a TokenSource (see Authenticate), and reports 401/403
//     answers to credentialed requests through an UnauthorizedFunc.
//  3. InitDatabase and RunMigrations, which open the SQLite state database
//     and apply the embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses come back as *APIError, which carries the status code
// and the backend message and unwraps to ErrUnauthorized, ErrNotFound,
// ErrValidation or ErrUnavailable. Network failures and timeouts map to
// ErrUnavailable.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. Every call takes a context.
package client

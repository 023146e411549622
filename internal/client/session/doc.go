// Package session owns the client's authentication state.
//
// A Gate holds the bearer credential, the current user snapshot and at most
// one pending intent: the action a signed-out user attempted before being
// asked to log in. Gated actions call RequireAuth; when it reports false the
// caller shows the login prompt and, once the user signs in, CompleteLogin
// resolves the pending intent into exactly one navigation.
//
// State lives in memory and is mirrored to the local state database through
// a Store, so a restart restores the credential (validated again by
// Bootstrap) and any remembered redirect path.
//
// Observers use Subscribe instead of polling.
package session

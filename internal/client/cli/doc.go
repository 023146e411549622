// Package cli provides the interactive SkillHub terminal client.
//
// It wires configuration, the local session store, the HTTP API client and
// the session gate, then serves an interactive REPL. Pages (dashboard,
// search results, profiles, forms) are rendered through a Router keyed by
// the route paths of the web client, so the gate can resume a remembered
// page after login.
//
// Commands that need a signed-in user go through the gate: a guest is asked
// to log in, and on success the page or owner they were after is opened.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

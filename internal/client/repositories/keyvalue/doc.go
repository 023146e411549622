// Package keyvalue persists small client-side values (the bearer token, the
// cached current user, the one-shot redirect path) in the local SQLite
// database.
//
// Repositories accept a dbx.DBTX, so the same code runs against *sql.DB or
// inside a transaction opened with dbx.WithTx. Values are opaque bytes; the
// caller owns the encoding.
//
// Get on a missing key returns (nil, nil).
package keyvalue

// Package devserver is an in-memory record store that speaks the same HTTP
// contract as the production backend. It exists so the client can be run and
// tested end to end without the real service.
//
// Routes live under /api (auth, wishlists, items, item actions, metadata
// extraction). Accounts use bcrypt password hashes and HS256 access tokens.
// Item actions go through the same state rules as the client
// (wishlist.Item.Apply), so illegal transitions are refused server-side too.
// Request counters and latencies are exported on /metrics; every request is
// logged through logrus.
//
// Nothing is persisted: restarting the server forgets everything. Seed loads
// a demo account and wishlist.
package devserver

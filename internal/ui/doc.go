// Package ui provides the terminal user interface for Cumplesito.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program styled with Lip Gloss. A single Model value
// holds every view; background work runs as tea.Cmd functions and reports
// back through messages, so the model is only touched on the event loop.
//
// # Package Structure
//
//   - app.go: Model, Update/View, view switching and the Run function
//   - header.go: header, command bar, status line and notices
//   - home.go: landing view with the link prompt
//   - auth.go: login and registration
//   - lists.go: the signed-in user's wishlists
//   - create.go: the create-wishlist form
//   - wishlist.go: item list, item detail and the intents issued from them
//   - prompts.go, itemform.go, modal.go: dialogs for names, contributions,
//     item editing and confirmations
//   - form.go: the labelled multi-field form used by the views and dialogs
//   - logs.go: viewer for the client's own log file
//   - theme.go, render.go, strings.go, layout.go: styling and layout helpers
//
// # View Types
//
//   - Home: open a wishlist by link or id, or start a new one
//   - Login / Register: session management
//   - My Wishlists: lists owned by the signed-in user
//   - Create: new wishlist form
//   - Wishlist: items, state badges, pooled-gift progress and contributions
//   - Logs: filtered tail of the client log
//
// # Event Flow
//
//  1. Opening a wishlist starts a new generation in state.Store
//  2. A refresh command loads it; the poller in package app keeps it fresh
//  3. Each tick fetches the store snapshot; snapshots from another generation
//     are ignored
//  4. Intents run through mutation.Service and answer with intentMsg; answers
//     for a view the user already left are dropped
//
// # Key Bindings
//
//   - /: open a link
//   - m: my wishlists, n: new wishlist
//   - r / p / c: reserve, purchase, contribute on the selected item
//   - a / e / d: add, edit, delete items (owner)
//   - y: copy the share link
//   - T / L: cycle theme and language
//   - D: client logs
//   - ESC: back, q or Ctrl+C: exit
package ui

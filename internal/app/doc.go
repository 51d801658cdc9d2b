// Package app provides the orchestration layer for the Cumplesito client.
//
// # Overview
//
// This package wires together configuration, logging, the session, the record
// store client, the wishlist store and the UI. It is the composition root:
// every dependency is built here and passed down explicitly.
//
// # Architecture
//
// Run follows a fixed start-up order:
//
//  1. Load ~/.config/cumplesito/config.toml, then .env and CUMPLESITO_* overrides
//  2. Open the client log file (the TUI owns the terminal)
//  3. Load theme and language preferences
//  4. Restore the stored session and confirm it with /auth/me
//  5. Build the API client, the shared state.Store and the mutation.Service
//  6. Launch the background poller when refresh_interval is positive
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Run and the session check
//   - poller.go: background refresh of the wishlist being viewed
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         Read config and environment
//	       ├─────> logging.NewFile()     Client log
//	       ├─────> session.Load()        Restore bearer token
//	       ├─────> api.NewClient()       HTTP client for the record store
//	       ├─────> mutation.New()        Intents against the store
//	       ├─────> StartPoller()         Background refresh
//	       └─────> ui.Run()              Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> store.Snapshot()  (open view?)     │
//	│  ├─> Service.Refresh(gen)               │
//	│  └─> store.Commit()/Fail()  (atomic)    │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// Other visitors reserve, buy and contribute while a list is open. The poller
// refetches the viewed wishlist every refresh_interval (default: 30 seconds)
// so those changes appear without a manual refresh. Writes remain
// last-writer-wins; the poller only narrows the window in which the view is
// out of date.
//
// After a failed refresh the next attempt waits twice as long, up to five
// minutes. The first success resets the interval. Refreshes that belong to a
// view the user already left are dropped by the store's generation check.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file or environment value
//   - Log file cannot be opened
//   - Malformed api_url
//
// Recoverable errors (logged, the client keeps running):
//   - Stored session expired or rejected
//   - Record store unreachable at start or during polling
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	opts := app.Options{
//		Link:  "http://localhost:5173/wishlist/4f0c...",
//		Owner: false,
//	}
//
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("cumplesito failed: %v", err)
//	}
//
// # Dependencies
//
//   - config, prefs: configuration and display preferences
//   - logging: logrus logger bound to the client log file
//   - session: bearer token and signed-in user
//   - api: HTTP client for the record store
//   - state, mutation: the wishlist aggregate and the intents that change it
//   - ui: Bubble Tea front-end
package app

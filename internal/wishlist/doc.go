// Package wishlist holds the client-side data model of a gift registry and
// the rules that decide which visitor actions are legal on an item.
//
// # Item states
//
// Standard items move between three states:
//
//	Available --reserve(name)--> Reserved(name)
//	Reserved  --unreserve------> Available
//	Available --purchase(name)-> Purchased(name)
//	Reserved  --purchase(name)-> Purchased(name)   (reservation cleared)
//	Purchased --unpurchase-----> Available
//
// Pooled items are Open until CurrentAmount reaches TargetAmount, then Funded.
// Contributions only add; there is no way to take one back.
//
// Item.State derives the state from the stored flags and amounts; nothing is
// stored separately. Item.Allows gates UI affordances and Item.Apply computes
// the resulting item. The client never applies a transition speculatively:
// it sends the intent and waits for the record store's answer. Apply exists
// for the development backend and for tests.
//
// # Validation
//
// Forms (NewWishlist, ItemInput, Credentials, Registration, ContributionInput)
// are checked locally with go-playground/validator before any request is
// sent. Failures come back as FieldErrors keyed by form field, with message
// keys the UI translates.
package wishlist

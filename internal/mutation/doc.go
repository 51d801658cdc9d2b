// Package mutation turns user intents into record-store calls.
//
// Every intent follows the same path:
//
//  1. Pre-flight: the item must be in the loaded wishlist and the action must
//     be legal in its current state; names go through the anonymous policy;
//     forms and contribution amounts are validated. A failure here sends
//     nothing.
//  2. Exactly one mutating call. Failures are returned as-is and the store is
//     left untouched. Nothing is retried.
//  3. A full refetch of the wishlist, committed under the view generation the
//     intent started with. If the user has left the view the result is
//     dropped with ErrStale.
//
// If step 3 fails after step 2 succeeded, the item returned by the mutating
// call is patched into the view by id and Result.Warning explains why the
// rest of the list may be out of date.
package mutation

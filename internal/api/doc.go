// Package api is the HTTP client for the Cumplesito record store.
//
// The record store speaks JSON with snake_case keys under a base URL such as
// http://localhost:8000/api. Errors carry a "detail" field; UserMessage pulls
// it out for display. A 404 on GetWishlist is reported as an absent wishlist
// (nil, nil) rather than an error. Metadata extraction never fails hard: its
// errors are *SoftError values meant to be shown as a hint.
//
// The DTO types in this package are the wire contract. ToWishlist/FromWishlist
// and ToItem/FromItem convert between them and the wishlist package. A
// payload converted in and back out keeps its field values, including naive
// timestamps and missing item types. Optional strings are the exception:
// null, missing and "" all mean "not set" and come back missing.
package api

// Package session keeps the signed-in account between runs.
//
// The Manager stores the bearer token and a copy of the user in a TOML file
// (mode 0600) and hands the token to the api client through Token. Tokens
// are JWTs issued by the record store; the exp claim is read without
// verification so expired sessions are dropped locally. Logout only forgets
// the token; the record store keeps no server-side session.
package session

// Package i18n holds the Spanish and English strings of the client and
// formats money for the chosen language.
//
// Spanish is the default. Keys are shared by both tables; a key missing from
// one language falls back to English so a gap never shows up as a blank.
package i18n

// Package config loads the Cumplesito client configuration.
//
// # Resolution order
//
//  1. Built-in defaults (Default).
//  2. The TOML file, ~/.config/cumplesito/config.toml unless a path is given.
//     A missing file is fine; a malformed one is an error.
//  3. .env files loaded with godotenv. Entries never replace variables that
//     are already set in the process environment.
//  4. CUMPLESITO_* environment variables.
//
// Empty values at any layer leave the previous layer's value in place.
//
// # Keys
//
//	api_url           CUMPLESITO_API_URL           record store base URL
//	frontend_url      CUMPLESITO_FRONTEND_URL      used to build share links
//	log_file          CUMPLESITO_LOG_FILE          client log (the TUI owns stdout)
//	log_level         CUMPLESITO_LOG_LEVEL         logrus level name
//	request_timeout   CUMPLESITO_REQUEST_TIMEOUT   Go duration, > 0
//	refresh_interval  CUMPLESITO_REFRESH_INTERVAL  Go duration, 0 disables
//	ads_enabled       CUMPLESITO_ADS_ENABLED       show live ad slots
//	ads_publisher_id  CUMPLESITO_ADS_PUBLISHER_ID  required when ads are enabled
//	session_file      CUMPLESITO_SESSION_FILE      stored login
//	prefs_file        CUMPLESITO_PREFS_FILE        theme and language
//
// Paths accept a leading ~ and are returned absolute.
package config

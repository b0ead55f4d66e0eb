// Package config loads the settings of the chronos server.
//
// [StructuredConfig] groups them by concern: App (environment, version, CORS
// origin), Auth (OTP and session lifetimes, signing secrets), Storage
// (PostgreSQL and the optional Redis limiter), Server (listen address, rate
// limits) and Adapter (OTP relay).
//
// Sources are merged in this order, later non-zero values winning:
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults fill whatever is still empty, then the result is validated. The
// entry point is [GetStructuredConfig].
package config

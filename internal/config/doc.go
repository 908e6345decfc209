// Package config loads the rustnext.json application configuration with
// defaults and environment-variable overrides (RUSTNEXT_HOST, RUSTNEXT_PORT,
// RUSTNEXT_STATIC_DIR, RUSTNEXT_JWT_SECRET). A .env file in the working
// directory is honored when present.
package config

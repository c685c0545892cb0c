// Package config resolves the client configuration from its two sources in
// priority order (earlier sources win for non-zero fields):
//  1. Explicit values passed by the caller at construction time
//  2. Environment variables (CRUNCHDAO_API_KEY et al.)
//
// Unset fields fall back to built-in defaults pointing at the production
// tournament backend. The main entry point is [GetConfig].
package config

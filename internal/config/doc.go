// Package config loads, normalizes, and validates filehive configuration.
//
// Configuration lives in a TOML file (default ~/.config/filehive/config.toml,
// with ./filehive.toml as a project-local fallback). Load applies repository
// defaults first, so a missing file yields a fully usable configuration. All
// path fields are tilde-expanded and made absolute before validation.
package config

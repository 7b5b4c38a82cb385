// Package store defines the storage contracts the gateway depends on: the
// per-kind overlay that absorbs writes the upstream cannot persist, and the
// registry of principals that may authenticate. Implementations live under
// internal/platform.
package store

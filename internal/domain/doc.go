// Package domain contains the gateway's entities (users, albums, photos),
// the principals that authenticate against it, and the errors shared by
// every layer. It has no knowledge of HTTP, the upstream data source, or
// the in-memory stores.
package domain

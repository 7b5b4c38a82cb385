// Package service contains the use cases behind the gateway's entity
// endpoints. Services sit between the HTTP handlers and the merged
// repositories in internal/repository: they reject malformed identifiers
// before any lookup happens and add the queries that are not plain CRUD,
// such as photo search.
//
// Authentication lives in the auth subpackage.
//
// Services depend on repository interfaces only. The concrete
// repositories, overlays and upstream client are wired in cmd/server.
package service

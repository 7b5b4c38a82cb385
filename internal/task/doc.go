// Package task runs short-lived background work off the request path. The
// gateway uses it to mirror overlay writes to the upstream data source
// without making clients wait on the upstream. Tasks live only in memory;
// anything still queued at shutdown is drained before the process exits.
package task

// Package memory provides process-lifetime implementations of the store
// interfaces: the per-kind Overlay that absorbs gateway writes and the
// PrincipalStore holding authenticatable accounts. Nothing here survives a
// restart.
package memory

// Package repository merges the read-only upstream data set with the local
// overlay into one CRUD view per entity kind.
//
// Reads consult the overlay first for single records and concatenate
// upstream then overlay for listings (no de-duplication). Creates always
// land in the overlay and are mirrored upstream on a best-effort basis.
// Updates and deletes of upstream-owned records are forwarded to the
// upstream and never touch the overlay; an upstream failure surfaces as
// "not found" rather than an error.
package repository

package store

// Overlay holds the entities of one kind that were created through the
// gateway. Records are keyed by synthetic IDs drawn from a range disjoint
// from the upstream's IDs. Implementations must be safe for concurrent use
// and must never reissue an ID, even after the record is deleted.
type Overlay[T any] interface {
	// Add assigns the next synthetic ID, stores a copy of entity under it,
	// and returns the stored copy.
	Add(entity T) T

	// Update replaces the record with the given ID, forcing the stored
	// entity's ID to match. It returns false, and stores nothing, when no
	// record with that ID exists.
	Update(id int, entity T) (T, bool)

	// Delete removes the record with the given ID and reports whether it existed.
	Delete(id int) bool

	// Get returns the record with the given ID.
	Get(id int) (T, bool)

	// GetAll returns every record currently held.
	GetAll() []T

	// GetByForeignKey returns the records whose parent ID equals key.
	GetByForeignKey(key int) []T

	// Issued reports whether id is a synthetic ID this overlay has already
	// handed out, whether or not the record still exists.
	Issued(id int) bool
}

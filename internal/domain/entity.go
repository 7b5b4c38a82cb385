package domain

// Entity is implemented by every resource kind the gateway serves. T is the
// concrete value type, which lets stores copy entities and force IDs
// without reflection.
type Entity[T any] interface {
	// EntityID returns the entity's ID, zero when not yet assigned.
	EntityID() int

	// WithID returns a copy of the entity carrying the given ID.
	WithID(id int) T

	// ParentID returns the foreign key used for relationship queries
	// (album -> user, photo -> album). Kinds without a parent return 0.
	ParentID() int

	// Validate checks the fields required before a write is accepted.
	Validate() error
}

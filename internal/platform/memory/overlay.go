package memory

import (
	"sort"
	"sync"

	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/store"
)

// First synthetic IDs per kind. The upstream data set uses 1-10 for users,
// 1-100 for albums and 1-5000 for photos.
const (
	FirstUserID  = 1001
	FirstAlbumID = 2001
	FirstPhotoID = 10001
)

// Overlay is a mutex-guarded map of entities keyed by synthetic ID.
// Entities are stored and returned by value.
type Overlay[T domain.Entity[T]] struct {
	mu      sync.RWMutex
	items   map[int]T
	firstID int
	nextID  int
}

// NewOverlay creates an empty overlay whose first issued ID is firstID.
func NewOverlay[T domain.Entity[T]](firstID int) *Overlay[T] {
	return &Overlay[T]{
		items:   make(map[int]T),
		firstID: firstID,
		nextID:  firstID,
	}
}

var (
	_ store.Overlay[domain.User]  = (*Overlay[domain.User])(nil)
	_ store.Overlay[domain.Album] = (*Overlay[domain.Album])(nil)
	_ store.Overlay[domain.Photo] = (*Overlay[domain.Photo])(nil)
)

// Add implements store.Overlay.Add
func (o *Overlay[T]) Add(entity T) T {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++

	stored := entity.WithID(id)
	o.items[id] = stored
	return stored
}

// Update implements store.Overlay.Update
func (o *Overlay[T]) Update(id int, entity T) (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.items[id]; !ok {
		var zero T
		return zero, false
	}

	stored := entity.WithID(id)
	o.items[id] = stored
	return stored, true
}

// Delete implements store.Overlay.Delete
func (o *Overlay[T]) Delete(id int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.items[id]; !ok {
		return false
	}
	delete(o.items, id)
	return true
}

// Get implements store.Overlay.Get
func (o *Overlay[T]) Get(id int) (T, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	entity, ok := o.items[id]
	return entity, ok
}

// GetAll implements store.Overlay.GetAll. Records are ordered by ID.
func (o *Overlay[T]) GetAll() []T {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.collect(func(T) bool { return true })
}

// GetByForeignKey implements store.Overlay.GetByForeignKey
func (o *Overlay[T]) GetByForeignKey(key int) []T {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.collect(func(entity T) bool { return entity.ParentID() == key })
}

// Issued implements store.Overlay.Issued
func (o *Overlay[T]) Issued(id int) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return id >= o.firstID && id < o.nextID
}

// collect must be called with the lock held.
func (o *Overlay[T]) collect(keep func(T) bool) []T {
	result := make([]T, 0, len(o.items))
	for _, entity := range o.items {
		if keep(entity) {
			result = append(result, entity)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EntityID() < result[j].EntityID()
	})
	return result
}

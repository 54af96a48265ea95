package arrow

import (
	"errors"
	"fmt"
	"sort"
)

// Layer owns a set of entities keyed by record ID and attaches them together
type Layer struct {
	entities map[string]*Entity
	host     Host
}

// NewLayer creates an empty, unattached layer
func NewLayer() *Layer {
	return &Layer{
		entities: make(map[string]*Entity),
	}
}

// NewLayerFromData builds one entity per record, all sharing cfg
func NewLayerFromData(records []Data, cfg Config) (*Layer, error) {
	l := NewLayer()
	for i, d := range records {
		if d.ID == "" {
			d.ID = fmt.Sprintf("%d", i+1)
		}
		if err := l.Add(d.ID, NewEntity(d, cfg)); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add inserts an entity, attaching it if the layer is attached
func (l *Layer) Add(id string, e *Entity) error {
	if _, exists := l.entities[id]; exists {
		return fmt.Errorf("duplicate arrow id %q", id)
	}
	l.entities[id] = e

	if l.host != nil {
		if err := e.Attach(l.host); err != nil {
			return fmt.Errorf("arrow %s: %w", id, err)
		}
	}
	return nil
}

// Remove detaches and forgets an entity. Returns false if id is unknown.
func (l *Layer) Remove(id string) bool {
	e, exists := l.entities[id]
	if !exists {
		return false
	}
	e.Detach()
	delete(l.entities, id)
	return true
}

// Get retrieves an entity by ID
func (l *Layer) Get(id string) (*Entity, bool) {
	e, exists := l.entities[id]
	return e, exists
}

// IDs returns all entity IDs sorted for consistent ordering
func (l *Layer) IDs() []string {
	ids := make([]string, 0, len(l.entities))
	for id := range l.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all entities in ID order
func (l *Layer) All() []*Entity {
	ids := l.IDs()
	all := make([]*Entity, len(ids))
	for i, id := range ids {
		all[i] = l.entities[id]
	}
	return all
}

// Count returns the number of entities
func (l *Layer) Count() int {
	return len(l.entities)
}

// Attach attaches every entity to host. A failing entity does not stop the
// others; all failures are returned together.
func (l *Layer) Attach(host Host) error {
	l.host = host

	var errs []error
	for _, id := range l.IDs() {
		if err := l.entities[id].Attach(host); err != nil {
			errs = append(errs, fmt.Errorf("arrow %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// Detach detaches every entity
func (l *Layer) Detach() {
	for _, e := range l.entities {
		e.Detach()
	}
	l.host = nil
}

// Redraw redraws every entity, collecting failures like Attach
func (l *Layer) Redraw() error {
	var errs []error
	for _, id := range l.IDs() {
		if err := l.entities[id].Redraw(); err != nil {
			errs = append(errs, fmt.Errorf("arrow %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

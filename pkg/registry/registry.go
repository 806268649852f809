package registry

import (
	"errors"
	"fmt"
	"slices"
)

var ErrDuplicateId = errors.New("duplicate id")

// Identifiable is the minimal contract for registry entries.
type Identifiable interface {
	GetId() int
}

// Factory constructs a new entry for an allocated id.
type Factory[T Identifiable] func(id int) (T, error)

// Registry is an owning collection of objects keyed by
// a monotonically allocated integer id.
// IDs handed out by Create are never reused during the
// lifetime of a registry, even if objects are removed.
// A registry is not safe for concurrent use.
type Registry[T Identifiable] struct {
	objects map[int]T
	order   []int
	nextId  int
}

func New[T Identifiable]() *Registry[T] {
	return &Registry[T]{
		objects: map[int]T{},
		nextId:  1,
	}
}

// Add inserts an object with a preassigned id.
// The id allocation counter is advanced behind the given
// id, so that later calls to Create never collide with it.
func (r *Registry[T]) Add(o T) error {
	id := o.GetId()
	if _, ok := r.objects[id]; ok {
		return fmt.Errorf("%w: object with id %d already exists in registry", ErrDuplicateId, id)
	}
	r.insert(id, o)
	if id >= r.nextId {
		r.nextId = id + 1
	}
	return nil
}

// Create allocates a new id and inserts the object provided by the factory.
// The id is consumed even if the factory fails.
func (r *Registry[T]) Create(f Factory[T]) (T, error) {
	var _nil T

	id := r.nextId
	r.nextId++

	o, err := f(id)
	if err != nil {
		return _nil, err
	}
	if o.GetId() != id {
		return _nil, fmt.Errorf("factory returned object with id %d instead of allocated id %d", o.GetId(), id)
	}
	r.insert(id, o)
	return o, nil
}

func (r *Registry[T]) insert(id int, o T) {
	r.objects[id] = o
	r.order = append(r.order, id)
}

func (r *Registry[T]) Get(id int) (T, bool) {
	o, ok := r.objects[id]
	return o, ok
}

func (r *Registry[T]) Has(id int) bool {
	_, ok := r.objects[id]
	return ok
}

// Remove deletes an object. The id is not reclaimed.
func (r *Registry[T]) Remove(id int) bool {
	if _, ok := r.objects[id]; !ok {
		return false
	}
	delete(r.objects, id)
	r.order = slices.DeleteFunc(r.order, func(e int) bool { return e == id })
	return true
}

// All returns a snapshot of all objects in insertion order.
func (r *Registry[T]) All() []T {
	return r.Filter(nil)
}

// Filter returns all objects matching the predicate in insertion order.
func (r *Registry[T]) Filter(f func(T) bool) []T {
	list := make([]T, 0, len(r.order))
	for _, id := range r.order {
		o := r.objects[id]
		if f == nil || f(o) {
			list = append(list, o)
		}
	}
	return list
}

func (r *Registry[T]) Ids() []int {
	return slices.Clone(r.order)
}

// Clear removes all objects and resets the id counter.
func (r *Registry[T]) Clear() {
	r.objects = map[int]T{}
	r.order = nil
	r.nextId = 1
}

func (r *Registry[T]) Count() int {
	return len(r.objects)
}

// NextId returns the id the next call to Create will allocate.
func (r *Registry[T]) NextId() int {
	return r.nextId
}

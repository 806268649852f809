package model

import (
	"encoding/json"

	"k8s.io/apimachinery/pkg/util/sets"
)

// IdSet is a set of object ids referencing objects of
// some registry. It is serialized as ascending id list.
type IdSet sets.Set[int]

func NewIdSet(ids ...int) IdSet {
	return IdSet(sets.New[int](ids...))
}

func (s *IdSet) Insert(ids ...int) {
	if *s == nil {
		*s = NewIdSet()
	}
	sets.Set[int](*s).Insert(ids...)
}

// Delete removes an id and reports whether it was present.
func (s IdSet) Delete(id int) bool {
	if !s.Has(id) {
		return false
	}
	delete(s, id)
	return true
}

func (s IdSet) Has(id int) bool {
	return sets.Set[int](s).Has(id)
}

func (s IdSet) Len() int {
	return len(s)
}

// List returns the ids in ascending order.
func (s IdSet) List() []int {
	return sets.List(sets.Set[int](s))
}

func (s IdSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

func (s *IdSet) UnmarshalJSON(data []byte) error {
	var list []int
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = NewIdSet(list...)
	return nil
}

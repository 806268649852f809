package manager

import (
	"github.com/mandelsoft/femodel/pkg/events"
	"github.com/mandelsoft/femodel/pkg/model"
)

// Select adds objects to the selection. All ids must exist.
func (m *ModelManager) Select(typ model.ObjectType, ids ...int) error {
	for _, id := range ids {
		if !m.Has(typ, id) {
			return errNotFound(typ, id)
		}
	}
	s := m.selection[typ]
	s.Insert(ids...)
	m.selection[typ] = s
	m.trigger(typ, 0, events.SELECTED)
	return nil
}

// Deselect removes objects from the selection.
func (m *ModelManager) Deselect(typ model.ObjectType, ids ...int) {
	s := m.selection[typ]
	for _, id := range ids {
		s.Delete(id)
	}
	if s.Len() == 0 {
		delete(m.selection, typ)
	}
	m.trigger(typ, 0, events.SELECTED)
}

func (m *ModelManager) ClearSelection() {
	m.selection = map[model.ObjectType]model.IdSet{}
	m.trigger("", 0, events.SELECTED)
}

func (m *ModelManager) IsSelected(typ model.ObjectType, id int) bool {
	return m.selection[typ].Has(id)
}

// GetSelection provides the selected ids per category.
func (m *ModelManager) GetSelection() map[model.ObjectType][]int {
	r := map[model.ObjectType][]int{}
	for t, s := range m.selection {
		if s.Len() > 0 {
			r[t] = s.List()
		}
	}
	return r
}

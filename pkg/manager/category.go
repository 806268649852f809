package manager

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/registry"
)

// category is the type-agnostic view of an object registry.
type category interface {
	Type() model.ObjectType
	Ids() []int
	Has(id int) bool
	GetObject(id int) (model.Object, bool)
	Objects() []model.Object
	RemoveObject(id int) bool
	AddObject(o model.Object) error
	Count() int
	Clear()
}

type typed[T model.Object] struct {
	*registry.Registry[T]
	typ model.ObjectType
}

var _ category = (*typed[model.Object])(nil)

func newCategory[T model.Object](typ model.ObjectType) *typed[T] {
	return &typed[T]{registry.New[T](), typ}
}

func (c *typed[T]) Type() model.ObjectType {
	return c.typ
}

func (c *typed[T]) GetObject(id int) (model.Object, bool) {
	o, ok := c.Get(id)
	if !ok {
		return nil, false
	}
	return o, true
}

// Lookup provides an object or the zero value.
func (c *typed[T]) Lookup(id int) T {
	o, _ := c.Get(id)
	return o
}

func (c *typed[T]) Objects() []model.Object {
	var list []model.Object
	for _, o := range c.All() {
		list = append(list, o)
	}
	return list
}

func (c *typed[T]) RemoveObject(id int) bool {
	return c.Remove(id)
}

func (c *typed[T]) AddObject(o model.Object) error {
	t, ok := o.(T)
	if !ok {
		return errInvalidCategory(o, c.typ)
	}
	return c.Add(t)
}

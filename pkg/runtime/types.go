package runtime

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/mandelsoft/femodel/pkg/utils"
)

var ErrUnknownType = errors.New("unknown type")

type Initializer[T Object] func(o T)

// SchemeTypes is a set of type definitions
// mapping type names to Go types.
// This mapping is used to provide a simple
// object creation by type name.
type SchemeTypes[T Object] interface {
	Kind() string
	TypeNames() []string
	HasType(t string) bool
	CreateObject(typ string, init ...Initializer[T]) (T, error)
}

// TypeScheme is a set types with a registration possibility.
type TypeScheme[T Object] interface {
	SchemeTypes[T]

	Register(name string, proto T) error
}

type types[E Object] struct {
	kind  string
	types map[string]reflect.Type
}

var _ TypeScheme[Object] = (*types[Object])(nil)

// NewTypeScheme creates a type scheme for objects of the given kind.
// The kind is only used for error messages.
// A scheme is not safe for concurrent registration and creation.
func NewTypeScheme[E Object](kind string) *types[E] {
	return &types[E]{kind: kind, types: map[string]reflect.Type{}}
}

func (s *types[E]) Kind() string {
	return s.kind
}

func (s *types[E]) Register(name string, proto E) error {
	if name == "" {
		return fmt.Errorf("empty %s type name", s.kind)
	}
	t := reflect.TypeOf(proto)
	if t == nil || t.Kind() != reflect.Pointer {
		return fmt.Errorf("proto type for %s %s must be pointer", s.kind, name)
	}
	t = t.Elem()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("proto type for %s %s must be pointer to struct", s.kind, name)
	}

	s.types[name] = t
	return nil
}

func (s *types[E]) HasType(t string) bool {
	return s.types[t] != nil
}

func (s *types[E]) CreateObject(typ string, init ...Initializer[E]) (E, error) {
	var _nil E

	t := s.types[typ]
	if t == nil {
		return _nil, s.unknownType(typ)
	}

	o := reflect.New(t).Interface().(E)
	o.SetType(typ)
	if d, ok := any(o).(Defaulter); ok {
		d.Default()
	}
	for _, i := range init {
		i(o)
	}
	return o, nil
}

func (s *types[E]) TypeNames() []string {
	names := utils.MapKeys(s.types)
	sort.Strings(names)
	return names
}

func (s *types[E]) unknownType(typ string) error {
	if c := Suggest(typ, s.TypeNames()...); c != "" {
		return fmt.Errorf("%w: %s %q (did you mean %q?)", ErrUnknownType, s.kind, typ, c)
	}
	return fmt.Errorf("%w: %s %q", ErrUnknownType, s.kind, typ)
}

type ElementType[P any] interface {
	Object
	*P
}

func Register[T any, P ElementType[T], E Object](s TypeScheme[E], name string) error {
	var proto T

	p, ok := (any(&proto)).(E)
	if !ok {
		return fmt.Errorf("*%s does not implement scheme interface %s", utils.TypeOf[T](), utils.TypeOf[E]())
	}
	return s.Register(name, p)
}

func MustRegister[T any, P ElementType[T], E Object](s TypeScheme[E], name ...string) {
	for _, n := range name {
		err := Register[T, P, E](s, n)
		if err != nil {
			panic(err)
		}
	}
}

package load

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

// TypeMeta is the load type discriminant.
type TypeMeta struct {
	LoadType string `json:"load_type"`
}

func (t *TypeMeta) GetType() string {
	return t.LoadType
}

func (t *TypeMeta) SetType(typ string) {
	t.LoadType = typ
}

// Direction is the direction a load is applied in.
type Direction string

const (
	X       Direction = "X"
	Y       Direction = "Y"
	Z       Direction = "Z"
	XX      Direction = "XX"
	YY      Direction = "YY"
	ZZ      Direction = "ZZ"
	LOCAL_1 Direction = "LOCAL_1"
	LOCAL_2 Direction = "LOCAL_2"
	LOCAL_3 Direction = "LOCAL_3"
)

var globalDirections = []Direction{X, Y, Z, XX, YY, ZZ}

// Dof provides the 1-based DOF of a global direction
// or 0 for local directions.
func (d Direction) Dof() int {
	return slices.Index(globalDirections, d) + 1
}

func (d Direction) IsLocal() bool {
	return d == LOCAL_1 || d == LOCAL_2 || d == LOCAL_3
}

func (d Direction) IsValid() bool {
	return d.Dof() > 0 || d.IsLocal()
}

// Load is the common interface of all loads.
type Load interface {
	model.Object
	runtime.Object

	// GetNodeIds provides the referenced nodes.
	GetNodeIds() []int
	// GetElementIds provides the referenced elements.
	GetElementIds() []int

	LoadBase() *Base
}

type Initializer = runtime.Initializer[Load]

type Base struct {
	model.ObjectMeta `json:",inline"`
	TypeMeta         `json:",inline"`
}

func (b *Base) LoadBase() *Base {
	return b
}

func (b *Base) GetObjectType() model.ObjectType {
	return model.LOAD
}

func (b *Base) GetNodeIds() []int {
	return nil
}

func (b *Base) GetElementIds() []int {
	return nil
}

func (b *Base) validateBase() {
	b.ResetValidation()
}

func (b *Base) validateDirection(d Direction) {
	if !d.IsValid() {
		b.AddValidationMessage("Invalid load direction %q", d)
	}
}

// vector provides a load vector with n components with the
// value at the DOF of the given direction.
func vector(d Direction, v float64, n int, sep string) string {
	list := make([]float64, n)
	if dof := d.Dof(); dof > 0 && dof <= n {
		list[dof-1] = v
	}
	return model.Floats(list, sep)
}

func unsupported(l Load, what string) string {
	return fmt.Sprintf("# %s load %d: %s not supported", strings.ToLower(l.GetType()), l.GetId(), what)
}

func WithMetadata(meta model.Metadata) Initializer {
	return func(l Load) {
		*l.GetMetadata() = meta
	}
}

func WithName(name string) Initializer {
	return func(l Load) {
		l.GetMetadata().Name = name
	}
}

func WithDirection(d Direction) Initializer {
	return func(l Load) {
		switch t := l.(type) {
		case *Point:
			t.Direction = d
		case *Distributed:
			t.Direction = d
		case *SelfWeight:
			t.Direction = d
		case *TimeVarying:
			t.Direction = d
		}
	}
}

func WithFactor(f float64) Initializer {
	return func(l Load) {
		switch t := l.(type) {
		case *SelfWeight:
			t.Factor = f
		case *TimeVarying:
			t.Factor = f
		case *Pattern:
			t.Factor = f
		}
	}
}

func WithNode(id int) Initializer {
	return func(l Load) {
		switch t := l.(type) {
		case *Point:
			t.NodeId = id
		case *TimeVarying:
			t.NodeId = id
		}
	}
}

func WithTimeSeries(id int) Initializer {
	return func(l Load) {
		switch t := l.(type) {
		case *TimeVarying:
			t.TimeSeriesId = id
		case *Pattern:
			t.TimeSeriesId = id
		}
	}
}

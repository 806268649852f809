package constraint

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

// TypeMeta is the boundary condition type discriminant.
type TypeMeta struct {
	BCType string `json:"bc_type"`
}

func (t *TypeMeta) GetType() string {
	return t.BCType
}

func (t *TypeMeta) SetType(typ string) {
	t.BCType = typ
}

// BoundaryCondition is the common interface of all
// boundary conditions. They reference the constrained
// node by id.
type BoundaryCondition interface {
	model.Object
	runtime.Object

	GetNodeId() int
	// GetNodeIds provides all nodes referenced by the condition.
	GetNodeIds() []int

	ConstraintBase() *Base
}

type Initializer = runtime.Initializer[BoundaryCondition]

type Base struct {
	model.ObjectMeta `json:",inline"`
	TypeMeta         `json:",inline"`
	NodeId           int `json:"node_id"`
}

func (b *Base) ConstraintBase() *Base {
	return b
}

func (b *Base) GetObjectType() model.ObjectType {
	return model.BOUNDARY_CONDITION
}

func (b *Base) GetNodeId() int {
	return b.NodeId
}

func (b *Base) GetNodeIds() []int {
	return []int{b.NodeId}
}

func (b *Base) validateBase() {
	b.ResetValidation()
	if b.NodeId < 0 {
		b.AddValidationMessage("Node ID must be non-negative")
	}
}

func WithMetadata(meta model.Metadata) Initializer {
	return func(c BoundaryCondition) {
		*c.GetMetadata() = meta
	}
}

func WithName(name string) Initializer {
	return func(c BoundaryCondition) {
		c.GetMetadata().Name = name
	}
}

func WithNode(id int) Initializer {
	return func(c BoundaryCondition) {
		c.ConstraintBase().NodeId = id
	}
}

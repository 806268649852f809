package constraint

import (
	"fmt"

	"github.com/mandelsoft/femodel/pkg/model"
)

const MULTI_POINT = "MULTI_POINT"

// MultiPoint couples a constrained DOF (node_id) to a
// retained DOF of another node:
//
//	u_constrained = coefficient * u_retained + constant
type MultiPoint struct {
	Base           `json:",inline"`
	RetainedNodeId int     `json:"retained_node_id"`
	RetainedDof    int     `json:"retained_dof"`
	ConstrainedDof int     `json:"constrained_dof"`
	Coefficient    float64 `json:"coefficient"`
	Constant       float64 `json:"constant"`
}

var _ BoundaryCondition = (*MultiPoint)(nil)

func NewMultiPoint(id int, name string, retained, rdof, constrained, cdof int) *MultiPoint {
	c := &MultiPoint{RetainedNodeId: retained, RetainedDof: rdof, ConstrainedDof: cdof}
	c.SetType(MULTI_POINT)
	c.Default()
	c.Id = id
	c.Metadata.Name = name
	c.NodeId = constrained
	return c
}

func (c *MultiPoint) Default() {
	c.Coefficient = 1
}

func (c *MultiPoint) GetNodeIds() []int {
	return []int{c.NodeId, c.RetainedNodeId}
}

func (c *MultiPoint) Validate() bool {
	c.validateBase()
	if c.RetainedNodeId < 0 {
		c.AddValidationMessage("Retained node ID must be non-negative")
	}
	if c.RetainedDof < 0 {
		c.AddValidationMessage("Retained DOF index must be non-negative")
	}
	if c.ConstrainedDof < 0 {
		c.AddValidationMessage("Constrained DOF index must be non-negative")
	}
	if c.RetainedNodeId == c.NodeId && c.RetainedDof == c.ConstrainedDof {
		c.AddValidationMessage("Retained and constrained DOFs cannot be the same")
	}
	return c.ValidationResult()
}

func (c *MultiPoint) ToTcl() string {
	if c.Constant == 0 && c.Coefficient == 1 && c.RetainedDof == c.ConstrainedDof {
		return fmt.Sprintf("equalDOF %d %d %d", c.RetainedNodeId, c.NodeId, c.RetainedDof+1)
	}
	return fmt.Sprintf("mp %d %d %s %d %d %s", c.NodeId, c.ConstrainedDof+1, model.Float(c.Coefficient),
		c.RetainedNodeId, c.RetainedDof+1, model.Float(c.Constant))
}

func (c *MultiPoint) ToPy() string {
	if c.Constant == 0 && c.Coefficient == 1 && c.RetainedDof == c.ConstrainedDof {
		return fmt.Sprintf("ops.equalDOF(%d, %d, %d)", c.RetainedNodeId, c.NodeId, c.RetainedDof+1)
	}
	return fmt.Sprintf("ops.mp(%d, %d, %s, %d, %d, %s)", c.NodeId, c.ConstrainedDof+1, model.Float(c.Coefficient),
		c.RetainedNodeId, c.RetainedDof+1, model.Float(c.Constant))
}

func WithRetained(node, dof int) Initializer {
	return func(c BoundaryCondition) {
		if m, ok := c.(*MultiPoint); ok {
			m.RetainedNodeId = node
			m.RetainedDof = dof
		}
	}
}

func WithConstrainedDof(dof int) Initializer {
	return func(c BoundaryCondition) {
		if m, ok := c.(*MultiPoint); ok {
			m.ConstrainedDof = dof
		}
	}
}

func WithCoupling(coefficient, constant float64) Initializer {
	return func(c BoundaryCondition) {
		if m, ok := c.(*MultiPoint); ok {
			m.Coefficient = coefficient
			m.Constant = constant
		}
	}
}

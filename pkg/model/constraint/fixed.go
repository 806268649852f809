package constraint

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/femodel/pkg/model"
)

const (
	FIXED  = "FIXED"
	PINNED = "PINNED"
	ROLLER = "ROLLER"
	FREE   = "FREE"
	CUSTOM = "CUSTOM"
)

// Fixed fixes a subset of the DOFs of a node.
// There are two DOFs per dimension, translational ones first.
type Fixed struct {
	Base      `json:",inline"`
	FixedDofs []bool `json:"fixed_dofs"`
}

var _ BoundaryCondition = (*Fixed)(nil)

// NewFixed fixes all DOFs of a node.
func NewFixed(id int, name string, node int, dofs int) *Fixed {
	c := newFixed(id, name, node, FIXED)
	c.FixedDofs = make([]bool, dofs)
	for i := range c.FixedDofs {
		c.FixedDofs[i] = true
	}
	return c
}

// NewPinned fixes all translational DOFs for the given
// dimension (2 or 3).
func NewPinned(id int, name string, node int, dim int) (*Fixed, error) {
	if err := checkDimension(dim); err != nil {
		return nil, err
	}
	c := newFixed(id, name, node, PINNED)
	c.FixedDofs = make([]bool, 2*dim)
	for i := 0; i < dim; i++ {
		c.FixedDofs[i] = true
	}
	return c, nil
}

// NewRoller fixes a single translational DOF.
func NewRoller(id int, name string, node int, dim int, dir int) (*Fixed, error) {
	if err := checkDimension(dim); err != nil {
		return nil, err
	}
	if dir < 0 || dir >= dim {
		return nil, fmt.Errorf("fixed direction must be between 0 and %d, got %d", dim-1, dir)
	}
	c := newFixed(id, name, node, ROLLER)
	c.FixedDofs = make([]bool, 2*dim)
	c.FixedDofs[dir] = true
	return c, nil
}

func checkDimension(dim int) error {
	if dim != 2 && dim != 3 {
		return fmt.Errorf("dimension must be 2 or 3, got %d", dim)
	}
	return nil
}

func newFixed(id int, name string, node int, typ string) *Fixed {
	c := &Fixed{}
	c.SetType(typ)
	c.Id = id
	c.Metadata.Name = name
	c.NodeId = node
	return c
}

func (c *Fixed) Validate() bool {
	c.validateBase()
	if len(c.FixedDofs) == 0 {
		c.AddValidationMessage("Fixed DOFs list is required")
	} else if len(c.FixedDofs)%2 != 0 {
		c.AddValidationMessage("Number of fixed DOFs must be even (paired rotational and translational DOFs)")
	}
	return c.ValidationResult()
}

func (c *Fixed) ToTcl() string {
	return fmt.Sprintf("fix %d %s", c.NodeId, model.Flags(c.FixedDofs, " "))
}

func (c *Fixed) ToPy() string {
	return fmt.Sprintf("ops.fix(%d, %s)", c.NodeId, model.Flags(c.FixedDofs, ", "))
}

func WithFixedDofs(dofs ...bool) Initializer {
	return func(c BoundaryCondition) {
		if f, ok := c.(*Fixed); ok {
			f.FixedDofs = slices.Clone(dofs)
		}
	}
}

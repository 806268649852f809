package constraint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mandelsoft/femodel/pkg/model"
)

const DISPLACEMENT = "DISPLACEMENT"

// Displacement prescribes values for DOFs of a node.
type Displacement struct {
	Base               `json:",inline"`
	DisplacementDofs   []int     `json:"displacement_dofs"`
	DisplacementValues []float64 `json:"displacement_values"`
}

var _ BoundaryCondition = (*Displacement)(nil)

func (c *Displacement) Validate() bool {
	c.validateBase()
	if len(c.DisplacementDofs) == 0 {
		c.AddValidationMessage("Displacement DOFs list is required")
	}
	if len(c.DisplacementValues) == 0 {
		c.AddValidationMessage("Displacement values list is required")
	}
	if len(c.DisplacementDofs) != len(c.DisplacementValues) {
		c.AddValidationMessage("Number of displacement DOFs (%d) must match number of displacement values (%d)", len(c.DisplacementDofs), len(c.DisplacementValues))
	}
	return c.ValidationResult()
}

func (c *Displacement) export(f string) string {
	var lines []string
	for i := 0; i < min(len(c.DisplacementDofs), len(c.DisplacementValues)); i++ {
		lines = append(lines, fmt.Sprintf(f, c.NodeId, c.DisplacementDofs[i]+1, model.Float(c.DisplacementValues[i])))
	}
	return strings.Join(lines, "\n")
}

func (c *Displacement) ToTcl() string {
	return c.export("sp %d %d %s")
}

func (c *Displacement) ToPy() string {
	return c.export("ops.sp(%d, %d, %s)")
}

func WithDisplacements(dofs []int, values []float64) Initializer {
	return func(c BoundaryCondition) {
		if d, ok := c.(*Displacement); ok {
			d.DisplacementDofs = slices.Clone(dofs)
			d.DisplacementValues = slices.Clone(values)
		}
	}
}

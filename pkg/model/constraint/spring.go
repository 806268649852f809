package constraint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mandelsoft/femodel/pkg/model"
)

const SPRING = "SPRING"

// Spring attaches elastic supports to DOFs of a node.
type Spring struct {
	Base            `json:",inline"`
	SpringDofs      []int     `json:"spring_dofs"`
	SpringStiffness []float64 `json:"spring_stiffness"`
}

var _ BoundaryCondition = (*Spring)(nil)

func (c *Spring) Validate() bool {
	c.validateBase()
	if len(c.SpringDofs) == 0 {
		c.AddValidationMessage("Spring DOFs list is required")
	}
	if len(c.SpringStiffness) == 0 {
		c.AddValidationMessage("Spring stiffness list is required")
	}
	if len(c.SpringDofs) != len(c.SpringStiffness) {
		c.AddValidationMessage("Number of spring DOFs (%d) must match number of spring stiffness values (%d)", len(c.SpringDofs), len(c.SpringStiffness))
	}
	if slices.ContainsFunc(c.SpringStiffness, func(k float64) bool { return k <= 0 }) {
		c.AddValidationMessage("Spring stiffness must be positive")
	}
	return c.ValidationResult()
}

// springs provides the pairs usable for export.
func (c *Spring) springs() int {
	return min(len(c.SpringDofs), len(c.SpringStiffness))
}

func (c *Spring) ToTcl() string {
	var lines []string
	for i := 0; i < c.springs(); i++ {
		lines = append(lines,
			fmt.Sprintf("uniaxialMaterial Elastic spring_mat_%d_%d %s", c.Id, i, model.Float(c.SpringStiffness[i])),
			fmt.Sprintf("element zeroLength spring_ele_%d_%d %d 0 -mat spring_mat_%d_%d -dir %d", c.Id, i, c.NodeId, c.Id, i, c.SpringDofs[i]+1),
		)
	}
	return strings.Join(lines, "\n")
}

func (c *Spring) ToPy() string {
	var lines []string
	for i := 0; i < c.springs(); i++ {
		lines = append(lines,
			fmt.Sprintf("ops.uniaxialMaterial('Elastic', 'spring_mat_%d_%d', %s)", c.Id, i, model.Float(c.SpringStiffness[i])),
			fmt.Sprintf("ops.element('zeroLength', 'spring_ele_%d_%d', %d, 0, '-mat', 'spring_mat_%d_%d', '-dir', %d)", c.Id, i, c.NodeId, c.Id, i, c.SpringDofs[i]+1),
		)
	}
	return strings.Join(lines, "\n")
}

func WithSprings(dofs []int, stiffness []float64) Initializer {
	return func(c BoundaryCondition) {
		if s, ok := c.(*Spring); ok {
			s.SpringDofs = slices.Clone(dofs)
			s.SpringStiffness = slices.Clone(stiffness)
		}
	}
}

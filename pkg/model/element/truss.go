package element

import (
	"fmt"

	"github.com/mandelsoft/femodel/pkg/utils"
)

const (
	TRUSS    = "TrussElement"
	TRUSS_2D = "Truss2D"
	TRUSS_3D = "Truss3D"
)

type Truss struct {
	Base              `json:",inline"`
	Area              float64  `json:"area"`
	MassPerUnitLength *float64 `json:"mass_per_unit_length"`
}

var _ Element = (*Truss)(nil)

func NewTruss(id int, name string, n1, n2 int, material int, area float64) *Truss {
	t := &Truss{Area: area}
	t.SetType(TRUSS)
	t.Id = id
	t.Metadata.Name = name
	t.Nodes = []int{n1, n2}
	t.MaterialId = utils.Pointer(material)
	return t
}

func (t *Truss) Validate() bool {
	t.validateBase()
	if len(t.Nodes) != 2 {
		t.AddValidationMessage("Truss element must have exactly 2 nodes")
	}
	if t.MaterialId == nil {
		t.AddValidationMessage("Truss element must have a material assigned")
	}
	if t.Area <= 0 {
		t.AddValidationMessage("Truss element must have a positive area")
	}
	return t.ValidationResult()
}

func (t *Truss) ToTcl() string {
	return fmt.Sprintf("element truss %d %s %s $matTag%s", t.Id, t.nodes(" "), fmtFloat(t.Area), t.material())
}

func (t *Truss) ToPy() string {
	return fmt.Sprintf("ops.element('truss', %d, %s, %s, matTag%s)", t.Id, t.nodes(", "), fmtFloat(t.Area), t.material())
}

func WithArea(a float64) Initializer {
	return func(e Element) {
		if t, ok := e.(*Truss); ok {
			t.Area = a
		}
	}
}

// WithMassPerUnitLength sets the distributed mass
// of truss and frame elements.
func WithMassPerUnitLength(m float64) Initializer {
	return func(e Element) {
		switch t := e.(type) {
		case *Truss:
			t.MassPerUnitLength = utils.Pointer(m)
		case *Frame:
			t.MassPerUnitLength = utils.Pointer(m)
		}
	}
}

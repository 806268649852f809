package section

import (
	"fmt"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/utils"
)

const ELASTIC = "ElasticSection"

// ElasticProperties are the stiffness parameters of an
// elastic section. Iy, G and J are required for 3D analysis.
type ElasticProperties struct {
	E      float64  `json:"E"`
	A      float64  `json:"A"`
	Iz     float64  `json:"Iz"`
	Iy     *float64 `json:"Iy,omitempty"`
	G      *float64 `json:"G,omitempty"`
	J      *float64 `json:"J,omitempty"`
	AlphaY *float64 `json:"alphaY,omitempty"`
	AlphaZ *float64 `json:"alphaZ,omitempty"`
}

type Elastic struct {
	Base       `json:",inline"`
	Properties ElasticProperties `json:"properties"`
}

var _ Section = (*Elastic)(nil)

func NewElastic(id int, name string, e, a, iz float64) *Elastic {
	s := &Elastic{Properties: ElasticProperties{E: e, A: a, Iz: iz}}
	s.SetType(ELASTIC)
	s.Id = id
	s.Metadata.Name = name
	return s
}

func (s *Elastic) Area() float64 {
	return s.Properties.A
}

// Is3D reports whether all properties for a 3D
// section are given.
func (s *Elastic) Is3D() bool {
	return s.Properties.Iy != nil && s.Properties.G != nil && s.Properties.J != nil
}

func (s *Elastic) Validate() bool {
	s.validateBase()
	p := &s.Properties
	if p.E <= 0 {
		s.AddValidationMessage("Young's modulus (E) must be positive")
	}
	if p.A <= 0 {
		s.AddValidationMessage("Cross-sectional area (A) must be positive")
	}
	if p.Iz <= 0 {
		s.AddValidationMessage("Second moment of area about z-axis (Iz) must be positive")
	}
	if p.Iy != nil || p.G != nil || p.J != nil {
		check3D(s, p.Iy, "Second moment of area about y-axis (Iy)")
		check3D(s, p.G, "Shear modulus (G)")
		check3D(s, p.J, "Torsional constant (J)")
	}
	return s.ValidationResult()
}

func check3D(s *Elastic, v *float64, name string) {
	switch {
	case v == nil:
		s.AddValidationMessage("%s is required for 3D analysis", name)
	case *v <= 0:
		s.AddValidationMessage("%s must be positive", name)
	}
}

func (s *Elastic) ToTcl() string {
	return "section Elastic " + s.args(" ")
}

func (s *Elastic) ToPy() string {
	return "ops.section('Elastic', " + s.args(", ") + ")"
}

func (s *Elastic) args(sep string) string {
	p := &s.Properties
	list := []float64{p.E, p.A, p.Iz}
	if s.Is3D() {
		list = append(list, *p.Iy, *p.G, *p.J)
	} else if p.G != nil && p.AlphaY != nil {
		list = append(list, *p.G, *p.AlphaY)
	}
	return fmt.Sprintf("%d%s%s", s.Id, sep, model.Floats(list, sep))
}

func With3D(iy, g, j float64) Initializer {
	return func(s Section) {
		if e, ok := s.(*Elastic); ok {
			e.Properties.Iy = utils.Pointer(iy)
			e.Properties.G = utils.Pointer(g)
			e.Properties.J = utils.Pointer(j)
		}
	}
}

func WithShearFactors(alphaY, alphaZ float64) Initializer {
	return func(s Section) {
		if e, ok := s.(*Elastic); ok {
			e.Properties.AlphaY = utils.Pointer(alphaY)
			e.Properties.AlphaZ = utils.Pointer(alphaZ)
		}
	}
}

func WithStiffness(e, a, iz float64) Initializer {
	return func(s Section) {
		if el, ok := s.(*Elastic); ok {
			el.Properties.E = e
			el.Properties.A = a
			el.Properties.Iz = iz
		}
	}
}

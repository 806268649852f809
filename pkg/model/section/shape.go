package section

import (
	"fmt"
	"math"

	"github.com/mandelsoft/femodel/pkg/model"
)

const (
	RECTANGULAR     = "RectangularSection"
	CIRCULAR        = "CircularSection"
	CIRCULAR_HOLLOW = "CircularHollowSection"
)

// Inertia are the derived geometric properties of a
// shape section.
type Inertia struct {
	Ixx float64
	Iyy float64
	Izz float64
}

type shape interface {
	Section
	Inertia() Inertia
}

// shapeTcl exports a shape section using the elastic
// parameters of its single material.
func shapeTcl(s shape) string {
	ids := s.GetMaterialIds()
	if len(ids) != 1 {
		return fmt.Sprintf("# %s %d requires exactly one material for export", s.GetType(), s.GetId())
	}
	i := s.Inertia()
	return fmt.Sprintf("section Elastic %d $matTag%d %s", s.GetId(), ids[0],
		model.Floats([]float64{s.Area(), i.Ixx, i.Iyy, i.Izz}, " "))
}

func shapePy(s shape) string {
	ids := s.GetMaterialIds()
	if len(ids) != 1 {
		return fmt.Sprintf("# %s %d requires exactly one material for export", s.GetType(), s.GetId())
	}
	i := s.Inertia()
	return fmt.Sprintf("ops.section('Elastic', %d, matTag%d, %s)", s.GetId(), ids[0],
		model.Floats([]float64{s.Area(), i.Ixx, i.Iyy, i.Izz}, ", "))
}

////////////////////////////////////////////////////////////////////////////////

type Rectangular struct {
	Base   `json:",inline"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

var _ shape = (*Rectangular)(nil)

func NewRectangular(id int, name string, width, height float64, materials ...int) *Rectangular {
	s := &Rectangular{Width: width, Height: height}
	s.SetType(RECTANGULAR)
	s.Id = id
	s.Metadata.Name = name
	s.MaterialIds = materials
	return s
}

func (s *Rectangular) Area() float64 {
	return s.Width * s.Height
}

func (s *Rectangular) Inertia() Inertia {
	b, h := s.Width, s.Height
	iyy := h * b * b * b / 12
	izz := b * h * h * h / 12
	return Inertia{Ixx: iyy + izz, Iyy: iyy, Izz: izz}
}

func (s *Rectangular) Validate() bool {
	s.validateBase()
	if s.Width <= 0 {
		s.AddValidationMessage("Width must be greater than zero")
	}
	if s.Height <= 0 {
		s.AddValidationMessage("Height must be greater than zero")
	}
	s.validateMaterials()
	return s.ValidationResult()
}

func (s *Rectangular) ToTcl() string {
	return shapeTcl(s)
}

func (s *Rectangular) ToPy() string {
	return shapePy(s)
}

////////////////////////////////////////////////////////////////////////////////

type Circular struct {
	Base     `json:",inline"`
	Diameter float64 `json:"diameter"`
}

var _ shape = (*Circular)(nil)

func (s *Circular) Area() float64 {
	r := s.Diameter / 2
	return math.Pi * r * r
}

func (s *Circular) Inertia() Inertia {
	r := s.Diameter / 2
	i := math.Pi * math.Pow(r, 4) / 4
	return Inertia{Ixx: 2 * i, Iyy: i, Izz: i}
}

func (s *Circular) Validate() bool {
	s.validateBase()
	if s.Diameter <= 0 {
		s.AddValidationMessage("Diameter must be greater than zero")
	}
	s.validateMaterials()
	return s.ValidationResult()
}

func (s *Circular) ToTcl() string {
	return shapeTcl(s)
}

func (s *Circular) ToPy() string {
	return shapePy(s)
}

////////////////////////////////////////////////////////////////////////////////

type CircularHollow struct {
	Base          `json:",inline"`
	OuterDiameter float64 `json:"outer_diameter"`
	WallThickness float64 `json:"wall_thickness"`
}

var _ shape = (*CircularHollow)(nil)

func (s *CircularHollow) inner() float64 {
	return s.OuterDiameter - 2*s.WallThickness
}

func (s *CircularHollow) Area() float64 {
	ro, ri := s.OuterDiameter/2, s.inner()/2
	return math.Pi * (ro*ro - ri*ri)
}

func (s *CircularHollow) Inertia() Inertia {
	ro, ri := s.OuterDiameter/2, s.inner()/2
	i := math.Pi * (math.Pow(ro, 4) - math.Pow(ri, 4)) / 4
	return Inertia{Ixx: 2 * i, Iyy: i, Izz: i}
}

func (s *CircularHollow) Validate() bool {
	s.validateBase()
	if s.OuterDiameter <= 0 {
		s.AddValidationMessage("Outer diameter must be greater than zero")
	}
	if s.WallThickness <= 0 {
		s.AddValidationMessage("Wall thickness must be greater than zero")
	}
	if s.WallThickness >= s.OuterDiameter/2 {
		s.AddValidationMessage("Wall thickness must be less than half the outer diameter")
	}
	s.validateMaterials()
	return s.ValidationResult()
}

func (s *CircularHollow) ToTcl() string {
	return shapeTcl(s)
}

func (s *CircularHollow) ToPy() string {
	return shapePy(s)
}

////////////////////////////////////////////////////////////////////////////////

func WithDimensions(width, height float64) Initializer {
	return func(s Section) {
		switch r := s.(type) {
		case *Rectangular:
			r.Width = width
			r.Height = height
		case *RectangularFiber:
			r.Width = width
			r.Height = height
		}
	}
}

func WithDiameter(d float64) Initializer {
	return func(s Section) {
		switch t := s.(type) {
		case *Circular:
			t.Diameter = d
		case *CircularHollow:
			t.OuterDiameter = d
		}
	}
}

func WithWallThickness(t float64) Initializer {
	return func(s Section) {
		if h, ok := s.(*CircularHollow); ok {
			h.WallThickness = t
		}
	}
}

package section

import (
	"fmt"
	"math"

	"github.com/mandelsoft/femodel/pkg/model"
)

const (
	I_SECTION         = "ISection"
	WIDE_FLANGE       = "WideFlange"
	CHANNEL           = "Channel"
	RECTANGULAR_FIBER = "RectangularFiberSection"
)

const DefaultFibers = 10

// ISection is a possibly unsymmetric I-shaped profile. Izz is the strong
// axis, Ixx is the approximated torsional constant of the thin plates.
type ISection struct {
	Base                  `json:",inline"`
	Height                float64 `json:"height"`
	TopFlangeWidth        float64 `json:"top_flange_width"`
	BottomFlangeWidth     float64 `json:"bottom_flange_width"`
	WebThickness          float64 `json:"web_thickness"`
	TopFlangeThickness    float64 `json:"top_flange_thickness"`
	BottomFlangeThickness float64 `json:"bottom_flange_thickness"`
}

var _ shape = (*ISection)(nil)

func (s *ISection) web() float64 {
	return s.Height - s.TopFlangeThickness - s.BottomFlangeThickness
}

func (s *ISection) Area() float64 {
	return s.TopFlangeWidth*s.TopFlangeThickness +
		s.BottomFlangeWidth*s.BottomFlangeThickness +
		s.web()*s.WebThickness
}

func (s *ISection) Inertia() Inertia {
	hw := s.web()
	atf := s.TopFlangeWidth * s.TopFlangeThickness
	abf := s.BottomFlangeWidth * s.BottomFlangeThickness
	aw := s.WebThickness * hw

	// distances measured from the bottom fibre
	ytf := s.Height - s.TopFlangeThickness/2
	yw := s.BottomFlangeThickness + hw/2
	ybf := s.BottomFlangeThickness / 2

	var c float64
	if a := atf + aw + abf; a != 0 {
		c = (atf*ytf + aw*yw + abf*ybf) / a
	}
	izz := s.TopFlangeWidth*math.Pow(s.TopFlangeThickness, 3)/12 + atf*math.Pow(ytf-c, 2) +
		s.WebThickness*math.Pow(hw, 3)/12 + aw*math.Pow(yw-c, 2) +
		s.BottomFlangeWidth*math.Pow(s.BottomFlangeThickness, 3)/12 + abf*math.Pow(ybf-c, 2)

	iyy := s.TopFlangeThickness*math.Pow(s.TopFlangeWidth, 3)/12 +
		hw*math.Pow(s.WebThickness, 3)/12 +
		s.BottomFlangeThickness*math.Pow(s.BottomFlangeWidth, 3)/12

	ixx := (math.Pow(s.WebThickness, 3)*hw +
		math.Pow(s.TopFlangeWidth, 3)*s.TopFlangeThickness +
		math.Pow(s.BottomFlangeWidth, 3)*s.BottomFlangeThickness) / 3
	return Inertia{Ixx: ixx, Iyy: iyy, Izz: izz}
}

func (s *ISection) Validate() bool {
	s.validateBase()
	positive(s, s.Height, "Height")
	positive(s, s.TopFlangeWidth, "Top flange width")
	positive(s, s.BottomFlangeWidth, "Bottom flange width")
	positive(s, s.WebThickness, "Web thickness")
	positive(s, s.TopFlangeThickness, "Top flange thickness")
	positive(s, s.BottomFlangeThickness, "Bottom flange thickness")
	if s.TopFlangeThickness+s.BottomFlangeThickness >= s.Height {
		s.AddValidationMessage("Sum of flange thicknesses must be less than total height")
	}
	s.validateMaterials()
	return s.ValidationResult()
}

func (s *ISection) ToTcl() string {
	return shapeTcl(s)
}

func (s *ISection) ToPy() string {
	return shapePy(s)
}

////////////////////////////////////////////////////////////////////////////////

// WideFlange is a symmetric I profile.
type WideFlange struct {
	Base            `json:",inline"`
	Height          float64 `json:"height"`
	FlangeWidth     float64 `json:"flange_width"`
	WebThickness    float64 `json:"web_thickness"`
	FlangeThickness float64 `json:"flange_thickness"`
}

var _ shape = (*WideFlange)(nil)

func (s *WideFlange) profile() *ISection {
	return &ISection{
		Base:                  s.Base,
		Height:                s.Height,
		TopFlangeWidth:        s.FlangeWidth,
		BottomFlangeWidth:     s.FlangeWidth,
		WebThickness:          s.WebThickness,
		TopFlangeThickness:    s.FlangeThickness,
		BottomFlangeThickness: s.FlangeThickness,
	}
}

func (s *WideFlange) Area() float64 {
	return s.profile().Area()
}

func (s *WideFlange) Inertia() Inertia {
	return s.profile().Inertia()
}

func (s *WideFlange) Validate() bool {
	s.validateBase()
	positive(s, s.Height, "Height")
	positive(s, s.FlangeWidth, "Flange width")
	positive(s, s.WebThickness, "Web thickness")
	positive(s, s.FlangeThickness, "Flange thickness")
	if 2*s.FlangeThickness >= s.Height {
		s.AddValidationMessage("Sum of flange thicknesses must be less than total height")
	}
	s.validateMaterials()
	return s.ValidationResult()
}

func (s *WideFlange) ToTcl() string {
	return shapeTcl(s)
}

func (s *WideFlange) ToPy() string {
	return shapePy(s)
}

////////////////////////////////////////////////////////////////////////////////

// Channel is a C profile with the web on the y axis.
type Channel struct {
	Base            `json:",inline"`
	Height          float64 `json:"height"`
	FlangeWidth     float64 `json:"flange_width"`
	WebThickness    float64 `json:"web_thickness"`
	FlangeThickness float64 `json:"flange_thickness"`
}

var _ shape = (*Channel)(nil)

func (s *Channel) Area() float64 {
	return s.WebThickness*s.Height + 2*s.FlangeWidth*s.FlangeThickness - 2*s.WebThickness*s.FlangeThickness
}

func (s *Channel) Inertia() Inertia {
	h, b, tw, tf := s.Height, s.FlangeWidth, s.WebThickness, s.FlangeThickness
	izz := tw*h*h*h/12 + 2*b*tf*tf*tf/12 + 2*b*tf*math.Pow((h-tf)/2, 2)
	iyy := h*tw*tw*tw/12 + 2*tf*b*b*b/12
	ixx := (tw*tw*tw*h + 2*b*b*b*tf) / 3
	return Inertia{Ixx: ixx, Iyy: iyy, Izz: izz}
}

func (s *Channel) Validate() bool {
	s.validateBase()
	positive(s, s.Height, "Height")
	positive(s, s.FlangeWidth, "Flange width")
	positive(s, s.WebThickness, "Web thickness")
	positive(s, s.FlangeThickness, "Flange thickness")
	if s.FlangeThickness > s.Height/2 {
		s.AddValidationMessage("Flange thickness must be less than half the height")
	}
	s.validateMaterials()
	return s.ValidationResult()
}

func (s *Channel) ToTcl() string {
	return shapeTcl(s)
}

func (s *Channel) ToPy() string {
	return shapePy(s)
}

////////////////////////////////////////////////////////////////////////////////

// RectangularFiber is a rectangle meshed into fibers for
// nonlinear analysis. The first material is used for all fibers.
type RectangularFiber struct {
	Rectangular `json:",inline"`
	FibersY     int `json:"num_fibers_y"`
	FibersZ     int `json:"num_fibers_z"`
}

var _ shape = (*RectangularFiber)(nil)

func (s *RectangularFiber) Default() {
	s.FibersY = DefaultFibers
	s.FibersZ = DefaultFibers
}

func (s *RectangularFiber) Validate() bool {
	s.Rectangular.Validate()
	if s.FibersY < 2 {
		s.AddValidationMessage("Number of fibers in y direction must be at least 2")
	}
	if s.FibersZ < 2 {
		s.AddValidationMessage("Number of fibers in z direction must be at least 2")
	}
	return s.ValidationResult()
}

// patch provides the fiber counts and the corner coordinates.
func (s *RectangularFiber) patch(sep string) string {
	w, h := s.Width/2, s.Height/2
	return fmt.Sprintf("%d%s%d%s%s", s.FibersZ, sep, s.FibersY, sep,
		model.Floats([]float64{-w, -h, w, h}, sep))
}

func (s *RectangularFiber) ToTcl() string {
	if len(s.MaterialIds) != 1 {
		return fmt.Sprintf("# %s %d requires exactly one material for export", s.GetType(), s.Id)
	}
	return fmt.Sprintf("section Fiber %d {\n  patch rect $matTag%d %s\n}", s.Id, s.MaterialIds[0], s.patch(" "))
}

func (s *RectangularFiber) ToPy() string {
	if len(s.MaterialIds) != 1 {
		return fmt.Sprintf("# %s %d requires exactly one material for export", s.GetType(), s.Id)
	}
	return fmt.Sprintf("ops.section('Fiber', %d)\nops.patch('rect', matTag%d, %s)", s.Id, s.MaterialIds[0], s.patch(", "))
}

////////////////////////////////////////////////////////////////////////////////

func positive(s Section, v float64, what string) {
	if v <= 0 {
		s.SectionBase().AddValidationMessage(what + " must be greater than zero")
	}
}

// WithProfile sets the dimensions of a symmetric profile.
func WithProfile(height, flangeWidth, webThickness, flangeThickness float64) Initializer {
	return func(s Section) {
		switch t := s.(type) {
		case *WideFlange:
			t.Height, t.FlangeWidth, t.WebThickness, t.FlangeThickness = height, flangeWidth, webThickness, flangeThickness
		case *Channel:
			t.Height, t.FlangeWidth, t.WebThickness, t.FlangeThickness = height, flangeWidth, webThickness, flangeThickness
		case *ISection:
			t.Height = height
			t.TopFlangeWidth, t.BottomFlangeWidth = flangeWidth, flangeWidth
			t.WebThickness = webThickness
			t.TopFlangeThickness, t.BottomFlangeThickness = flangeThickness, flangeThickness
		}
	}
}

func WithFibers(ny, nz int) Initializer {
	return func(s Section) {
		if f, ok := s.(*RectangularFiber); ok {
			f.FibersY = ny
			f.FibersZ = nz
		}
	}
}

package element

import (
	"fmt"

	"github.com/mandelsoft/femodel/pkg/utils"
)

const (
	SOLID        = "SolidElement"
	BRICK_8NODE  = "Brick8Node"
	BRICK_20NODE = "Brick20Node"
	BRICK_UP     = "BrickUP"
)

// Solid covers brick elements. The u-p parameters are only
// used by BrickUP elements.
type Solid struct {
	Base          `json:",inline"`
	B1            *float64 `json:"b1"`
	B2            *float64 `json:"b2"`
	B3            *float64 `json:"b3"`
	BulkModulus   float64  `json:"bulk_modulus,omitempty"`
	FluidDensity  float64  `json:"fluid_density,omitempty"`
	PermeabilityX float64  `json:"permeability_x,omitempty"`
	PermeabilityY float64  `json:"permeability_y,omitempty"`
	PermeabilityZ float64  `json:"permeability_z,omitempty"`
}

var _ Element = (*Solid)(nil)

func (s *Solid) Validate() bool {
	s.validateBase()
	if s.MaterialId == nil {
		s.AddValidationMessage("Solid element must have a material assigned")
	}
	switch s.ElementType {
	case BRICK_8NODE:
		if len(s.Nodes) != 8 {
			s.AddValidationMessage("8-node brick element must have exactly 8 nodes")
		}
	case BRICK_20NODE:
		if len(s.Nodes) != 20 {
			s.AddValidationMessage("20-node brick element must have exactly 20 nodes")
		}
	case BRICK_UP:
		if len(s.Nodes) != 8 {
			s.AddValidationMessage("BrickUP element must have exactly 8 nodes")
		}
		if s.BulkModulus <= 0 {
			s.AddValidationMessage("BrickUP element must have a positive bulk modulus")
		}
		if s.FluidDensity <= 0 {
			s.AddValidationMessage("BrickUP element must have a positive fluid density")
		}
		if s.PermeabilityX <= 0 || s.PermeabilityY <= 0 || s.PermeabilityZ <= 0 {
			s.AddValidationMessage("BrickUP element must have positive permeability coefficients")
		}
	}
	return s.ValidationResult()
}

func (s *Solid) bodyForces() []float64 {
	return []float64{utils.PointerValue(s.B1), utils.PointerValue(s.B2), utils.PointerValue(s.B3)}
}

func (s *Solid) ToTcl() string {
	switch s.ElementType {
	case BRICK_8NODE:
		return fmt.Sprintf("element stdBrick %d %s $matTag%s %s", s.Id, s.nodes(" "), s.material(), fmtFloats(s.bodyForces(), " "))
	case BRICK_20NODE:
		return fmt.Sprintf("element 20NodeBrick %d %s $matTag%s", s.Id, s.nodes(" "), s.material())
	case BRICK_UP:
		return fmt.Sprintf("element brickUP %d %s $matTag%s %s %s %s %s %s 0 0 0", s.Id, s.nodes(" "), s.material(),
			fmtFloat(s.BulkModulus), fmtFloat(s.FluidDensity),
			fmtFloat(s.PermeabilityX), fmtFloat(s.PermeabilityY), fmtFloat(s.PermeabilityZ))
	}
	return fmt.Sprintf("# Solid element %d with nodes %s", s.Id, s.nodes(" "))
}

func (s *Solid) ToPy() string {
	switch s.ElementType {
	case BRICK_8NODE:
		return fmt.Sprintf("ops.element('stdBrick', %d, %s, matTag%s, %s)", s.Id, s.nodes(", "), s.material(), fmtFloats(s.bodyForces(), ", "))
	case BRICK_20NODE:
		return fmt.Sprintf("ops.element('20NodeBrick', %d, %s, matTag%s)", s.Id, s.nodes(", "), s.material())
	case BRICK_UP:
		return fmt.Sprintf("ops.element('brickUP', %d, %s, matTag%s, %s, %s, %s, %s, %s, 0, 0, 0)", s.Id, s.nodes(", "), s.material(),
			fmtFloat(s.BulkModulus), fmtFloat(s.FluidDensity),
			fmtFloat(s.PermeabilityX), fmtFloat(s.PermeabilityY), fmtFloat(s.PermeabilityZ))
	}
	return fmt.Sprintf("# Solid element %d with nodes %s", s.Id, s.nodes(", "))
}

func WithBodyForces(b ...float64) Initializer {
	return func(e Element) {
		if s, ok := e.(*Solid); ok {
			f := []**float64{&s.B1, &s.B2, &s.B3}
			for i := 0; i < len(b) && i < len(f); i++ {
				*f[i] = utils.Pointer(b[i])
			}
		}
	}
}

// WithFluidCoupling sets the u-p parameters of BrickUP elements.
func WithFluidCoupling(bulk, density, kx, ky, kz float64) Initializer {
	return func(e Element) {
		if s, ok := e.(*Solid); ok {
			s.BulkModulus = bulk
			s.FluidDensity = density
			s.PermeabilityX, s.PermeabilityY, s.PermeabilityZ = kx, ky, kz
		}
	}
}

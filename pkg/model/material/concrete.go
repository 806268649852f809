package material

import (
	"fmt"
	"math"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/utils"
)

const (
	CONCRETE           = "ConcreteMaterial"
	ELASTIC_CONCRETE   = "ElasticConcrete"
	KENT_PARK_CONCRETE = "KentParkConcrete"
)

const (
	ConcreteCompressiveStrength = 30.0
	ConcretePoissonRatio        = 0.2
	ConcreteDensity             = 2400.0
	ConcreteCrushingStrain      = 0.002
)

// ConcreteProperties describes concrete. Tensile strength and
// elastic modulus are derived from the compressive strength
// if not specified.
type ConcreteProperties struct {
	CompressiveStrength float64  `json:"compressive_strength"`
	TensileStrength     *float64 `json:"tensile_strength"`
	ElasticModulus      *float64 `json:"elastic_modulus"`
	PoissonRatio        float64  `json:"poisson_ratio"`
	Density             float64  `json:"density"`
	CrushingStrain      float64  `json:"crushing_strain"`
}

type Concrete struct {
	Base       `json:",inline"`
	Properties ConcreteProperties `json:"properties"`
}

var _ Material = (*Concrete)(nil)

func (m *Concrete) Default() {
	m.Properties = ConcreteProperties{
		CompressiveStrength: ConcreteCompressiveStrength,
		PoissonRatio:        ConcretePoissonRatio,
		Density:             ConcreteDensity,
	}
	if m.MaterialType == KENT_PARK_CONCRETE {
		m.Properties.CrushingStrain = ConcreteCrushingStrain
	}
}

// GetElasticModulus provides the specified modulus or
// 4700·√f'c.
func (m *Concrete) GetElasticModulus() float64 {
	if m.Properties.ElasticModulus != nil {
		return *m.Properties.ElasticModulus
	}
	return 4700 * math.Sqrt(math.Abs(m.Properties.CompressiveStrength))
}

// GetTensileStrength provides the specified strength or
// 0.1·f'c.
func (m *Concrete) GetTensileStrength() float64 {
	if m.Properties.TensileStrength != nil {
		return *m.Properties.TensileStrength
	}
	return 0.1 * m.Properties.CompressiveStrength
}

func (m *Concrete) Validate() bool {
	m.validateBase()
	m.validateElastic(m.GetElasticModulus(), &m.Properties.PoissonRatio)
	m.validatePositive(m.Properties.CompressiveStrength, "Compressive strength")
	if m.GetTensileStrength() < 0 {
		m.AddValidationMessage("Tensile strength must not be negative")
	}
	m.validateDensity(m.Properties.Density)
	if m.MaterialType == KENT_PARK_CONCRETE {
		m.validatePositive(m.Properties.CrushingStrain, "Crushing strain")
	}
	return m.ValidationResult()
}

func (m *Concrete) ToTcl() string {
	switch m.MaterialType {
	case ELASTIC_CONCRETE:
		return uniaxialElasticTcl(m.Id, m.GetElasticModulus())
	case KENT_PARK_CONCRETE:
		fc, eps := m.concrete01()
		return fmt.Sprintf("uniaxialMaterial Concrete01 %d %s %s %s %s", m.Id,
			model.Float(fc), model.Float(eps), model.Float(fc*0.2), model.Float(eps*3))
	}
	return isotropicTcl(m.Id, m.GetElasticModulus(), m.Properties.PoissonRatio)
}

func (m *Concrete) ToPy() string {
	switch m.MaterialType {
	case ELASTIC_CONCRETE:
		return uniaxialElasticPy(m.Id, m.GetElasticModulus())
	case KENT_PARK_CONCRETE:
		fc, eps := m.concrete01()
		return fmt.Sprintf("ops.uniaxialMaterial('Concrete01', %d, %s, %s, %s, %s)", m.Id,
			model.Float(fc), model.Float(eps), model.Float(fc*0.2), model.Float(eps*3))
	}
	return isotropicPy(m.Id, m.GetElasticModulus(), m.Properties.PoissonRatio)
}

// concrete01 provides the compressive strength as negative
// value, as required by the solver.
func (m *Concrete) concrete01() (float64, float64) {
	return -math.Abs(m.Properties.CompressiveStrength), m.Properties.CrushingStrain
}

func WithCompressiveStrength(fc float64) Initializer {
	return func(m Material) {
		if c, ok := m.(*Concrete); ok {
			c.Properties.CompressiveStrength = fc
		}
	}
}

func WithTensileStrength(ft float64) Initializer {
	return func(m Material) {
		if c, ok := m.(*Concrete); ok {
			c.Properties.TensileStrength = utils.Pointer(ft)
		}
	}
}

func WithCrushingStrain(eps float64) Initializer {
	return func(m Material) {
		if c, ok := m.(*Concrete); ok {
			c.Properties.CrushingStrain = eps
		}
	}
}

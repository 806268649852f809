package material

import (
	"github.com/mandelsoft/femodel/pkg/utils"
)

const (
	ALUMINUM = "AluminumMaterial"
	WOOD     = "WoodMaterial"
	CUSTOM   = "CustomMaterial"
)

type AluminumProperties struct {
	ElasticModulus float64 `json:"elastic_modulus"`
	PoissonRatio   float64 `json:"poisson_ratio"`
	YieldStress    float64 `json:"yield_stress"`
	Density        float64 `json:"density"`
}

type Aluminum struct {
	Base       `json:",inline"`
	Properties AluminumProperties `json:"properties"`
}

var _ Material = (*Aluminum)(nil)

func (m *Aluminum) Default() {
	m.Properties = AluminumProperties{
		ElasticModulus: 70000,
		PoissonRatio:   0.33,
		YieldStress:    240,
		Density:        2700,
	}
}

func (m *Aluminum) GetElasticModulus() float64 {
	return m.Properties.ElasticModulus
}

func (m *Aluminum) Validate() bool {
	m.validateBase()
	m.validateElastic(m.Properties.ElasticModulus, &m.Properties.PoissonRatio)
	m.validatePositive(m.Properties.YieldStress, "Yield stress")
	m.validateDensity(m.Properties.Density)
	return m.ValidationResult()
}

func (m *Aluminum) ToTcl() string {
	return uniaxialElasticTcl(m.Id, m.Properties.ElasticModulus)
}

func (m *Aluminum) ToPy() string {
	return uniaxialElasticPy(m.Id, m.Properties.ElasticModulus)
}

////////////////////////////////////////////////////////////////////////////////

// WoodProperties describes wood parallel to grain.
type WoodProperties struct {
	ElasticModulus      float64 `json:"elastic_modulus"`
	PoissonRatio        float64 `json:"poisson_ratio"`
	CompressionStrength float64 `json:"compression_strength"`
	TensionStrength     float64 `json:"tension_strength"`
	Density             float64 `json:"density"`
	MoistureContent     float64 `json:"moisture_content"`
}

type Wood struct {
	Base       `json:",inline"`
	Properties WoodProperties `json:"properties"`
}

var _ Material = (*Wood)(nil)

func (m *Wood) Default() {
	m.Properties = WoodProperties{
		ElasticModulus:      13000,
		PoissonRatio:        0.3,
		CompressionStrength: 50,
		TensionStrength:     85,
		Density:             500,
		MoistureContent:     12,
	}
}

func (m *Wood) GetElasticModulus() float64 {
	return m.Properties.ElasticModulus
}

func (m *Wood) Validate() bool {
	m.validateBase()
	m.validateElastic(m.Properties.ElasticModulus, &m.Properties.PoissonRatio)
	m.validatePositive(m.Properties.CompressionStrength, "Compression strength")
	m.validatePositive(m.Properties.TensionStrength, "Tension strength")
	m.validateDensity(m.Properties.Density)
	if m.Properties.MoistureContent < 0 || m.Properties.MoistureContent > 100 {
		m.AddValidationMessage("Moisture content must be in range [0, 100]")
	}
	return m.ValidationResult()
}

func (m *Wood) ToTcl() string {
	return uniaxialElasticTcl(m.Id, m.Properties.ElasticModulus)
}

func (m *Wood) ToPy() string {
	return uniaxialElasticPy(m.Id, m.Properties.ElasticModulus)
}

////////////////////////////////////////////////////////////////////////////////

type CustomProperties struct {
	ElasticModulus float64 `json:"elastic_modulus"`
	PoissonRatio   float64 `json:"poisson_ratio"`
	Density        float64 `json:"density"`
}

// Custom is an isotropic material without defaults.
type Custom struct {
	Base       `json:",inline"`
	Properties CustomProperties `json:"properties"`
}

var _ Material = (*Custom)(nil)

func (m *Custom) GetElasticModulus() float64 {
	return m.Properties.ElasticModulus
}

func (m *Custom) Validate() bool {
	m.validateBase()
	m.validateElastic(m.Properties.ElasticModulus, &m.Properties.PoissonRatio)
	m.validateDensity(m.Properties.Density)
	return m.ValidationResult()
}

func (m *Custom) ToTcl() string {
	return uniaxialElasticTcl(m.Id, m.Properties.ElasticModulus)
}

func (m *Custom) ToPy() string {
	return uniaxialElasticPy(m.Id, m.Properties.ElasticModulus)
}

////////////////////////////////////////////////////////////////////////////////

func WithElasticModulus(e float64) Initializer {
	return func(m Material) {
		switch t := m.(type) {
		case *Elastic:
			t.Properties.ElasticModulus = e
		case *Steel:
			t.Properties.ElasticModulus = e
		case *Concrete:
			t.Properties.ElasticModulus = utils.Pointer(e)
		case *Aluminum:
			t.Properties.ElasticModulus = e
		case *Wood:
			t.Properties.ElasticModulus = e
		case *Custom:
			t.Properties.ElasticModulus = e
		}
	}
}

func WithPoissonRatio(nu float64) Initializer {
	return func(m Material) {
		switch t := m.(type) {
		case *Elastic:
			t.Properties.PoissonRatio = utils.Pointer(nu)
		case *Steel:
			t.Properties.PoissonRatio = nu
		case *Concrete:
			t.Properties.PoissonRatio = nu
		case *Aluminum:
			t.Properties.PoissonRatio = nu
		case *Wood:
			t.Properties.PoissonRatio = nu
		case *Custom:
			t.Properties.PoissonRatio = nu
		}
	}
}

func WithDensity(rho float64) Initializer {
	return func(m Material) {
		switch t := m.(type) {
		case *Steel:
			t.Properties.Density = rho
		case *Concrete:
			t.Properties.Density = rho
		case *Aluminum:
			t.Properties.Density = rho
		case *Wood:
			t.Properties.Density = rho
		case *Custom:
			t.Properties.Density = rho
		}
	}
}

package material

import (
	"fmt"

	"github.com/mandelsoft/femodel/pkg/model"
)

const (
	STEEL                           = "SteelMaterial"
	ELASTIC_PERFECTLY_PLASTIC_STEEL = "ElasticPerfectlyPlasticSteel"
	BILINEAR_STEEL                  = "BilinearSteel"
)

const (
	SteelElasticModulus = 200000.0
	SteelPoissonRatio   = 0.3
	SteelYieldStress    = 250.0
	SteelDensity        = 7850.0
	SteelHardeningRatio = 0.01
)

type SteelProperties struct {
	ElasticModulus float64 `json:"elastic_modulus"`
	PoissonRatio   float64 `json:"poisson_ratio"`
	YieldStress    float64 `json:"yield_stress"`
	Density        float64 `json:"density"`
	HardeningRatio float64 `json:"hardening_ratio"`
}

type Steel struct {
	Base       `json:",inline"`
	Properties SteelProperties `json:"properties"`
}

var _ Material = (*Steel)(nil)

func (m *Steel) Default() {
	m.Properties = SteelProperties{
		ElasticModulus: SteelElasticModulus,
		PoissonRatio:   SteelPoissonRatio,
		YieldStress:    SteelYieldStress,
		Density:        SteelDensity,
	}
	if m.MaterialType == BILINEAR_STEEL {
		m.Properties.HardeningRatio = SteelHardeningRatio
	}
}

func (m *Steel) GetElasticModulus() float64 {
	return m.Properties.ElasticModulus
}

func (m *Steel) ShearModulus() float64 {
	return shearModulus(m.Properties.ElasticModulus, m.Properties.PoissonRatio)
}

func (m *Steel) Validate() bool {
	m.validateBase()
	m.validateElastic(m.Properties.ElasticModulus, &m.Properties.PoissonRatio)
	m.validatePositive(m.Properties.YieldStress, "Yield stress")
	m.validateDensity(m.Properties.Density)
	if m.MaterialType == BILINEAR_STEEL && (m.Properties.HardeningRatio < 0 || m.Properties.HardeningRatio >= 1) {
		m.AddValidationMessage("Hardening ratio must be in range [0, 1)")
	}
	return m.ValidationResult()
}

func (m *Steel) hardening() float64 {
	if m.MaterialType == BILINEAR_STEEL {
		return m.Properties.HardeningRatio
	}
	return 0
}

func (m *Steel) ToTcl() string {
	if m.MaterialType == STEEL {
		return isotropicTcl(m.Id, m.Properties.ElasticModulus, m.Properties.PoissonRatio)
	}
	return fmt.Sprintf("uniaxialMaterial Steel01 %d %s %s %s", m.Id,
		model.Float(m.Properties.YieldStress), model.Float(m.Properties.ElasticModulus), fmtRatio(m.hardening()))
}

func (m *Steel) ToPy() string {
	if m.MaterialType == STEEL {
		return isotropicPy(m.Id, m.Properties.ElasticModulus, m.Properties.PoissonRatio)
	}
	return fmt.Sprintf("ops.uniaxialMaterial('Steel01', %d, %s, %s, %s)", m.Id,
		model.Float(m.Properties.YieldStress), model.Float(m.Properties.ElasticModulus), fmtRatio(m.hardening()))
}

// fmtRatio keeps the decimal point for integral ratios.
func fmtRatio(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.1f", v)
	}
	return model.Float(v)
}

func WithYieldStress(fy float64) Initializer {
	return func(m Material) {
		switch s := m.(type) {
		case *Steel:
			s.Properties.YieldStress = fy
		case *Aluminum:
			s.Properties.YieldStress = fy
		}
	}
}

func WithHardeningRatio(b float64) Initializer {
	return func(m Material) {
		if s, ok := m.(*Steel); ok {
			s.Properties.HardeningRatio = b
		}
	}
}

package material

import (
	"fmt"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/utils"
)

const (
	ELASTIC           = "ElasticMaterial"
	ELASTIC_ISOTROPIC = "ElasticIsotropicMaterial"
)

type ElasticProperties struct {
	ElasticModulus float64  `json:"elastic_modulus"`
	PoissonRatio   *float64 `json:"poisson_ratio,omitempty"`
}

// Elastic is a linear elastic material. The isotropic
// kind additionally requires a Poisson ratio.
type Elastic struct {
	Base       `json:",inline"`
	Properties ElasticProperties `json:"properties"`
}

var _ Material = (*Elastic)(nil)

func NewElastic(id int, name string, e float64) *Elastic {
	m := &Elastic{Properties: ElasticProperties{ElasticModulus: e}}
	m.SetType(ELASTIC)
	m.Id = id
	m.Metadata.Name = name
	return m
}

func NewElasticIsotropic(id int, name string, e, nu float64) *Elastic {
	m := NewElastic(id, name, e)
	m.SetType(ELASTIC_ISOTROPIC)
	m.Properties.PoissonRatio = utils.Pointer(nu)
	return m
}

func (m *Elastic) Default() {
	if m.MaterialType == ELASTIC_ISOTROPIC {
		m.Properties.PoissonRatio = utils.Pointer(0.0)
	}
}

func (m *Elastic) GetElasticModulus() float64 {
	return m.Properties.ElasticModulus
}

func (m *Elastic) GetPoissonRatio() float64 {
	return utils.PointerValue(m.Properties.PoissonRatio)
}

// ShearModulus is G = E/(2(1+nu)).
func (m *Elastic) ShearModulus() float64 {
	return shearModulus(m.Properties.ElasticModulus, m.GetPoissonRatio())
}

// BulkModulus is K = E/(3(1-2nu)).
func (m *Elastic) BulkModulus() float64 {
	return bulkModulus(m.Properties.ElasticModulus, m.GetPoissonRatio())
}

func (m *Elastic) Validate() bool {
	m.validateBase()
	m.validateElastic(m.Properties.ElasticModulus, m.Properties.PoissonRatio)
	if m.MaterialType == ELASTIC_ISOTROPIC && m.Properties.PoissonRatio == nil {
		m.AddValidationMessage("Isotropic material requires a Poisson ratio")
	}
	return m.ValidationResult()
}

func (m *Elastic) ToTcl() string {
	if m.MaterialType == ELASTIC_ISOTROPIC {
		return isotropicTcl(m.Id, m.Properties.ElasticModulus, m.GetPoissonRatio())
	}
	return uniaxialElasticTcl(m.Id, m.Properties.ElasticModulus)
}

func (m *Elastic) ToPy() string {
	if m.MaterialType == ELASTIC_ISOTROPIC {
		return isotropicPy(m.Id, m.Properties.ElasticModulus, m.GetPoissonRatio())
	}
	return uniaxialElasticPy(m.Id, m.Properties.ElasticModulus)
}

func shearModulus(e, nu float64) float64 {
	return e / (2 * (1 + nu))
}

func bulkModulus(e, nu float64) float64 {
	return e / (3 * (1 - 2*nu))
}

func uniaxialElasticTcl(id int, e float64) string {
	return fmt.Sprintf("uniaxialMaterial Elastic %d %s", id, model.Float(e))
}

func uniaxialElasticPy(id int, e float64) string {
	return fmt.Sprintf("ops.uniaxialMaterial('Elastic', %d, %s)", id, model.Float(e))
}

func isotropicTcl(id int, e, nu float64) string {
	return fmt.Sprintf("nDMaterial ElasticIsotropic %d %s %s", id, model.Float(e), model.Float(nu))
}

func isotropicPy(id int, e, nu float64) string {
	return fmt.Sprintf("ops.nDMaterial('ElasticIsotropic', %d, %s, %s)", id, model.Float(e), model.Float(nu))
}

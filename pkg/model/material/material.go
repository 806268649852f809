package material

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

// TypeMeta is the material type discriminant.
type TypeMeta struct {
	MaterialType string `json:"material_type"`
}

func (t *TypeMeta) GetType() string {
	return t.MaterialType
}

func (t *TypeMeta) SetType(typ string) {
	t.MaterialType = typ
}

// Material is the common interface of all material kinds.
// Additional kinds must embed Base.
type Material interface {
	model.Object
	runtime.Object

	// GetElasticModulus provides the effective Young's modulus.
	GetElasticModulus() float64

	MaterialBase() *Base
}

type Initializer = runtime.Initializer[Material]

type Base struct {
	model.ObjectMeta `json:",inline"`
	TypeMeta         `json:",inline"`
}

func (b *Base) MaterialBase() *Base {
	return b
}

func (b *Base) GetObjectType() model.ObjectType {
	return model.MATERIAL
}

func (b *Base) validateBase() {
	b.ResetValidation()
}

func (b *Base) validateElastic(e float64, nu *float64) {
	if e <= 0 {
		b.AddValidationMessage("Elastic modulus must be positive")
	}
	if nu != nil && (*nu < 0 || *nu >= 0.5) {
		b.AddValidationMessage("Poisson ratio must be in range [0, 0.5), got %s", model.Float(*nu))
	}
}

func (b *Base) validatePositive(v float64, name string) {
	if v <= 0 {
		b.AddValidationMessage("%s must be positive", name)
	}
}

func (b *Base) validateDensity(rho float64) {
	if rho < 0 {
		b.AddValidationMessage("Density must not be negative")
	}
}

func WithMetadata(meta model.Metadata) Initializer {
	return func(m Material) {
		*m.GetMetadata() = meta
	}
}

func WithName(name string) Initializer {
	return func(m Material) {
		m.GetMetadata().Name = name
	}
}

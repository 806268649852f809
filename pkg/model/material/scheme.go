package material

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

// NewScheme provides a scheme with all material kinds
// provided by this package.
func NewScheme() runtime.Scheme[Material] {
	s := runtime.NewYAMLScheme[Material]("material", runtime.TypeExtractorFor[TypeMeta]())
	runtime.MustRegister[Elastic, *Elastic, Material](s, ELASTIC, ELASTIC_ISOTROPIC)
	runtime.MustRegister[Steel, *Steel, Material](s, STEEL, ELASTIC_PERFECTLY_PLASTIC_STEEL, BILINEAR_STEEL)
	runtime.MustRegister[Concrete, *Concrete, Material](s, CONCRETE, ELASTIC_CONCRETE, KENT_PARK_CONCRETE)
	runtime.MustRegister[Aluminum, *Aluminum, Material](s, ALUMINUM)
	runtime.MustRegister[Wood, *Wood, Material](s, WOOD)
	runtime.MustRegister[Custom, *Custom, Material](s, CUSTOM)
	return s
}

var DefaultScheme = NewScheme()

func Create(typ string, init ...Initializer) (Material, error) {
	return DefaultScheme.CreateObject(typ, init...)
}

func Decode(data []byte) (Material, error) {
	return model.Decode[Material](DefaultScheme, model.MATERIAL, data)
}

func FromDict(m map[string]interface{}) (Material, error) {
	return model.FromDict[Material](DefaultScheme, model.MATERIAL, m)
}

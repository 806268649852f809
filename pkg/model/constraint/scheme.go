package constraint

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

func NewScheme() runtime.Scheme[BoundaryCondition] {
	s := runtime.NewYAMLScheme[BoundaryCondition]("boundary condition", runtime.TypeExtractorFor[TypeMeta]())
	runtime.MustRegister[Fixed, *Fixed, BoundaryCondition](s, FIXED, PINNED, ROLLER, FREE, CUSTOM)
	runtime.MustRegister[Spring, *Spring, BoundaryCondition](s, SPRING)
	runtime.MustRegister[Displacement, *Displacement, BoundaryCondition](s, DISPLACEMENT)
	runtime.MustRegister[MultiPoint, *MultiPoint, BoundaryCondition](s, MULTI_POINT)
	return s
}

var DefaultScheme = NewScheme()

func Create(typ string, init ...Initializer) (BoundaryCondition, error) {
	return DefaultScheme.CreateObject(typ, init...)
}

func Decode(data []byte) (BoundaryCondition, error) {
	return model.Decode[BoundaryCondition](DefaultScheme, model.BOUNDARY_CONDITION, data)
}

func FromDict(m map[string]interface{}) (BoundaryCondition, error) {
	return model.FromDict[BoundaryCondition](DefaultScheme, model.BOUNDARY_CONDITION, m)
}

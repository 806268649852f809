package load

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

func NewScheme() runtime.Scheme[Load] {
	s := runtime.NewYAMLScheme[Load]("load", runtime.TypeExtractorFor[TypeMeta]())
	runtime.MustRegister[Point, *Point, Load](s, POINT)
	runtime.MustRegister[Distributed, *Distributed, Load](s, DISTRIBUTED)
	runtime.MustRegister[SelfWeight, *SelfWeight, Load](s, SELF_WEIGHT)
	runtime.MustRegister[TimeVarying, *TimeVarying, Load](s, TIME_VARYING)
	runtime.MustRegister[Pattern, *Pattern, Load](s, PATTERN)
	return s
}

var DefaultScheme = NewScheme()

func Create(typ string, init ...Initializer) (Load, error) {
	return DefaultScheme.CreateObject(typ, init...)
}

func Decode(data []byte) (Load, error) {
	return model.Decode[Load](DefaultScheme, model.LOAD, data)
}

func FromDict(m map[string]interface{}) (Load, error) {
	return model.FromDict[Load](DefaultScheme, model.LOAD, m)
}

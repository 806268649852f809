package section

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

func NewScheme() runtime.Scheme[Section] {
	s := runtime.NewYAMLScheme[Section]("section", runtime.TypeExtractorFor[TypeMeta]())
	runtime.MustRegister[Elastic, *Elastic, Section](s, ELASTIC)
	runtime.MustRegister[Rectangular, *Rectangular, Section](s, RECTANGULAR)
	runtime.MustRegister[Circular, *Circular, Section](s, CIRCULAR)
	runtime.MustRegister[CircularHollow, *CircularHollow, Section](s, CIRCULAR_HOLLOW)
	runtime.MustRegister[ISection, *ISection, Section](s, I_SECTION)
	runtime.MustRegister[WideFlange, *WideFlange, Section](s, WIDE_FLANGE)
	runtime.MustRegister[Channel, *Channel, Section](s, CHANNEL)
	runtime.MustRegister[RectangularFiber, *RectangularFiber, Section](s, RECTANGULAR_FIBER)
	return s
}

var DefaultScheme = NewScheme()

func Create(typ string, init ...Initializer) (Section, error) {
	return DefaultScheme.CreateObject(typ, init...)
}

func Decode(data []byte) (Section, error) {
	return model.Decode[Section](DefaultScheme, model.SECTION, data)
}

func FromDict(m map[string]interface{}) (Section, error) {
	return model.FromDict[Section](DefaultScheme, model.SECTION, m)
}

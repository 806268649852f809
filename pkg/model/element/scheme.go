package element

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

var (
	fmtFloat  = model.Float
	fmtFloats = model.Floats
)

// NewScheme provides a scheme with all element kinds
// provided by this package.
func NewScheme() runtime.Scheme[Element] {
	s := runtime.NewYAMLScheme[Element]("element", runtime.TypeExtractorFor[TypeMeta]())
	runtime.MustRegister[Truss, *Truss, Element](s, TRUSS, TRUSS_2D, TRUSS_3D)
	runtime.MustRegister[Frame, *Frame, Element](s, FRAME, ELASTIC_BEAM_COLUMN, DISP_BEAM_COLUMN)
	runtime.MustRegister[Shell, *Shell, Element](s, SHELL, SHELL_MITC4, SHELL_NLDKGQ, SHELL_DKGQ)
	runtime.MustRegister[Solid, *Solid, Element](s, SOLID, BRICK_8NODE, BRICK_20NODE, BRICK_UP)
	return s
}

// DefaultScheme is used for decoding without a model manager.
var DefaultScheme = NewScheme()

func Create(typ string, init ...Initializer) (Element, error) {
	return DefaultScheme.CreateObject(typ, init...)
}

func Decode(data []byte) (Element, error) {
	return model.Decode[Element](DefaultScheme, model.ELEMENT, data)
}

func FromDict(m map[string]interface{}) (Element, error) {
	return model.FromDict[Element](DefaultScheme, model.ELEMENT, m)
}

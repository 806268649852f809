package runtime_test

import (
	"errors"

	. "github.com/mandelsoft/femodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/runtime"
)

type TypeMeta struct {
	Kind string `json:"kind"`
}

func (m *TypeMeta) GetType() string {
	return m.Kind
}

func (m *TypeMeta) SetType(t string) {
	m.Kind = t
}

type Shape struct {
	TypeMeta `json:",inline"`
	Size     int `json:"size"`
}

type Other struct {
	TypeMeta `json:",inline"`
}

var _ = Describe("scheme", func() {
	var scheme runtime.Scheme[runtime.Object]

	BeforeEach(func() {
		scheme = runtime.NewYAMLScheme[runtime.Object]("shape", runtime.TypeExtractorFor[TypeMeta]())
		runtime.MustRegister[Shape](runtime.TypeScheme[runtime.Object](scheme), "Square", "Circle")
		MustBeSuccessful(scheme.Register("Other", &Other{}))
	})

	It("lists sorted type names", func() {
		Expect(scheme.TypeNames()).To(Equal([]string{"Circle", "Other", "Square"}))
		Expect(scheme.HasType("Square")).To(BeTrue())
		Expect(scheme.HasType("Triangle")).To(BeFalse())
	})

	It("creates initialized objects", func() {
		o := Must(scheme.CreateObject("Circle", func(o runtime.Object) { o.(*Shape).Size = 3 }))
		Expect(o).To(Equal(&Shape{TypeMeta{"Circle"}, 3}))
	})

	It("decodes by discriminant", func() {
		o := Must(scheme.Decode([]byte(`{"kind": "Square", "size": 5}`)))
		Expect(o).To(Equal(&Shape{TypeMeta{"Square"}, 5}))

		o = Must(scheme.Decode([]byte("kind: Other\n")))
		Expect(o).To(Equal(&Other{TypeMeta{"Other"}}))
	})

	It("rejects non pointer prototypes", func() {
		Expect(scheme.Register("", &Other{})).NotTo(Succeed())
	})

	Context("unknown types", func() {
		It("suggests close names", func() {
			_, err := scheme.CreateObject("Sqare")
			Expect(errors.Is(err, runtime.ErrUnknownType)).To(BeTrue())
			Expect(err).To(MatchError(`unknown type: shape "Sqare" (did you mean "Square"?)`))
		})

		It("omits far names", func() {
			_, err := scheme.Decode([]byte(`{"kind": "Hexadecagon"}`))
			Expect(err).To(MatchError(`unknown type: shape "Hexadecagon"`))
		})
	})
})

package section_test

import (
	"math"

	"github.com/go-test/deep"
	. "github.com/mandelsoft/femodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/section"
)

var _ = Describe("sections", func() {
	Context("elastic", func() {
		It("validates", func() {
			s := section.NewElastic(1, "s", 0, 1, 1)
			s.Properties.G = new(float64)
			Expect(s.Validate()).To(BeFalse())
			Expect(s.GetValidationMessages()).To(ConsistOf(
				"Young's modulus (E) must be positive",
				"Second moment of area about y-axis (Iy) is required for 3D analysis",
				"Shear modulus (G) must be positive",
				"Torsional constant (J) is required for 3D analysis",
			))
		})

		It("exports 2D and 3D", func() {
			s := section.NewElastic(1, "s", 200000, 0.01, 0.0002)
			Expect(s.Validate()).To(BeTrue())
			Expect(s.ToTcl()).To(Equal("section Elastic 1 200000 0.01 0.0002"))
			section.With3D(0.0001, 80000, 0.00005)(s)
			Expect(s.ToPy()).To(Equal("ops.section('Elastic', 1, 200000, 0.01, 0.0002, 0.0001, 80000, 0.00005)"))
		})
	})

	Context("shapes", func() {
		It("derives properties", func() {
			s := section.NewRectangular(1, "r", 0.2, 0.3, 1)
			Expect(s.Area()).To(BeNumerically("~", 0.06, 1e-12))
			Expect(s.Inertia().Izz).To(BeNumerically("~", 0.2*0.027/12, 1e-12))

			c := Must(section.Create(section.CIRCULAR_HOLLOW, section.WithDiameter(2), section.WithWallThickness(0.5))).(*section.CircularHollow)
			Expect(c.Area()).To(BeNumerically("~", math.Pi*0.75, 1e-12))
		})

		It("validates", func() {
			s := Must(section.Create(section.CIRCULAR_HOLLOW, section.WithDiameter(1), section.WithWallThickness(0.5)))
			Expect(s.Validate()).To(BeFalse())
			Expect(s.GetValidationMessages()).To(ConsistOf(
				"Wall thickness must be less than half the outer diameter",
				"At least one material ID must be specified",
			))
		})

		It("exports with a single material", func() {
			s := section.NewRectangular(2, "r", 1, 2, 3)
			Expect(s.ToTcl()).To(HavePrefix("section Elastic 2 $matTag3 2 "))
			s.MaterialIds = nil
			Expect(s.ToTcl()).To(HavePrefix("#"))
		})
	})

	Context("profiles", func() {
		It("derives properties of symmetric I profiles", func() {
			w := Must(section.Create(section.WIDE_FLANGE, section.WithProfile(0.3, 0.2, 0.01, 0.02), section.WithMaterials(1))).(*section.WideFlange)
			i := Must(section.Create(section.I_SECTION, section.WithProfile(0.3, 0.2, 0.01, 0.02), section.WithMaterials(1))).(*section.ISection)
			Expect(w.Area()).To(BeNumerically("~", 0.0106, 1e-12))
			Expect(w.Inertia()).To(Equal(i.Inertia()))
			Expect(w.Inertia().Izz).To(BeNumerically("~", 2*(0.2*8e-6/12+0.004*0.14*0.14)+0.01*0.26*0.26*0.26/12, 1e-12))
			Expect(w.Validate()).To(BeTrue())
			Expect(w.ToTcl()).To(HavePrefix("section Elastic 0 $matTag1 "))
		})

		It("shifts the centroid of unsymmetric I profiles", func() {
			i := Must(section.Create(section.I_SECTION, section.WithProfile(0.3, 0.2, 0.01, 0.02))).(*section.ISection)
			sym := i.Inertia()
			i.BottomFlangeWidth = 0.1
			Expect(i.Area()).To(BeNumerically("~", 0.0086, 1e-12))
			Expect(i.Inertia().Izz).To(BeNumerically("<", sym.Izz))
		})

		It("derives channel properties", func() {
			c := Must(section.Create(section.CHANNEL, section.WithProfile(0.2, 0.1, 0.01, 0.01), section.WithMaterials(1))).(*section.Channel)
			Expect(c.Area()).To(BeNumerically("~", 0.0038, 1e-12))
			Expect(c.Validate()).To(BeTrue())
		})

		It("validates dimensions", func() {
			s := Must(section.Create(section.I_SECTION, section.WithProfile(0.1, 0.1, 0, 0.05), section.WithMaterials(1)))
			Expect(s.Validate()).To(BeFalse())
			Expect(s.GetValidationMessages()).To(ConsistOf(
				"Web thickness must be greater than zero",
				"Sum of flange thicknesses must be less than total height",
			))
			s = Must(section.Create(section.CHANNEL, section.WithProfile(0.1, 0.1, 0.01, 0.06), section.WithMaterials(1)))
			Expect(s.Validate()).To(BeFalse())
			Expect(s.GetValidationMessages()).To(ConsistOf("Flange thickness must be less than half the height"))
		})
	})

	Context("fiber", func() {
		It("defaults the fiber counts", func() {
			s := Must(section.Create(section.RECTANGULAR_FIBER, section.WithDimensions(0.4, 0.6), section.WithMaterials(2)))
			s.SetId(5)
			Expect(s.Validate()).To(BeTrue())
			Expect(s.Area()).To(BeNumerically("~", 0.24, 1e-12))
			Expect(s.ToTcl()).To(Equal("section Fiber 5 {\n  patch rect $matTag2 10 10 -0.2 -0.3 0.2 0.3\n}"))
			Expect(s.ToPy()).To(Equal("ops.section('Fiber', 5)\nops.patch('rect', matTag2, 10, 10, -0.2, -0.3, 0.2, 0.3)"))
		})

		It("validates the fiber counts", func() {
			s := Must(section.Create(section.RECTANGULAR_FIBER, section.WithDimensions(0.4, 0.6), section.WithMaterials(2), section.WithFibers(1, 4)))
			Expect(s.Validate()).To(BeFalse())
			Expect(s.GetValidationMessages()).To(ConsistOf("Number of fibers in y direction must be at least 2"))
		})
	})

	It("round trips all kinds", func() {
		list := []section.Section{
			Must(section.Create(section.ELASTIC, section.WithStiffness(1, 2, 3), section.WithShearFactors(0.8, 0.8))),
			section.NewRectangular(2, "r", 1, 2, 3),
			Must(section.Create(section.CIRCULAR, section.WithDiameter(1), section.WithMaterials(1, 2))),
			Must(section.Create(section.CIRCULAR_HOLLOW, section.WithDiameter(1), section.WithWallThickness(0.1))),
			Must(section.Create(section.I_SECTION, section.WithProfile(0.3, 0.2, 0.01, 0.02), section.WithMaterials(1))),
			Must(section.Create(section.WIDE_FLANGE, section.WithProfile(0.3, 0.2, 0.01, 0.02), section.WithMaterials(1))),
			Must(section.Create(section.CHANNEL, section.WithProfile(0.2, 0.1, 0.01, 0.01), section.WithMaterials(1))),
			Must(section.Create(section.RECTANGULAR_FIBER, section.WithDimensions(0.4, 0.6), section.WithFibers(4, 8), section.WithMaterials(2))),
		}
		for _, s := range list {
			r := Must(section.FromDict(Must(model.ToDict(s))))
			Expect(deep.Equal(r, s)).To(BeNil(), s.GetType())
		}
	})
})

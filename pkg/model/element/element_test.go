package element_test

import (
	"github.com/go-test/deep"
	. "github.com/mandelsoft/femodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/element"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

var _ = Describe("elements", func() {
	Context("truss", func() {
		It("reports all problems", func() {
			e := Must(element.Create(element.TRUSS, element.WithNodes(1), element.WithMaterial(1), element.WithArea(-1)))
			Expect(e.Validate()).To(BeFalse())
			Expect(e.GetValidationMessages()).To(ContainElements(
				"Truss element must have exactly 2 nodes",
				"Truss element must have a positive area",
			))
		})

		It("repopulates messages", func() {
			e := Must(element.Create(element.TRUSS, element.WithNodes(1), element.WithArea(1)))
			Expect(e.Validate()).To(BeFalse())
			e.ElementBase().Nodes = []int{1, 2}
			e.ElementBase().MaterialId = new(int)
			Expect(e.Validate()).To(BeTrue())
			Expect(e.GetValidationMessages()).To(BeEmpty())
		})

		It("exports", func() {
			e := element.NewTruss(3, "t", 1, 2, 5, 0.5)
			Expect(e.Validate()).To(BeTrue())
			Expect(e.ToTcl()).To(Equal("element truss 3 1 2 0.5 $matTag5"))
			Expect(e.ToPy()).To(Equal("ops.element('truss', 3, 1, 2, 0.5, matTag5)"))
		})
	})

	Context("frame", func() {
		It("defaults", func() {
			e := Must(element.Create(element.DISP_BEAM_COLUMN)).(*element.Frame)
			Expect(e.GeomTransformType).To(Equal(element.TRANSFORM_LINEAR))
			Expect(e.NumIntegrationPoints).To(Equal(element.DefaultIntegrationPoints))
		})

		It("validates", func() {
			e := Must(element.Create(element.DISP_BEAM_COLUMN, element.WithNodes(1, 2),
				element.WithGeometricTransformation("Twisted"), element.WithIntegrationPoints(1)))
			Expect(e.Validate()).To(BeFalse())
			Expect(e.GetValidationMessages()).To(ConsistOf(
				"Frame element must have a material assigned",
				"Frame element must have a section assigned",
				"Geometric transformation type must be one of [Linear PDelta Corotational], got Twisted",
				"Displacement-based beam-column must have at least 2 integration points",
			))
		})

		It("exports", func() {
			e := Must(element.Create(element.ELASTIC_BEAM_COLUMN, element.WithNodes(1, 2),
				element.WithMaterial(1), element.WithSection(2), element.WithTransformationId(3)))
			Expect(e.ToTcl()).To(Equal("element elasticBeamColumn 0 1 2 $secTag2 $transfTag3"))
			e.SetId(7)
			Expect(e.ToPy()).To(Equal("ops.element('elasticBeamColumn', 7, 1, 2, secTag2, transfTag3)"))
		})
	})

	Context("shell", func() {
		It("requires 4 nodes", func() {
			e := Must(element.Create(element.SHELL_MITC4, element.WithNodes(1, 2, 3), element.WithMaterial(1), element.WithThickness(0.2)))
			Expect(e.Validate()).To(BeFalse())
			Expect(e.GetValidationMessages()).To(ConsistOf("MITC4 shell element must have exactly 4 nodes"))
		})
	})

	Context("solid", func() {
		It("requires 20 nodes", func() {
			e := Must(element.Create(element.BRICK_20NODE, element.WithNodes(1, 2, 3, 4, 5, 6, 7, 8), element.WithMaterial(1)))
			Expect(e.Validate()).To(BeFalse())
			Expect(e.GetValidationMessages()).To(ConsistOf("20-node brick element must have exactly 20 nodes"))
		})

		It("exports bricks", func() {
			e := Must(element.Create(element.BRICK_8NODE, element.WithNodes(1, 2, 3, 4, 5, 6, 7, 8), element.WithMaterial(1), element.WithBodyForces(0, 0, -9.81)))
			e.SetId(1)
			Expect(e.Validate()).To(BeTrue())
			Expect(e.ToTcl()).To(Equal("element stdBrick 1 1 2 3 4 5 6 7 8 $matTag1 0 0 -9.81"))
		})
	})

	Context("scheme", func() {
		It("rejects unknown types", func() {
			_, err := element.Create("TrussElemnt")
			Expect(err).To(MatchError(runtime.ErrUnknownType))
			Expect(err.Error()).To(Equal(`unknown type: element "TrussElemnt" (did you mean "TrussElement"?)`))
		})

		It("round trips all kinds", func() {
			list := []element.Element{
				element.NewTruss(1, "t", 1, 2, 1, 0.1),
				Must(element.Create(element.DISP_BEAM_COLUMN, element.WithNodes(1, 2), element.WithSection(1), element.WithMassPerUnitLength(2))),
				Must(element.Create(element.SHELL_DKGQ, element.WithNodes(1, 2, 3, 4), element.WithThickness(0.3), element.WithProperty("layer", "top"))),
				Must(element.Create(element.BRICK_UP, element.WithFluidCoupling(2.2e6, 1000, 1e-4, 1e-4, 1e-4), element.WithBodyForces(0, 0, -1))),
			}
			for _, e := range list {
				e.GetMetadata().AddTag("x")
				r := Must(element.FromDict(Must(model.ToDict(e))))
				Expect(deep.Equal(r, e)).To(BeNil(), e.GetType())
			}
		})

		It("reports a missing discriminant", func() {
			_, err := element.FromDict(map[string]interface{}{"id": 5})
			Expect(err).To(MatchError(model.ErrDeserialization))
			Expect(err).To(MatchError(runtime.ErrUnknownType))
			Expect(err.Error()).To(ContainSubstring("ELEMENT 5"))
		})
	})
})

package node_test

import (
	"github.com/go-test/deep"
	. "github.com/mandelsoft/femodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/node"
)

var _ = Describe("node", func() {
	It("validates the dimension", func() {
		n := node.New(1, model.NewMetadata("n"))
		Expect(n.Validate()).To(BeFalse())
		Expect(n.GetValidationMessages()).To(Equal([]string{"Node coordinates must have 1, 2, or 3 components, got 0"}))

		n.SetCoordinates(1, 2)
		Expect(n.Validate()).To(BeTrue())
		Expect(n.GetValidationMessages()).To(BeEmpty())
	})

	It("reports all problems", func() {
		n := node.New(1, model.NewMetadata("n"), 0, 0)
		n.SetMass(1)
		n.SetFixedDofs(true)
		Expect(n.Validate()).To(BeFalse())
		Expect(n.GetValidationMessages()).To(ConsistOf(
			"Node mass must have the same number of components as coordinates",
			"Fixed DOFs must have twice the number of components as coordinates",
		))
	})

	It("extends coordinates", func() {
		n := node.New(1, model.NewMetadata("n"), 1)
		n.SetZ(3)
		Expect(n.Coordinates).To(Equal([]float64{1, 0, 3}))
		Expect(n.Dimension()).To(Equal(3))
		Expect(n.Y()).To(Equal(0.0))
	})

	It("exports", func() {
		n := node.New(4, model.NewMetadata("n"), 0, 2.5)
		n.SetMass(10, 10)
		n.SetFixedDofs(true, true, false, false)
		Expect(n.ToTcl()).To(Equal("node 4 0 2.5\nmass 4 10 10\nfix 4 1 1 0 0"))
		Expect(n.ToPy()).To(Equal("ops.node(4, 0, 2.5)\nops.mass(4, 10, 10)\nops.fix(4, 1, 1, 0, 0)"))
	})

	It("round trips", func() {
		n := node.New(4, model.NewMetadata("n", "support"), 0, 2.5, 1)
		n.Metadata.Description = "corner"
		n.Metadata.SetCustomProperty("level", "1")
		n.SetFixedDofs(true, true, true, false, false, false)

		r := Must(node.FromDict(Must(model.ToDict(n))))
		Expect(deep.Equal(r, n)).To(BeNil())
	})

	It("reports malformed data", func() {
		_, err := node.FromDict(map[string]interface{}{"id": 3, "coordinates": "none"})
		Expect(err).To(MatchError(model.ErrDeserialization))
		Expect(err.Error()).To(HavePrefix("deserialization failed: NODE 3: "))
	})
})

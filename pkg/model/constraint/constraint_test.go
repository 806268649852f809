package constraint_test

import (
	"github.com/go-test/deep"
	. "github.com/mandelsoft/femodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/constraint"
)

var _ = Describe("boundary conditions", func() {
	Context("fixed", func() {
		It("creates pinned supports", func() {
			c := Must(constraint.NewPinned(1, "p", 3, 3))
			Expect(c.FixedDofs).To(Equal([]bool{true, true, true, false, false, false}))
			Expect(c.GetType()).To(Equal(constraint.PINNED))
			Expect(c.Validate()).To(BeTrue())

			_, err := constraint.NewPinned(1, "p", 3, 4)
			MustFailWithMessage(err, "dimension must be 2 or 3, got 4")
		})

		It("creates rollers", func() {
			c := Must(constraint.NewRoller(1, "r", 3, 2, 1))
			Expect(c.FixedDofs).To(Equal([]bool{false, true, false, false}))
			_, err := constraint.NewRoller(1, "r", 3, 2, 2)
			MustFailWithMessage(err, "fixed direction must be between 0 and 1, got 2")
			_, err = constraint.NewRoller(1, "r", 3, 1, 0)
			MustFailWithMessage(err, "dimension must be 2 or 3, got 1")
		})

		It("validates", func() {
			c := constraint.NewFixed(1, "f", -1, 3)
			Expect(c.Validate()).To(BeFalse())
			Expect(c.GetValidationMessages()).To(ConsistOf(
				"Node ID must be non-negative",
				"Number of fixed DOFs must be even (paired rotational and translational DOFs)",
			))
			c = Must(constraint.Create(constraint.FIXED)).(*constraint.Fixed)
			Expect(c.Validate()).To(BeFalse())
			Expect(c.GetValidationMessages()).To(ConsistOf("Fixed DOFs list is required"))
		})

		It("requires dofs for free nodes", func() {
			c := Must(constraint.Create(constraint.FREE))
			Expect(c.Validate()).To(BeFalse())
			Expect(c.GetValidationMessages()).To(ConsistOf("Fixed DOFs list is required"))

			c = Must(constraint.Create(constraint.FREE, constraint.WithFixedDofs(false, false, false, false)))
			Expect(c.Validate()).To(BeTrue())
		})

		It("exports", func() {
			c := Must(constraint.NewPinned(1, "p", 3, 2))
			Expect(c.ToTcl()).To(Equal("fix 3 1 1 0 0"))
			Expect(c.ToPy()).To(Equal("ops.fix(3, 1, 1, 0, 0)"))
		})
	})

	Context("spring", func() {
		It("validates", func() {
			c := Must(constraint.Create(constraint.SPRING, constraint.WithSprings([]int{0, 1}, []float64{-1})))
			Expect(c.Validate()).To(BeFalse())
			Expect(c.GetValidationMessages()).To(ConsistOf(
				"Number of spring DOFs (2) must match number of spring stiffness values (1)",
				"Spring stiffness must be positive",
			))
		})

		It("exports", func() {
			c := Must(constraint.Create(constraint.SPRING, constraint.WithNode(4), constraint.WithSprings([]int{1}, []float64{1000})))
			c.SetId(2)
			Expect(c.ToTcl()).To(Equal("uniaxialMaterial Elastic spring_mat_2_0 1000\nelement zeroLength spring_ele_2_0 4 0 -mat spring_mat_2_0 -dir 2"))
		})
	})

	Context("displacement", func() {
		It("exports", func() {
			c := Must(constraint.Create(constraint.DISPLACEMENT, constraint.WithNode(4), constraint.WithDisplacements([]int{0, 2}, []float64{0.01, 0})))
			Expect(c.Validate()).To(BeTrue())
			Expect(c.ToTcl()).To(Equal("sp 4 1 0.01\nsp 4 3 0"))
			Expect(c.ToPy()).To(Equal("ops.sp(4, 1, 0.01)\nops.sp(4, 3, 0)"))
		})
	})

	Context("multi point", func() {
		It("defaults the coefficient", func() {
			c := Must(constraint.Create(constraint.MULTI_POINT)).(*constraint.MultiPoint)
			Expect(c.Coefficient).To(Equal(1.0))
			Expect(c.Validate()).To(BeFalse())
			Expect(c.GetValidationMessages()).To(ConsistOf("Retained and constrained DOFs cannot be the same"))
		})

		It("exports equal DOFs and linear couplings", func() {
			c := constraint.NewMultiPoint(1, "m", 1, 0, 2, 0)
			Expect(c.GetNodeIds()).To(Equal([]int{2, 1}))
			Expect(c.ToTcl()).To(Equal("equalDOF 1 2 1"))
			constraint.WithCoupling(0.5, 0.1)(c)
			Expect(c.ToTcl()).To(Equal("mp 2 1 0.5 1 1 0.1"))
			Expect(c.ToPy()).To(Equal("ops.mp(2, 1, 0.5, 1, 1, 0.1)"))
		})
	})

	It("round trips all kinds", func() {
		list := []constraint.BoundaryCondition{
			Must(constraint.NewRoller(1, "r", 3, 3, 2)),
			Must(constraint.Create(constraint.SPRING, constraint.WithSprings([]int{1}, []float64{5}))),
			Must(constraint.Create(constraint.DISPLACEMENT, constraint.WithDisplacements([]int{1}, []float64{0.5}))),
			constraint.NewMultiPoint(4, "m", 1, 0, 2, 1),
		}
		for _, c := range list {
			r := Must(constraint.FromDict(Must(model.ToDict(c))))
			Expect(deep.Equal(r, c)).To(BeNil(), c.GetType())
		}
	})
})

package load_test

import (
	"github.com/go-test/deep"
	. "github.com/mandelsoft/femodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/load"
)

var _ = Describe("loads", func() {
	It("maps directions", func() {
		Expect(load.Y.Dof()).To(Equal(2))
		Expect(load.ZZ.Dof()).To(Equal(6))
		Expect(load.LOCAL_1.Dof()).To(Equal(0))
		Expect(load.Direction("W").IsValid()).To(BeFalse())
	})

	Context("point", func() {
		It("validates", func() {
			l := load.NewPoint(1, "p", -1, load.Y, 0)
			Expect(l.Validate()).To(BeFalse())
			Expect(l.GetValidationMessages()).To(ConsistOf(
				"Node ID must be non-negative",
				"Load value should not be zero",
			))
		})

		It("exports", func() {
			l := load.NewPoint(1, "p", 3, load.Y, -10)
			Expect(l.ToTcl()).To(Equal("load 3 0 -10 0 0 0 0"))
			Expect(l.ToPy()).To(Equal("ops.load(3, 0, -10, 0, 0, 0, 0)"))
			l.Direction = load.LOCAL_2
			Expect(l.ToTcl()).To(HavePrefix("#"))
		})
	})

	Context("distributed", func() {
		It("defaults the end value", func() {
			l := load.NewDistributed(1, "d", 2, load.LOCAL_2, -5)
			Expect(l.End()).To(Equal(-5.0))
			Expect(l.IsUniform()).To(BeTrue())
			Expect(l.ToTcl()).To(Equal("eleLoad -ele 2 -type -beamUniform -5 0"))
			l.Direction = load.LOCAL_1
			Expect(l.ToPy()).To(Equal("ops.eleLoad('-ele', 2, '-type', '-beamUniform', 0, -5)"))
		})

		It("validates", func() {
			l := load.NewDistributed(1, "d", 2, load.LOCAL_2, 0, 0)
			Expect(l.Validate()).To(BeFalse())
			Expect(l.GetValidationMessages()).To(ConsistOf("Load values should not both be zero"))
		})

		It("does not export linear loads", func() {
			l := load.NewDistributed(1, "d", 2, load.LOCAL_2, 1, 2)
			Expect(l.ToTcl()).To(Equal("# distributed load 1: non-uniform distribution not supported"))
		})
	})

	Context("self weight", func() {
		It("validates", func() {
			l := Must(load.Create(load.SELF_WEIGHT, load.WithDirection(load.XX), load.WithFactor(0)))
			Expect(l.Validate()).To(BeFalse())
			Expect(l.GetValidationMessages()).To(ConsistOf(
				"At least one element ID must be specified",
				"Load factor should not be zero",
				"Direction must be X, Y, or Z for self-weight loads",
			))
		})

		It("exports", func() {
			l := Must(load.Create(load.SELF_WEIGHT, load.WithElements(1, 2)))
			Expect(l.ToTcl()).To(Equal("# Self-weight load in direction Z with factor 1\neleLoad -ele 1 2 -type -selfWeight 0 0 1"))
		})
	})

	Context("time varying", func() {
		It("exports", func() {
			l := Must(load.Create(load.TIME_VARYING, load.WithNode(2), load.WithTimeSeries(1), load.WithDirection(load.X), load.WithFactor(2)))
			l.SetId(5)
			Expect(l.Validate()).To(BeTrue())
			Expect(l.ToTcl()).To(Equal("pattern Plain 5 1 {\n  load 2 2 0 0 0 0 0\n}"))
		})
	})

	Context("pattern", func() {
		It("validates", func() {
			l := Must(load.Create(load.PATTERN))
			Expect(l.Validate()).To(BeFalse())
			Expect(l.GetValidationMessages()).To(ConsistOf("At least one load ID must be specified"))
		})
	})

	It("round trips all kinds", func() {
		list := []load.Load{
			load.NewPoint(1, "p", 3, load.Y, -10),
			load.NewDistributed(2, "d", 2, load.LOCAL_2, -5),
			load.NewDistributed(3, "d", 2, load.LOCAL_2, -5, -7),
			Must(load.Create(load.SELF_WEIGHT, load.WithElements(1, 2))),
			Must(load.Create(load.TIME_VARYING, load.WithTimeSeries(3))),
			Must(load.Create(load.PATTERN, load.WithLoads(1, 2))),
		}
		for _, l := range list {
			r := Must(load.FromDict(Must(model.ToDict(l))))
			Expect(deep.Equal(r, l)).To(BeNil(), l.GetType())
		}
	})
})

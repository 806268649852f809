package stage_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/stage"
)

var _ = Describe("stage", func() {
	It("manages memberships", func() {
		s := stage.New(1, model.NewMetadata("s"), stage.STATIC)
		s.AddNode(1, 2)
		Expect(s.RemoveNode(1)).To(BeTrue())
		Expect(s.RemoveNode(1)).To(BeFalse())
		Expect(s.ActiveNodes.List()).To(Equal([]int{2}))
		Expect(s.RemoveBoundaryCondition(3)).To(BeFalse())
	})

	It("validates the order", func() {
		s := stage.New(1, model.NewMetadata("s"), stage.STATIC)
		s.Order = -1
		Expect(s.Validate()).To(BeFalse())
		Expect(s.GetValidationMessages()).To(ConsistOf("Stage order must be non-negative"))
		s.Order = 0
		Expect(s.Validate()).To(BeTrue())
		Expect(s.GetValidationMessages()).To(BeEmpty())
	})

	It("provides parameter defaults", func() {
		s := stage.New(1, model.NewMetadata("s"), stage.EIGEN)
		Expect(s.GetAnalysisParameter("num_modes", 10)).To(Equal(10))
		s.SetAnalysisParameter("num_modes", 4)
		Expect(s.ToTcl()).To(HaveSuffix("wipeAnalysis\neigen 4"))
		Expect(s.ToPy()).To(HaveSuffix("ops.wipeAnalysis()\nops.eigen(4)"))
	})

	It("exports a static stage", func() {
		s := stage.New(2, model.NewMetadata("gravity"), stage.STATIC)
		s.Description = "dead load"
		Expect(s.ToTcl()).To(Equal(`# Stage 2: gravity
# Type: STATIC
# Description: dead load
# Setting up analysis for stage 2
wipeAnalysis
system BandGeneral
constraints Plain
numberer RCM
test NormDispIncr 1.0e-6 10
algorithm Newton
integrator LoadControl 1.0
analysis Static`))
		Expect(s.ToPy()).To(ContainSubstring("ops.integrator('LoadControl', 1.0)\nops.analysis('Static')"))
	})

	It("exports a dynamic stage", func() {
		s := stage.New(2, model.NewMetadata("quake"), stage.DYNAMIC)
		Expect(s.ToTcl()).To(HaveSuffix("integrator Newmark 0.5 0.25\nanalysis Transient"))
	})

	It("exports only the header for other stages", func() {
		s := stage.New(3, model.NewMetadata("build"), stage.CONSTRUCTION)
		Expect(s.ToTcl()).To(Equal("# Stage 3: build\n# Type: CONSTRUCTION\n# Description: \n# Setting up analysis for stage 3"))
	})
})

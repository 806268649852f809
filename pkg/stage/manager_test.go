package stage_test

import (
	"encoding/json"

	"github.com/go-test/deep"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/stage"
	. "github.com/mandelsoft/femodel/pkg/testutils"
	"github.com/mandelsoft/femodel/pkg/utils"
)

func names(list []*stage.Stage) []string {
	var r []string
	for _, s := range list {
		r = append(r, s.GetName())
	}
	return r
}

var _ = Describe("stage manager", func() {
	var m *stage.Manager

	BeforeEach(func() {
		m = stage.NewManager()
	})

	Context("sequence", func() {
		BeforeEach(func() {
			root1 := Must(m.CreateStage(stage.STATIC, "Root1", stage.WithOrder(1)))
			root2 := Must(m.CreateStage(stage.STATIC, "Root2", stage.WithOrder(0)))
			Must(m.CreateStage(stage.DYNAMIC, "Child1", stage.WithParent(root2.GetId()), stage.WithOrder(1)))
			Must(m.CreateStage(stage.EIGEN, "Child2", stage.WithParent(root2.GetId()), stage.WithOrder(0)))
			Expect(root1.GetId()).To(Equal(1))
		})

		It("orders roots and children by order", func() {
			Expect(names(m.StageSequence())).To(Equal([]string{"Root2", "Child2", "Child1", "Root1"}))
		})

		It("is idempotent", func() {
			Expect(m.StageSequence()).To(Equal(m.StageSequence()))
		})

		It("provides roots and children", func() {
			Expect(names(m.RootStages())).To(Equal([]string{"Root1", "Root2"}))
			Expect(names(m.ChildStages(2))).To(Equal([]string{"Child1", "Child2"}))
		})

		It("renders a tree", func() {
			Expect(m.Tree()).To(Equal(`2 Root2 [STATIC] order 0
  4 Child2 [EIGEN] order 0
  3 Child1 [DYNAMIC] order 1
1 Root1 [STATIC] order 1
`))
		})

		It("has no cycles", func() {
			MustBeSuccessful(m.CheckCycles())
		})
	})

	Context("cycles", func() {
		BeforeEach(func() {
			Must(m.CreateStage(stage.STATIC, "Root"))
			Must(m.CreateStage(stage.STATIC, "A", stage.WithParent(3)))
			Must(m.CreateStage(stage.STATIC, "B", stage.WithParent(2)))
			Must(m.CreateStage(stage.STATIC, "C", stage.WithParent(3)))
		})

		It("truncates the sequence", func() {
			Expect(names(m.StageSequence())).To(Equal([]string{"Root"}))
		})

		It("reports cycles", func() {
			Expect(m.Cycles()).To(Equal([][]int{{2, 3, 2}}))
			err := m.CheckCycles()
			Expect(err).To(MatchError(stage.ErrCycleDetected))
			Expect(err.Error()).To(Equal("stage parent cycle detected: 2->3->2"))
		})
	})

	It("handles the current stage", func() {
		s := Must(m.CreateStage(stage.STATIC, "s"))
		Expect(m.GetCurrentStage()).To(BeNil())
		Expect(m.SetCurrentStage(5)).To(BeFalse())
		Expect(m.SetCurrentStage(s.GetId())).To(BeTrue())
		Expect(m.GetCurrentStage()).To(BeIdenticalTo(s))
		m.Clear()
		Expect(m.GetCurrentStage()).To(BeNil())
	})

	It("round trips", func() {
		root := Must(m.CreateStage(stage.CONSTRUCTION, "root", stage.WithDescription("first"), stage.AsInitial()))
		root.AddNode(3, 1, 2)
		root.AddElement(7)
		root.SetAnalysisParameter("num_modes", 3)
		child := Must(m.CreateStage(stage.EIGEN, "child", stage.WithParent(root.GetId()), stage.WithOrder(2)))
		child.AddLoad(4)
		child.GetMetadata().AddTag("modal")
		m.SetCurrentStage(child.GetId())

		d := Must(m.ToDict())
		data := Must(json.Marshal(d))
		Expect(string(data)).To(ContainSubstring(`"active_nodes":[1,2,3]`))

		n := stage.NewManager()
		MustBeSuccessful(n.FromDict(d))
		Expect(n.GetCurrentStage().GetName()).To(Equal("child"))
		Expect(deep.Equal(Must(n.ToDict()), d)).To(BeNil())
		Expect(n.StageSequence()[1].ActiveLoads.List()).To(Equal([]int{4}))

		next := Must(n.CreateStage(stage.STATIC, "next"))
		Expect(next.GetId()).To(Equal(3))
	})

	It("rejects duplicate ids on load", func() {
		doc := &stage.Document{Stages: []*stage.Stage{
			stage.New(1, model.NewMetadata("a"), stage.STATIC),
			stage.New(1, model.NewMetadata("b"), stage.STATIC),
		}}
		err := m.FromDocument(doc)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("duplicate id"))
		Expect(names(m.AllStages())).To(Equal([]string{"a"}))
	})

	It("ignores an unknown current stage on load", func() {
		doc := &stage.Document{
			Stages:         []*stage.Stage{stage.New(1, model.NewMetadata("a"), stage.STATIC)},
			CurrentStageId: utils.Pointer(7),
		}
		MustBeSuccessful(m.FromDocument(doc))
		Expect(m.GetCurrentStage()).To(BeNil())
		Expect(m.GetCurrentStageId()).To(BeNil())

		doc.CurrentStageId = utils.Pointer(1)
		MustBeSuccessful(m.FromDocument(doc))
		Expect(m.GetCurrentStage().GetName()).To(Equal("a"))
	})
})

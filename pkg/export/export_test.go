package export_test

import (
	"bytes"
	"strings"

	. "github.com/mandelsoft/femodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/export"
	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/constraint"
	"github.com/mandelsoft/femodel/pkg/model/element"
	"github.com/mandelsoft/femodel/pkg/model/load"
	"github.com/mandelsoft/femodel/pkg/model/material"
	"github.com/mandelsoft/femodel/pkg/model/section"
	"github.com/mandelsoft/femodel/pkg/stage"
)

func frame(m *manager.ModelManager) {
	n1 := Must(m.CreateNode("n1", 0, 0))
	n2 := Must(m.CreateNode("n2", 0, 3))
	n3 := Must(m.CreateNode("n3", 4, 3))
	mat := Must(m.CreateMaterial(material.STEEL))
	sec := Must(m.CreateSection(section.ELASTIC, section.WithStiffness(200000, 0.01, 0.0001)))
	Must(m.CreateElement(element.ELASTIC_BEAM_COLUMN,
		element.WithNodes(n1.GetId(), n2.GetId()), element.WithMaterial(mat.GetId()), element.WithSection(sec.GetId())))
	Must(m.CreateElement(element.ELASTIC_BEAM_COLUMN,
		element.WithNodes(n2.GetId(), n3.GetId()), element.WithMaterial(mat.GetId()), element.WithSection(sec.GetId()),
		element.WithGeometricTransformation(element.TRANSFORM_PDELTA), element.WithTransformationId(2)))
	MustBeSuccessful(m.Add(Must(constraint.NewPinned(1, "support", n1.GetId(), 2))))
	Must(m.CreateLoad(load.POINT, load.WithNode(n3.GetId()), load.WithDirection(load.Y), load.WithValue(-10)))
}

// ordered checks that all fragments occur in the given order.
func ordered(script string, fragments ...string) {
	pos := 0
	for _, f := range fragments {
		i := strings.Index(script[pos:], f)
		ExpectWithOffset(1, i).To(BeNumerically(">=", 0), "fragment %q missing or out of order", f)
		pos += i + len(f)
	}
}

var _ = Describe("script export", func() {
	var m *manager.ModelManager

	BeforeEach(func() {
		m = manager.New()
		frame(m)
	})

	It("determines the model dimensions", func() {
		ndm, ndf := export.Dimensions(m)
		Expect([]int{ndm, ndf}).To(Equal([]int{2, 3}))
		Must(m.CreateNode("top", 0, 0, 5))
		ndm, ndf = export.Dimensions(m)
		Expect([]int{ndm, ndf}).To(Equal([]int{3, 6}))
	})

	It("renders the tcl script in category order", func() {
		script := export.Script(m, model.TCL, export.WithTitle("portal"))
		ordered(script,
			"# Project: portal\n",
			"model BasicBuilder -ndm 2 -ndf 3\n",
			"set matTag1 1\n",
			"set secTag1 1\n",
			"set transfTag1 1\nset transfTag2 2\n",
			"geomTransf Linear $transfTag1\ngeomTransf PDelta $transfTag2\n",
			"node 1 0 0\n",
			"node 3 4 3\n",
			"# Materials",
			"# Sections",
			"section Elastic 1",
			"element elasticBeamColumn 1 1 2 $secTag1 $transfTag1\n",
			"element elasticBeamColumn 2 2 3 $secTag1 $transfTag2\n",
			"fix 1 1 1 0 0\n",
			"timeSeries Linear 1\n",
			"pattern Plain 2 1 {\n  load 3 0 -10 0 0 0 0\n}\n",
		)
		Expect(script).NotTo(ContainSubstring("import openseespy"))
	})

	It("renders the py script", func() {
		script := export.Script(m, model.PY)
		ordered(script,
			"import openseespy.opensees as ops\n",
			"ops.model('BasicBuilder', '-ndm', 2, '-ndf', 3)\n",
			"matTag1 = 1\n",
			"ops.geomTransf('PDelta', transfTag2)\n",
			"ops.node(2, 0, 3)\n",
			"ops.element('elasticBeamColumn', 2, 2, 3, secTag1, transfTag2)\n",
			"ops.fix(1, 1, 1, 0, 0)\n",
			"ops.timeSeries('Linear', 1)\n",
			"ops.pattern('Plain', 2, 1)\nops.load(3, 0, -10, 0, 0, 0, 0)\n",
		)
	})

	It("is deterministic", func() {
		s := Must(m.CreateStage(stage.STATIC, "gravity"))
		s.SetAnalysisParameter("num_steps", 10)
		Must(m.CreateStage(stage.EIGEN, "modes", stage.WithParent(s.GetId())))

		for _, d := range model.Dialects {
			Expect(export.Script(m, d, export.WithAnalyze())).To(Equal(export.Script(m, d, export.WithAnalyze())))
		}
		buf := &bytes.Buffer{}
		MustBeSuccessful(export.Write(buf, m, model.TCL))
		Expect(buf.String()).To(Equal(export.Script(m, model.TCL)))
	})

	It("exports grouped loads inside their pattern", func() {
		l := Must(m.CreateLoad(load.POINT, load.WithNode(2), load.WithDirection(load.X), load.WithValue(5)))
		p := Must(m.CreateLoad(load.PATTERN, load.WithLoads(l.GetId()), load.WithTimeSeries(2)))
		Must(m.CreateLoad(load.TIME_VARYING, load.WithNode(3), load.WithTimeSeries(3)))

		script := export.Script(m, model.TCL)
		ordered(script,
			"timeSeries Linear 1\ntimeSeries Linear 2\ntimeSeries Linear 3\n",
			"pattern Plain 3 2 -fact 1 {\n  load 2 5 0 0 0 0 0\n}\n",
			"pattern Plain 4 3 {\n  load 3 1 0 0 0 0 0\n}\n",
			"pattern Plain 5 1 {\n  load 3 0 -10 0 0 0 0\n}\n",
		)
		Expect(p.GetId()).To(Equal(3))
		Expect(strings.Count(script, "load 2 5 0 0 0 0 0")).To(Equal(1))
	})

	It("exports stages in sequence order", func() {
		root2 := Must(m.CreateStage(stage.STATIC, "Root2", stage.WithOrder(0)))
		root1 := Must(m.CreateStage(stage.DYNAMIC, "Root1", stage.WithOrder(1)))
		Must(m.CreateStage(stage.EIGEN, "Child", stage.WithParent(root2.GetId())))
		root1.SetAnalysisParameter("dt", 0.02)

		script := export.Script(m, model.TCL, export.WithAnalyze())
		ordered(script,
			"# Stages\n",
			"# Stage 1: Root2\n",
			"analysis Static\nanalyze 1\n",
			"# Stage 3: Child\n",
			"eigen 10\n",
			"# Stage 2: Root1\n",
			"analysis Transient\nanalyze 100 0.02\n",
		)

		py := export.Script(m, model.PY, export.WithAnalyze())
		Expect(py).To(ContainSubstring("ops.analyze(100, 0.02)\n"))
	})

	It("omits analyze commands if switched off", func() {
		Must(m.CreateStage(stage.STATIC, "Root"))
		script := export.Script(m, model.TCL, export.WithAnalyze(false))
		Expect(script).To(ContainSubstring("# Stage 1: Root\n"))
		Expect(script).NotTo(ContainSubstring("analyze"))
		Expect(export.Script(m, model.TCL, export.WithAnalyze(true))).To(ContainSubstring("analyze 1\n"))
	})

	It("skips empty categories", func() {
		script := export.Script(manager.New(), model.TCL)
		Expect(script).To(ContainSubstring("model BasicBuilder -ndm 2 -ndf 3"))
		Expect(script).NotTo(ContainSubstring("# Nodes"))
		Expect(script).NotTo(ContainSubstring("# Loads"))
	})
})

package export

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/element"
	"github.com/mandelsoft/femodel/pkg/model/load"
	"github.com/mandelsoft/femodel/pkg/utils"
)

// DefaultTimeSeries is the time series used for loads
// not assigned to any load pattern.
const DefaultTimeSeries = 1

type Options struct {
	Title       string
	Description string
	// Analyze adds the analyze commands for every stage.
	Analyze bool
}

type Option func(o *Options)

func WithTitle(t string) Option {
	return func(o *Options) {
		o.Title = t
	}
}

func WithDescription(d string) Option {
	return func(o *Options) {
		o.Description = d
	}
}

func WithAnalyze(b ...bool) Option {
	return func(o *Options) {
		o.Analyze = len(b) == 0 || b[0]
	}
}

// Script renders the complete model as solver script.
func Script(m *manager.ModelManager, d model.Dialect, opts ...Option) string {
	var o Options
	for _, f := range opts {
		f(&o)
	}
	w := newWriter(m, d, &o)
	w.write()
	return w.String()
}

// Write writes the model script to the given writer.
func Write(out io.Writer, m *manager.ModelManager, d model.Dialect, opts ...Option) error {
	_, err := io.WriteString(out, Script(m, d, opts...))
	return err
}

// Dimensions determines the number of model dimensions and
// degrees of freedom per node. A model is three dimensional
// as soon as one node is located off the x-y plane.
func Dimensions(m *manager.ModelManager) (int, int) {
	for _, n := range m.GetNodes() {
		if math.Abs(n.Z()) > 1e-6 {
			return 3, 6
		}
	}
	return 2, 3
}

type writer struct {
	strings.Builder
	model   *manager.ModelManager
	dialect model.Dialect
	opts    *Options
	ndm     int
}

func newWriter(m *manager.ModelManager, d model.Dialect, o *Options) *writer {
	ndm, _ := Dimensions(m)
	return &writer{model: m, dialect: d, opts: o, ndm: ndm}
}

func (w *writer) py() bool {
	return w.dialect == model.PY
}

func (w *writer) line(format string, args ...interface{}) {
	w.WriteString(fmt.Sprintf(format, args...))
	w.WriteString("\n")
}

func (w *writer) block(s string) {
	if s != "" {
		w.line("%s", s)
	}
}

func (w *writer) section(title string) {
	w.line("")
	w.line("# %s", title)
}

func (w *writer) export(o model.Exporter) {
	w.block(model.Export(o, w.dialect))
}

func (w *writer) write() {
	w.header()
	w.init()
	w.tags()
	w.transformations()
	w.nodes()
	w.materials()
	w.sections()
	w.elements()
	w.constraints()
	w.loads()
	w.stages()
}

func (w *writer) header() {
	w.line("# Structural model %s", w.model.UID())
	if w.opts.Title != "" {
		w.line("# Project: %s", w.opts.Title)
	}
	if w.opts.Description != "" {
		w.line("# Description: %s", w.opts.Description)
	}
	if w.py() {
		w.line("")
		w.line("import openseespy.opensees as ops")
	}
}

func (w *writer) init() {
	ndm, ndf := Dimensions(w.model)
	w.section("Model initialization")
	if w.py() {
		w.line("ops.wipe()")
		w.line("ops.model('BasicBuilder', '-ndm', %d, '-ndf', %d)", ndm, ndf)
	} else {
		w.line("wipe")
		w.line("model BasicBuilder -ndm %d -ndf %d", ndm, ndf)
	}
}

func (w *writer) tag(kind string, id int) {
	if w.py() {
		w.line("%s%d = %d", kind, id, id)
	} else {
		w.line("set %s%d %d", kind, id, id)
	}
}

func (w *writer) tags() {
	mats := w.model.ListObjectIds(model.MATERIAL)
	secs := w.model.ListObjectIds(model.SECTION)
	transf := utils.OrderedMapKeys(w.transforms())
	if len(mats)+len(secs)+len(transf) == 0 {
		return
	}
	w.section("Tags")
	for _, id := range mats {
		w.tag("matTag", id)
	}
	for _, id := range secs {
		w.tag("secTag", id)
	}
	for _, id := range transf {
		w.tag("transfTag", id)
	}
}

// transforms collects the geometric transformations used by frame
// elements. The first element using a tag determines its type.
func (w *writer) transforms() map[int]string {
	r := map[int]string{}
	for _, e := range w.model.GetElements() {
		if f, ok := e.(*element.Frame); ok {
			id := f.TransformationId()
			if _, ok := r[id]; !ok {
				r[id] = utils.OptionalDefaulted(element.TRANSFORM_LINEAR, f.GeomTransformType)
			}
		}
	}
	return r
}

func (w *writer) transformations() {
	transf := w.transforms()
	if len(transf) == 0 {
		return
	}
	w.section("Geometric transformations")
	for _, id := range utils.OrderedMapKeys(transf) {
		typ := transf[id]
		switch {
		case w.py() && w.ndm == 3:
			w.line("ops.geomTransf('%s', transfTag%d, 0.0, 0.0, 1.0)", typ, id)
		case w.py():
			w.line("ops.geomTransf('%s', transfTag%d)", typ, id)
		case w.ndm == 3:
			w.line("geomTransf %s $transfTag%d 0.0 0.0 1.0", typ, id)
		default:
			w.line("geomTransf %s $transfTag%d", typ, id)
		}
	}
}

func list[T model.Exporter](w *writer, title string, objs []T) {
	if len(objs) == 0 {
		return
	}
	w.section(title)
	for _, o := range objs {
		w.export(o)
	}
}

func (w *writer) nodes() {
	list(w, "Nodes", w.model.GetNodes())
}

func (w *writer) materials() {
	list(w, "Materials", w.model.GetMaterials())
}

func (w *writer) sections() {
	list(w, "Sections", w.model.GetSections())
}

func (w *writer) elements() {
	list(w, "Elements", w.model.GetElements())
}

func (w *writer) constraints() {
	list(w, "Boundary conditions", w.model.GetConstraints())
}

////////////////////////////////////////////////////////////////////////////////
// loads

func (w *writer) loads() {
	loads := w.model.GetLoads()
	if len(loads) == 0 {
		return
	}

	var patterns []*load.Pattern
	grouped := map[int]bool{}
	series := []int{}
	maxId := 0
	for _, l := range loads {
		maxId = max(maxId, l.GetId())
		switch t := l.(type) {
		case *load.Pattern:
			patterns = append(patterns, t)
			series = utils.AppendUnique(series, t.TimeSeriesId)
			for _, id := range t.LoadIds {
				grouped[id] = true
			}
		case *load.TimeVarying:
			series = utils.AppendUnique(series, t.TimeSeriesId)
		}
	}

	var plain []load.Load
	for _, l := range loads {
		switch l.(type) {
		case *load.Pattern, *load.TimeVarying:
		default:
			if !grouped[l.GetId()] {
				plain = append(plain, l)
			}
		}
	}
	if len(plain) > 0 {
		series = utils.AppendUnique(series, DefaultTimeSeries)
	}
	slices.Sort(series)

	w.section("Loads")
	for _, ts := range series {
		if w.py() {
			w.line("ops.timeSeries('Linear', %d)", ts)
		} else {
			w.line("timeSeries Linear %d", ts)
		}
	}

	for _, p := range patterns {
		w.pattern(p.ToTcl(), p.ToPy(), w.members(p))
	}
	for _, l := range loads {
		if t, ok := l.(*load.TimeVarying); ok {
			w.export(t)
		}
	}
	if len(plain) > 0 {
		// the default pattern gets a tag not used by any load
		tag := maxId + 1
		w.pattern(
			fmt.Sprintf("pattern Plain %d %d", tag, DefaultTimeSeries),
			fmt.Sprintf("ops.pattern('Plain', %d, %d)", tag, DefaultTimeSeries),
			plain)
	}
}

// members resolves the loads of a pattern. Nested patterns and time
// varying loads carry their own pattern and are not exported inline.
func (w *writer) members(p *load.Pattern) []load.Load {
	var r []load.Load
	for _, id := range p.LoadIds {
		l := w.model.GetLoad(id)
		switch l.(type) {
		case nil, *load.Pattern, *load.TimeVarying:
			log.Debug("skipping load {{load}} in pattern {{pattern}}", "load", id, "pattern", p.GetId())
		default:
			r = append(r, l)
		}
	}
	return r
}

func (w *writer) pattern(tcl, py string, loads []load.Load) {
	if w.py() {
		w.line("%s", py)
		for _, l := range loads {
			w.block(l.ToPy())
		}
		return
	}
	w.line("%s {", tcl)
	for _, l := range loads {
		w.block(utils.Indent(l.ToTcl(), "  "))
	}
	w.line("}")
}

////////////////////////////////////////////////////////////////////////////////
// stages

func (w *writer) stages() {
	seq := w.model.Stages().StageSequence()
	if len(seq) == 0 {
		return
	}
	w.section("Stages")
	for i, s := range seq {
		if i > 0 {
			w.line("")
		}
		w.export(s)
		if w.opts.Analyze {
			w.analyze(s.StageType, s.GetAnalysisParameters())
		}
	}
}

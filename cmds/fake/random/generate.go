package random

import (
	"fmt"
	"math/rand"

	"github.com/goombaio/namegenerator"

	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/constraint"
	"github.com/mandelsoft/femodel/pkg/model/element"
	"github.com/mandelsoft/femodel/pkg/model/load"
	"github.com/mandelsoft/femodel/pkg/model/material"
	"github.com/mandelsoft/femodel/pkg/model/section"
	"github.com/mandelsoft/femodel/pkg/stage"
)

const (
	KIND_FRAME = "frame"
	KIND_TRUSS = "truss"
)

var Kinds = []string{KIND_FRAME, KIND_TRUSS}

type Options struct {
	Seed    int64
	Kind    string
	Bays    int
	Stories int
	Stages  int
}

func (o *Options) Validate() error {
	switch o.Kind {
	case KIND_FRAME, KIND_TRUSS:
	default:
		return fmt.Errorf("unknown model kind %q (use %v)", o.Kind, Kinds)
	}
	if o.Bays < 1 {
		return fmt.Errorf("at least one bay required")
	}
	if o.Kind == KIND_FRAME && o.Stories < 1 {
		return fmt.Errorf("at least one story required")
	}
	if o.Stages < 0 {
		return fmt.Errorf("number of stages must not be negative")
	}
	return nil
}

// Generator creates random but reproducible models.
// The same options always yield the same model content.
type Generator struct {
	opts  Options
	rand  *rand.Rand
	names namegenerator.Generator
	model *manager.ModelManager
}

func New(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		opts:  opts,
		rand:  rand.New(rand.NewSource(opts.Seed)),
		names: namegenerator.NewNameGenerator(opts.Seed),
	}, nil
}

func (g *Generator) name() string {
	n := ""
	for n == "" {
		n = g.names.Generate()
	}
	return n
}

// Generate creates a new model.
func (g *Generator) Generate() (*manager.ModelManager, error) {
	g.model = manager.New()

	var err error
	switch g.opts.Kind {
	case KIND_FRAME:
		err = g.frame()
	case KIND_TRUSS:
		err = g.truss()
	}
	if err != nil {
		return nil, err
	}
	if err = g.stages(); err != nil {
		return nil, err
	}
	Log.Info("generated {{kind}} model with {{nodes}} nodes, {{elements}} elements and {{stages}} stages",
		"kind", g.opts.Kind,
		"nodes", g.model.Count(model.NODE),
		"elements", g.model.Count(model.ELEMENT),
		"stages", g.model.Count(model.STAGE))
	return g.model, nil
}

// grid creates the nodes of a regular grid row by row and provides
// their ids indexed by row and column.
func (g *Generator) grid(cols, rows int, dx, dy float64) ([][]int, error) {
	ids := make([][]int, rows)
	for r := 0; r < rows; r++ {
		ids[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			n, err := g.model.CreateNode(fmt.Sprintf("n%d-%d", r, c), float64(c)*dx, float64(r)*dy)
			if err != nil {
				return nil, err
			}
			ids[r][c] = n.GetId()
		}
	}
	return ids, nil
}

func (g *Generator) support(typ string, node int, dofs ...bool) error {
	_, err := g.model.CreateConstraint(typ,
		constraint.WithName(fmt.Sprintf("support %d", node)),
		constraint.WithNode(node),
		constraint.WithFixedDofs(dofs...))
	return err
}

func (g *Generator) frame() error {
	span := Between(g.rand, 4, 8, 1)
	height := Between(g.rand, 2.8, 4, 1)
	nodes, err := g.grid(g.opts.Bays+1, g.opts.Stories+1, span, height)
	if err != nil {
		return err
	}

	mat, err := g.model.CreateMaterial(material.STEEL, material.WithName("S355"))
	if err != nil {
		return err
	}
	sec, err := g.model.CreateSection(section.ELASTIC,
		section.WithName("column"),
		section.WithMaterials(mat.GetId()),
		section.WithStiffness(210000, Between(g.rand, 0.005, 0.02, 4), Between(g.rand, 0.00005, 0.0005, 6)))
	if err != nil {
		return err
	}

	beam := func(name string, a, b int) (int, error) {
		e, err := g.model.CreateElement(element.ELASTIC_BEAM_COLUMN,
			element.WithName(name),
			element.WithNodes(a, b),
			element.WithMaterial(mat.GetId()),
			element.WithSection(sec.GetId()))
		if err != nil {
			return 0, err
		}
		return e.GetId(), nil
	}

	var elements []int
	for r := 1; r < len(nodes); r++ {
		for c := range nodes[r] {
			id, err := beam(fmt.Sprintf("column %d-%d", r, c), nodes[r-1][c], nodes[r][c])
			if err != nil {
				return err
			}
			elements = append(elements, id)
		}
		for c := 1; c < len(nodes[r]); c++ {
			id, err := beam(fmt.Sprintf("beam %d-%d", r, c), nodes[r][c-1], nodes[r][c])
			if err != nil {
				return err
			}
			elements = append(elements, id)
		}
	}

	for _, n := range nodes[0] {
		if err := g.support(constraint.FIXED, n, true, true, true, true); err != nil {
			return err
		}
	}
	for r := 1; r < len(nodes); r++ {
		_, err := g.model.CreateLoad(load.POINT,
			load.WithName(fmt.Sprintf("wind %d", r)),
			load.WithNode(nodes[r][0]),
			load.WithDirection(load.X),
			load.WithValue(Between(g.rand, 5, 20, 1)))
		if err != nil {
			return err
		}
	}
	return g.selfWeight(elements)
}

func (g *Generator) truss() error {
	span := Between(g.rand, 2, 4, 1)
	height := Between(g.rand, 1.5, 3, 1)
	nodes, err := g.grid(g.opts.Bays+1, 2, span, height)
	if err != nil {
		return err
	}

	mat, err := g.model.CreateMaterial(material.ALUMINUM, material.WithName("AW-6060"))
	if err != nil {
		return err
	}
	area := Between(g.rand, 0.0005, 0.002, 5)

	var elements []int
	bar := func(name string, a, b int) error {
		e, err := g.model.CreateElement(element.TRUSS,
			element.WithName(name),
			element.WithNodes(a, b),
			element.WithMaterial(mat.GetId()),
			element.WithArea(area))
		if err == nil {
			elements = append(elements, e.GetId())
		}
		return err
	}

	bottom, top := nodes[0], nodes[1]
	for c := range bottom {
		if err := bar(fmt.Sprintf("post %d", c), bottom[c], top[c]); err != nil {
			return err
		}
		if c == 0 {
			continue
		}
		if err := bar(fmt.Sprintf("bottom %d", c), bottom[c-1], bottom[c]); err != nil {
			return err
		}
		if err := bar(fmt.Sprintf("top %d", c), top[c-1], top[c]); err != nil {
			return err
		}
		// diagonals fall towards the center
		if 2*c <= len(bottom) {
			err = bar(fmt.Sprintf("diagonal %d", c), top[c-1], bottom[c])
		} else {
			err = bar(fmt.Sprintf("diagonal %d", c), bottom[c-1], top[c])
		}
		if err != nil {
			return err
		}
	}

	if err := g.support(constraint.PINNED, bottom[0], true, true, false, false); err != nil {
		return err
	}
	if err := g.support(constraint.ROLLER, bottom[len(bottom)-1], false, true, false, false); err != nil {
		return err
	}
	for c := 1; c < len(top)-1; c++ {
		_, err := g.model.CreateLoad(load.POINT,
			load.WithName(fmt.Sprintf("roof %d", c)),
			load.WithNode(top[c]),
			load.WithDirection(load.Y),
			load.WithValue(-Between(g.rand, 1, 10, 1)))
		if err != nil {
			return err
		}
	}
	return g.selfWeight(elements)
}

func (g *Generator) selfWeight(elements []int) error {
	_, err := g.model.CreateLoad(load.SELF_WEIGHT,
		load.WithName("self weight"),
		load.WithElements(elements...),
		load.WithDirection(load.Y),
		load.WithFactor(-1))
	return err
}

// stages creates a forest of stages. The first stage is a static
// root, further stages become roots or children of earlier stages.
// All stages activate the complete model.
func (g *Generator) stages() error {
	types := []stage.Type{stage.STATIC, stage.DYNAMIC, stage.EIGEN}
	var created []*stage.Stage
	for i := 0; i < g.opts.Stages; i++ {
		typ := stage.STATIC
		opts := []stage.Option{stage.WithOrder(g.rand.Intn(4))}
		if i == 0 {
			opts = append(opts, stage.AsInitial())
		} else {
			typ = Random(g.rand, types)
			if g.rand.Intn(3) > 0 {
				opts = append(opts, stage.WithParent(Random(g.rand, created).GetId()))
			}
		}
		s, err := g.model.CreateStage(typ, g.name(), opts...)
		if err != nil {
			return err
		}
		s.AddNode(g.model.ListObjectIds(model.NODE)...)
		s.AddElement(g.model.ListObjectIds(model.ELEMENT)...)
		s.AddLoad(g.model.ListObjectIds(model.LOAD)...)
		s.AddBoundaryCondition(g.model.ListObjectIds(model.BOUNDARY_CONDITION)...)
		if typ == stage.DYNAMIC {
			s.SetAnalysisParameter("dt", Between(g.rand, 0.005, 0.02, 3))
		}
		Log.Debug("created stage {{stage}} ({{type}})", "stage", s.GetId(), "type", typ)
		created = append(created, s)
	}
	if len(created) > 0 {
		g.model.Stages().SetCurrentStage(created[0].GetId())
	}
	return nil
}

package stage

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/registry"
	"github.com/mandelsoft/femodel/pkg/utils"
)

var ErrCycleDetected = errors.New("stage parent cycle detected")

// Options are the optional settings for a new stage.
type Options struct {
	Description   string
	Order         int
	ParentStageId *int
	IsInitial     bool
}

type Option func(o *Options)

func WithDescription(d string) Option {
	return func(o *Options) {
		o.Description = d
	}
}

func WithOrder(order int) Option {
	return func(o *Options) {
		o.Order = order
	}
}

func WithParent(id int) Option {
	return func(o *Options) {
		o.ParentStageId = utils.Pointer(id)
	}
}

func AsInitial() Option {
	return func(o *Options) {
		o.IsInitial = true
	}
}

// Manager manages the stages of a model.
type Manager struct {
	stages  *registry.Registry[*Stage]
	current *int
}

func NewManager() *Manager {
	return &Manager{stages: registry.New[*Stage]()}
}

// Registry provides access to the underlying stage registry.
func (m *Manager) Registry() *registry.Registry[*Stage] {
	return m.stages
}

// CreateStage creates a new stage. The parent is not checked.
func (m *Manager) CreateStage(typ Type, name string, opts ...Option) (*Stage, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return m.stages.Create(func(id int) (*Stage, error) {
		s := New(id, model.NewMetadata(name), typ)
		s.Description = o.Description
		s.Order = o.Order
		s.ParentStageId = o.ParentStageId
		s.IsInitial = o.IsInitial
		return s, nil
	})
}

// AddStage adds a stage with a given id.
func (m *Manager) AddStage(s *Stage) error {
	s.init()
	return m.stages.Add(s)
}

func (m *Manager) GetStage(id int) *Stage {
	s, _ := m.stages.Get(id)
	return s
}

func (m *Manager) RemoveStage(id int) bool {
	if m.current != nil && *m.current == id {
		m.current = nil
	}
	return m.stages.Remove(id)
}

func (m *Manager) AllStages() []*Stage {
	return m.stages.All()
}

func (m *Manager) RootStages() []*Stage {
	return m.stages.Filter(func(s *Stage) bool { return s.IsRoot() })
}

func (m *Manager) ChildStages(parent int) []*Stage {
	return m.stages.Filter(func(s *Stage) bool { return s.ParentStageId != nil && *s.ParentStageId == parent })
}

// SetCurrentStage sets the current stage and reports
// whether the stage exists.
func (m *Manager) SetCurrentStage(id int) bool {
	if !m.stages.Has(id) {
		return false
	}
	m.current = utils.Pointer(id)
	return true
}

func (m *Manager) GetCurrentStage() *Stage {
	if m.current == nil {
		return nil
	}
	return m.GetStage(*m.current)
}

func (m *Manager) GetCurrentStageId() *int {
	return m.current
}

func byOrder(list []*Stage) []*Stage {
	slices.SortStableFunc(list, func(a, b *Stage) int { return a.Order - b.Order })
	return list
}

// StageSequence provides the execution order of the stages: roots
// ascending by order, each followed by its children in depth first
// pre-order with siblings ascending by order. Equal orders keep the
// insertion order. Stages not reachable from a root (parent cycles or
// missing parents) are not part of the sequence.
func (m *Manager) StageSequence() []*Stage {
	var result []*Stage
	visited := map[int]bool{}

	var visit func(s *Stage)
	visit = func(s *Stage) {
		if visited[s.Id] {
			log.Debug("stage {{stage}} already visited", "stage", s.Id)
			return
		}
		visited[s.Id] = true
		result = append(result, s)
		for _, c := range byOrder(m.ChildStages(s.Id)) {
			visit(c)
		}
	}

	for _, r := range byOrder(m.RootStages()) {
		visit(r)
	}
	if len(result) != m.stages.Count() {
		log.Debug("stage sequence omits {{count}} unreachable stage(s)", "count", m.stages.Count()-len(result))
	}
	return result
}

// Cycles provides all parent cycles as stage id paths.
// Every cycle is reported once, starting with its smallest id.
func (m *Manager) Cycles() [][]int {
	var cycles [][]int
	done := map[int]bool{}
	for _, s := range m.stages.All() {
		var stack []int
		cur := s
		for cur != nil && !done[cur.Id] {
			if c := utils.Cycle(cur.Id, stack...); c != nil {
				cycles = append(cycles, normalize(c))
				break
			}
			stack = append(stack, cur.Id)
			if cur.ParentStageId == nil {
				break
			}
			cur = m.GetStage(*cur.ParentStageId)
		}
		for _, id := range stack {
			done[id] = true
		}
	}
	return cycles
}

// normalize rotates a closed cycle path to start with
// its smallest id.
func normalize(c []int) []int {
	ring := c[:len(c)-1]
	i := slices.Index(ring, slices.Min(ring))
	r := append(slices.Clone(ring[i:]), ring[:i]...)
	return append(r, r[0])
}

// CheckCycles reports an error for the first parent cycle.
func (m *Manager) CheckCycles() error {
	cycles := m.Cycles()
	if len(cycles) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrCycleDetected, CyclePath(cycles[0]))
}

func CyclePath(c []int) string {
	return model.Ints(c, "->")
}

func (m *Manager) Clear() {
	m.stages.Clear()
	m.current = nil
}

////////////////////////////////////////////////////////////////////////////////

// Document is the serialized form of the stage manager.
type Document struct {
	Stages         []*Stage `json:"stages"`
	CurrentStageId *int     `json:"current_stage_id"`
}

func (m *Manager) ToDocument() *Document {
	return &Document{
		Stages:         m.stages.All(),
		CurrentStageId: m.current,
	}
}

// FromDocument replaces the actual stages.
// Stages with duplicate ids are skipped and reported.
func (m *Manager) FromDocument(doc *Document) error {
	var errs []error
	m.Clear()
	for _, s := range doc.Stages {
		if err := m.AddStage(s); err != nil {
			log.Error("skipping stage {{stage}}", "stage", s.Id, "error", err)
			errs = append(errs, err)
		}
	}
	if doc.CurrentStageId != nil && !m.SetCurrentStage(*doc.CurrentStageId) {
		log.Warn("current stage {{stage}} not found", "stage", *doc.CurrentStageId)
	}
	return utilerrors.NewAggregate(errs)
}

func (m *Manager) ToDict() (map[string]interface{}, error) {
	return model.ToDict(m.ToDocument())
}

// FromDict replaces the actual stages. Malformed stages and
// duplicate ids are skipped, all problems are reported together
// after the load. For compatibility a plain stage list is accepted, too.
func (m *Manager) FromDict(d interface{}) error {
	var list []interface{}
	var current interface{}

	switch t := d.(type) {
	case map[string]interface{}:
		list, _ = t["stages"].([]interface{})
		current = t["current_stage_id"]
	case []interface{}:
		list = t
	case nil:
	default:
		return model.DeserializationError(model.STAGE, nil, fmt.Errorf("invalid stage document type %T", d))
	}

	var errs []error
	m.Clear()
	for _, e := range list {
		s, err := decodeStage(e)
		if err == nil {
			err = m.AddStage(s)
		}
		if err != nil {
			log.Error("skipping stage", "error", err)
			errs = append(errs, err)
		}
	}
	if current != nil {
		id := model.IntValue(current, -1)
		if !m.SetCurrentStage(id) {
			log.Warn("current stage {{stage}} not found", "stage", id)
		}
	}
	return utilerrors.NewAggregate(errs)
}

func decodeStage(e interface{}) (*Stage, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, model.DeserializationError(model.STAGE, nil, err)
	}
	var s Stage
	err = json.Unmarshal(data, &s)
	if err != nil {
		return nil, model.DeserializationError(model.STAGE, data, err)
	}
	return &s, nil
}

// Tree renders the stage sequence with indentation per level.
func (m *Manager) Tree() string {
	var b strings.Builder
	for _, s := range m.StageSequence() {
		b.WriteString(strings.Repeat("  ", m.depth(s)))
		fmt.Fprintf(&b, "%d %s [%s] order %d\n", s.Id, s.Metadata.Name, s.StageType, s.Order)
	}
	return b.String()
}

func (m *Manager) depth(s *Stage) int {
	d := 0
	seen := map[int]bool{}
	for s != nil && s.ParentStageId != nil && !seen[s.Id] {
		seen[s.Id] = true
		d++
		s = m.GetStage(*s.ParentStageId)
	}
	return d
}

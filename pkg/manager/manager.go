package manager

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mandelsoft/femodel/pkg/events"
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/constraint"
	"github.com/mandelsoft/femodel/pkg/model/element"
	"github.com/mandelsoft/femodel/pkg/model/load"
	"github.com/mandelsoft/femodel/pkg/model/material"
	"github.com/mandelsoft/femodel/pkg/model/node"
	"github.com/mandelsoft/femodel/pkg/model/section"
	"github.com/mandelsoft/femodel/pkg/runtime"
	"github.com/mandelsoft/femodel/pkg/stage"
)

var ErrNotFound = errors.New("not found")

func errNotFound(typ model.ObjectType, id int) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, typ, id)
}

func errInvalidCategory(o model.Object, typ model.ObjectType) error {
	return fmt.Errorf("object %d of type %s cannot be stored as %s", o.GetId(), o.GetObjectType(), typ)
}

// Categories is the fixed processing order of the object
// categories. Referenced objects precede their referrers.
var Categories = []model.ObjectType{
	model.NODE,
	model.MATERIAL,
	model.SECTION,
	model.ELEMENT,
	model.BOUNDARY_CONDITION,
	model.LOAD,
	model.STAGE,
}

// ModelManager owns all objects of a structural model.
// It is not safe for concurrent use.
type ModelManager struct {
	uid string

	nodes       *typed[*node.Node]
	elements    *typed[element.Element]
	materials   *typed[material.Material]
	sections    *typed[section.Section]
	constraints *typed[constraint.BoundaryCondition]
	loads       *typed[load.Load]
	stages      *stage.Manager

	elementTypes    runtime.Scheme[element.Element]
	materialTypes   runtime.Scheme[material.Material]
	sectionTypes    runtime.Scheme[section.Section]
	constraintTypes runtime.Scheme[constraint.BoundaryCondition]
	loadTypes       runtime.Scheme[load.Load]

	events    events.HandlerRegistry
	selection map[model.ObjectType]model.IdSet
}

func New() *ModelManager {
	m := &ModelManager{
		uid:         uuid.New().String(),
		nodes:       newCategory[*node.Node](model.NODE),
		elements:    newCategory[element.Element](model.ELEMENT),
		materials:   newCategory[material.Material](model.MATERIAL),
		sections:    newCategory[section.Section](model.SECTION),
		constraints: newCategory[constraint.BoundaryCondition](model.BOUNDARY_CONDITION),
		loads:       newCategory[load.Load](model.LOAD),
		stages:      stage.NewManager(),

		elementTypes:    element.NewScheme(),
		materialTypes:   material.NewScheme(),
		sectionTypes:    section.NewScheme(),
		constraintTypes: constraint.NewScheme(),
		loadTypes:       load.NewScheme(),

		selection: map[model.ObjectType]model.IdSet{},
	}
	m.events = events.NewHandlerRegistry(m)
	return m
}

// UID is the identity of the model. It is kept across
// serialization.
func (m *ModelManager) UID() string {
	return m.uid
}

func (m *ModelManager) Events() events.HandlerRegistration {
	return m.events
}

func (m *ModelManager) trigger(typ model.ObjectType, id int, a events.Action) {
	m.events.TriggerEvent(events.Event{Category: typ, Id: id, Action: a})
}

func (m *ModelManager) Stages() *stage.Manager {
	return m.stages
}

// category provides the object registry for a category.
// Stages are handled by the stage manager.
func (m *ModelManager) category(typ model.ObjectType) category {
	switch typ {
	case model.NODE:
		return m.nodes
	case model.ELEMENT:
		return m.elements
	case model.MATERIAL:
		return m.materials
	case model.SECTION:
		return m.sections
	case model.BOUNDARY_CONDITION:
		return m.constraints
	case model.LOAD:
		return m.loads
	}
	return nil
}

func (m *ModelManager) ListObjectIds(typ model.ObjectType) []int {
	if typ == model.STAGE {
		return m.stages.Registry().Ids()
	}
	if c := m.category(typ); c != nil {
		return c.Ids()
	}
	return nil
}

// Has reports whether an object of the given category exists.
func (m *ModelManager) Has(typ model.ObjectType, id int) bool {
	if typ == model.STAGE {
		return m.stages.Registry().Has(id)
	}
	if c := m.category(typ); c != nil {
		return c.Has(id)
	}
	return false
}

// GetObject provides an object of any category.
func (m *ModelManager) GetObject(typ model.ObjectType, id int) (model.Object, error) {
	if typ == model.STAGE {
		if s := m.stages.GetStage(id); s != nil {
			return s, nil
		}
		return nil, errNotFound(typ, id)
	}
	if c := m.category(typ); c != nil {
		if o, ok := c.GetObject(id); ok {
			return o, nil
		}
	}
	return nil, errNotFound(typ, id)
}

// Objects provides all objects of a category in insertion order.
func (m *ModelManager) Objects(typ model.ObjectType) []model.Object {
	if typ == model.STAGE {
		var list []model.Object
		for _, s := range m.stages.AllStages() {
			list = append(list, s)
		}
		return list
	}
	if c := m.category(typ); c != nil {
		return c.Objects()
	}
	return nil
}

func (m *ModelManager) Count(typ model.ObjectType) int {
	return len(m.ListObjectIds(typ))
}

// Add adds an object with a preassigned id to the registry
// of its category.
func (m *ModelManager) Add(o model.Object) error {
	var err error
	typ := o.GetObjectType()
	if s, ok := o.(*stage.Stage); ok {
		err = m.stages.AddStage(s)
	} else {
		c := m.category(typ)
		if c == nil {
			return errInvalidCategory(o, typ)
		}
		err = c.AddObject(o)
	}
	if err != nil {
		return err
	}
	m.trigger(typ, o.GetId(), events.CREATED)
	return nil
}

// Remove removes an object. References to it are kept
// and reported by Validate.
func (m *ModelManager) Remove(typ model.ObjectType, id int) bool {
	var ok bool
	if typ == model.STAGE {
		ok = m.stages.RemoveStage(id)
	} else if c := m.category(typ); c != nil {
		ok = c.RemoveObject(id)
	}
	if ok {
		if s := m.selection[typ]; s != nil {
			s.Delete(id)
		}
		m.trigger(typ, id, events.REMOVED)
	}
	return ok
}

// Clear removes all objects and resets id allocation.
func (m *ModelManager) Clear() {
	for _, typ := range Categories {
		if typ == model.STAGE {
			m.stages.Clear()
		} else {
			m.category(typ).Clear()
		}
		m.trigger(typ, 0, events.CLEARED)
	}
	m.selection = map[model.ObjectType]model.IdSet{}
}

////////////////////////////////////////////////////////////////////////////////

type object interface {
	model.Object
	runtime.Object
}

func create[T object](m *ModelManager, c *typed[T], s runtime.SchemeTypes[T], typ string, init ...runtime.Initializer[T]) (T, error) {
	var _nil T

	if !s.HasType(typ) {
		_, err := s.CreateObject(typ)
		return _nil, err
	}
	o, err := c.Create(func(id int) (T, error) {
		o, err := s.CreateObject(typ, init...)
		if err != nil {
			return o, err
		}
		o.SetId(id)
		return o, nil
	})
	if err != nil {
		return _nil, err
	}
	m.trigger(c.Type(), o.GetId(), events.CREATED)
	return o, nil
}

// CreateNode creates a node with the next free id.
func (m *ModelManager) CreateNode(name string, coords ...float64) (*node.Node, error) {
	n, err := m.nodes.Create(func(id int) (*node.Node, error) {
		return node.New(id, model.NewMetadata(name), coords...), nil
	})
	if err != nil {
		return nil, err
	}
	m.trigger(model.NODE, n.GetId(), events.CREATED)
	return n, nil
}

// CreateElement creates an element of a registered type with the next
// free id. An unknown type does not consume an id.
func (m *ModelManager) CreateElement(typ string, init ...element.Initializer) (element.Element, error) {
	return create[element.Element](m, m.elements, m.elementTypes, typ, init...)
}

func (m *ModelManager) CreateMaterial(typ string, init ...material.Initializer) (material.Material, error) {
	return create[material.Material](m, m.materials, m.materialTypes, typ, init...)
}

func (m *ModelManager) CreateSection(typ string, init ...section.Initializer) (section.Section, error) {
	return create[section.Section](m, m.sections, m.sectionTypes, typ, init...)
}

func (m *ModelManager) CreateConstraint(typ string, init ...constraint.Initializer) (constraint.BoundaryCondition, error) {
	return create[constraint.BoundaryCondition](m, m.constraints, m.constraintTypes, typ, init...)
}

func (m *ModelManager) CreateLoad(typ string, init ...load.Initializer) (load.Load, error) {
	return create[load.Load](m, m.loads, m.loadTypes, typ, init...)
}

// CreateStage creates a stage with the next free id.
func (m *ModelManager) CreateStage(typ stage.Type, name string, opts ...stage.Option) (*stage.Stage, error) {
	s, err := m.stages.CreateStage(typ, name, opts...)
	if err != nil {
		return nil, err
	}
	m.trigger(model.STAGE, s.GetId(), events.CREATED)
	return s, nil
}

////////////////////////////////////////////////////////////////////////////////

func register[T object](s runtime.TypeScheme[T], name string, proto T) error {
	err := s.Register(name, proto)
	if err == nil {
		log.Debug("registered {{kind}} type {{type}}", "kind", s.Kind(), "type", name)
	}
	return err
}

// RegisterElementType registers an additional element kind.
// The prototype must be a pointer to a struct embedding element.Base.
func (m *ModelManager) RegisterElementType(name string, proto element.Element) error {
	return register[element.Element](m.elementTypes, name, proto)
}

func (m *ModelManager) RegisterMaterialType(name string, proto material.Material) error {
	return register[material.Material](m.materialTypes, name, proto)
}

func (m *ModelManager) RegisterSectionType(name string, proto section.Section) error {
	return register[section.Section](m.sectionTypes, name, proto)
}

func (m *ModelManager) RegisterConstraintType(name string, proto constraint.BoundaryCondition) error {
	return register[constraint.BoundaryCondition](m.constraintTypes, name, proto)
}

func (m *ModelManager) RegisterLoadType(name string, proto load.Load) error {
	return register[load.Load](m.loadTypes, name, proto)
}

// TypeNames provides the registered type names for a category.
func (m *ModelManager) TypeNames(typ model.ObjectType) []string {
	switch typ {
	case model.ELEMENT:
		return m.elementTypes.TypeNames()
	case model.MATERIAL:
		return m.materialTypes.TypeNames()
	case model.SECTION:
		return m.sectionTypes.TypeNames()
	case model.BOUNDARY_CONDITION:
		return m.constraintTypes.TypeNames()
	case model.LOAD:
		return m.loadTypes.TypeNames()
	case model.STAGE:
		var names []string
		for _, t := range stage.Types {
			names = append(names, string(t))
		}
		return names
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////

func (m *ModelManager) GetNode(id int) *node.Node {
	return m.nodes.Lookup(id)
}

func (m *ModelManager) GetElement(id int) element.Element {
	return m.elements.Lookup(id)
}

func (m *ModelManager) GetMaterial(id int) material.Material {
	return m.materials.Lookup(id)
}

func (m *ModelManager) GetSection(id int) section.Section {
	return m.sections.Lookup(id)
}

func (m *ModelManager) GetConstraint(id int) constraint.BoundaryCondition {
	return m.constraints.Lookup(id)
}

func (m *ModelManager) GetLoad(id int) load.Load {
	return m.loads.Lookup(id)
}

func (m *ModelManager) GetNodes() []*node.Node {
	return m.nodes.All()
}

func (m *ModelManager) GetElements() []element.Element {
	return m.elements.All()
}

func (m *ModelManager) GetMaterials() []material.Material {
	return m.materials.All()
}

func (m *ModelManager) GetSections() []section.Section {
	return m.sections.All()
}

func (m *ModelManager) GetConstraints() []constraint.BoundaryCondition {
	return m.constraints.All()
}

func (m *ModelManager) GetLoads() []load.Load {
	return m.loads.All()
}

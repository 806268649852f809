package manager

import (
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/mandelsoft/femodel/pkg/events"
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/constraint"
	"github.com/mandelsoft/femodel/pkg/model/element"
	"github.com/mandelsoft/femodel/pkg/model/load"
	"github.com/mandelsoft/femodel/pkg/model/material"
	"github.com/mandelsoft/femodel/pkg/model/node"
	"github.com/mandelsoft/femodel/pkg/model/section"
	"github.com/mandelsoft/femodel/pkg/stage"
	"github.com/mandelsoft/femodel/pkg/utils"
)

// Document is the key/value representation of a complete model.
type Document = map[string]interface{}

// Top level document keys.
const (
	KEY_MODEL_ID    = "model_id"
	KEY_NODES       = "nodes"
	KEY_ELEMENTS    = "elements"
	KEY_MATERIALS   = "materials"
	KEY_SECTIONS    = "sections"
	KEY_CONSTRAINTS = "constraints"
	KEY_LOADS       = "loads"
	KEY_STAGES      = "stages"
)

var documentKeys = map[model.ObjectType]string{
	model.NODE:               KEY_NODES,
	model.ELEMENT:            KEY_ELEMENTS,
	model.MATERIAL:           KEY_MATERIALS,
	model.SECTION:            KEY_SECTIONS,
	model.BOUNDARY_CONDITION: KEY_CONSTRAINTS,
	model.LOAD:               KEY_LOADS,
	model.STAGE:              KEY_STAGES,
}

type document struct {
	ModelId     string                         `json:"model_id,omitempty"`
	Nodes       []*node.Node                   `json:"nodes"`
	Elements    []element.Element              `json:"elements"`
	Materials   []material.Material            `json:"materials"`
	Sections    []section.Section              `json:"sections"`
	Constraints []constraint.BoundaryCondition `json:"constraints"`
	Loads       []load.Load                    `json:"loads"`
	Stages      *stage.Document                `json:"stages"`
}

// ToDict provides the complete model as key/value document.
// Objects are listed in insertion order.
func (m *ModelManager) ToDict() (Document, error) {
	return model.ToDict(m.content(m.uid))
}

func (m *ModelManager) content(uid string) *document {
	return &document{
		ModelId:     uid,
		Nodes:       m.nodes.All(),
		Elements:    m.elements.All(),
		Materials:   m.materials.All(),
		Sections:    m.sections.All(),
		Constraints: m.constraints.All(),
		Loads:       m.loads.All(),
		Stages:      m.stages.ToDocument(),
	}
}

// Digest provides a canonical fingerprint of the model content.
// It does not depend on the model id.
func (m *ModelManager) Digest() (string, error) {
	d, err := model.ToDict(m.content(""))
	if err != nil {
		return "", err
	}
	return utils.HashData(d)
}

// FromDict replaces the model by the content of the given document.
// Categories are loaded in dependency order. Malformed objects are
// skipped and logged, the load continues with the next object. All
// problems are reported by an aggregated error after the complete load.
func (m *ModelManager) FromDict(d Document) error {
	var errs []error

	m.Clear()
	if id, ok := d[KEY_MODEL_ID].(string); ok && id != "" {
		m.uid = id
	}
	for _, typ := range Categories {
		key := documentKeys[typ]
		if typ == model.STAGE {
			if err := m.stages.FromDict(d[key]); err != nil {
				errs = append(errs, flatten(err)...)
			}
			continue
		}
		list, ok := d[key].([]interface{})
		if !ok {
			if d[key] != nil {
				errs = append(errs, model.DeserializationError(typ, nil, fmt.Errorf("%s must be a list", key)))
			}
			continue
		}
		for _, e := range list {
			if err := m.load(typ, e); err != nil {
				log.Error("skipping {{category}} record", "category", typ, "error", err)
				errs = append(errs, err)
			}
		}
	}
	for _, typ := range Categories {
		m.trigger(typ, 0, events.LOADED)
	}
	log.Info("loaded model {{model}} with {{nodes}} nodes and {{elements}} elements",
		"model", m.uid, "nodes", m.nodes.Count(), "elements", m.elements.Count())
	return utilerrors.NewAggregate(errs)
}

func (m *ModelManager) load(typ model.ObjectType, e interface{}) error {
	d, ok := e.(map[string]interface{})
	if !ok {
		return model.DeserializationError(typ, nil, fmt.Errorf("object must be a dictionary"))
	}

	var o model.Object
	var err error
	switch typ {
	case model.NODE:
		o, err = node.FromDict(d)
	case model.ELEMENT:
		o, err = model.FromDict[element.Element](m.elementTypes, typ, d)
	case model.MATERIAL:
		o, err = model.FromDict[material.Material](m.materialTypes, typ, d)
	case model.SECTION:
		o, err = model.FromDict[section.Section](m.sectionTypes, typ, d)
	case model.BOUNDARY_CONDITION:
		o, err = model.FromDict[constraint.BoundaryCondition](m.constraintTypes, typ, d)
	case model.LOAD:
		o, err = model.FromDict[load.Load](m.loadTypes, typ, d)
	}
	if err != nil {
		return err
	}
	return m.category(typ).AddObject(o)
}

func flatten(err error) []error {
	if agg, ok := err.(utilerrors.Aggregate); ok {
		return agg.Errors()
	}
	return []error{err}
}

// Package hclmodel reads model definitions written in HCL.
//
// Every object is described by a block. The block label is the
// type name of the object, the attributes map one to one onto the
// fields of the document representation:
//
//	node {
//	  id          = 1
//	  coordinates = [0, 0]
//	}
//
//	element "ElasticBeamColumn" {
//	  nodes       = [1, 2]
//	  material_id = 1
//	  section_id  = 1
//	  properties  = { transf_id = 1 }
//	}
//
//	current_stage = 1
//
// The metadata attributes name, description, tags and custom_properties
// may be given directly on the block. Missing ids are assigned in block
// order starting after the highest explicit id of the category.
package hclmodel

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/model"
)

const FileExtension = ".hcl"

// discriminators are the document keys holding the block label.
var discriminators = map[model.ObjectType]string{
	model.ELEMENT:            "element_type",
	model.MATERIAL:           "material_type",
	model.SECTION:            "section_type",
	model.BOUNDARY_CONDITION: "bc_type",
	model.LOAD:               "load_type",
	model.STAGE:              "stage_type",
}

var metadataKeys = []string{"name", "description", "tags", "custom_properties"}

type hclFile struct {
	ModelId      *string     `hcl:"model_id,optional"`
	CurrentStage *int        `hcl:"current_stage,optional"`
	Nodes        []*hclBlock `hcl:"node,block"`
	Elements     []*hclTyped `hcl:"element,block"`
	Materials    []*hclTyped `hcl:"material,block"`
	Sections     []*hclTyped `hcl:"section,block"`
	Constraints  []*hclTyped `hcl:"constraint,block"`
	Loads        []*hclTyped `hcl:"load,block"`
	Stages       []*hclTyped `hcl:"stage,block"`
}

type hclBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type hclTyped struct {
	Type string   `hcl:"type,label"`
	Body hcl.Body `hcl:",remain"`
}

// Parse converts an HCL model definition into a model document.
func Parse(data []byte, filename string) (manager.Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return parsed.document()
}

func (f *hclFile) document() (manager.Document, error) {
	doc := manager.Document{}
	if f.ModelId != nil {
		doc[manager.KEY_MODEL_ID] = *f.ModelId
	}

	nodes := make([]*hclTyped, len(f.Nodes))
	for i, b := range f.Nodes {
		nodes[i] = &hclTyped{Body: b.Body}
	}

	categories := []struct {
		typ    model.ObjectType
		key    string
		blocks []*hclTyped
	}{
		{model.NODE, manager.KEY_NODES, nodes},
		{model.ELEMENT, manager.KEY_ELEMENTS, f.Elements},
		{model.MATERIAL, manager.KEY_MATERIALS, f.Materials},
		{model.SECTION, manager.KEY_SECTIONS, f.Sections},
		{model.BOUNDARY_CONDITION, manager.KEY_CONSTRAINTS, f.Constraints},
		{model.LOAD, manager.KEY_LOADS, f.Loads},
	}
	for _, c := range categories {
		list, err := objects(c.typ, c.blocks)
		if err != nil {
			return nil, err
		}
		if len(list) > 0 {
			doc[c.key] = list
		}
	}

	stages, err := objects(model.STAGE, f.Stages)
	if err != nil {
		return nil, err
	}
	if len(stages) > 0 || f.CurrentStage != nil {
		sd := map[string]interface{}{
			"stages": stages,
		}
		if f.CurrentStage != nil {
			sd["current_stage_id"] = float64(*f.CurrentStage)
		}
		doc[manager.KEY_STAGES] = sd
	}
	return doc, nil
}

func objects(typ model.ObjectType, blocks []*hclTyped) ([]interface{}, error) {
	list := make([]interface{}, 0, len(blocks))
	next := 0
	for _, b := range blocks {
		o, err := object(typ, b)
		if err != nil {
			return nil, err
		}
		if id, ok := o["id"]; ok {
			next = max(next, model.IntValue(id, 0))
		}
		list = append(list, o)
	}
	for _, e := range list {
		o := e.(map[string]interface{})
		if _, ok := o["id"]; !ok {
			next++
			o["id"] = float64(next)
		}
	}
	return list, nil
}

func object(typ model.ObjectType, b *hclTyped) (map[string]interface{}, error) {
	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid %s block: %w", typ, diags)
	}
	o := map[string]interface{}{}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid %s attribute %q: %w", typ, name, diags)
		}
		v, err := plain(val)
		if err != nil {
			return nil, fmt.Errorf("invalid %s attribute %q: %w", typ, name, err)
		}
		o[name] = v
	}
	if key, ok := discriminators[typ]; ok {
		o[key] = b.Type
	}
	metadata(typ, o)
	return o, nil
}

// metadata moves the metadata attributes given on block level
// into the metadata entry. Stages keep their own description.
func metadata(typ model.ObjectType, o map[string]interface{}) {
	meta, ok := o["metadata"].(map[string]interface{})
	if !ok {
		meta = map[string]interface{}{}
	}
	for _, k := range metadataKeys {
		if k == "description" && typ == model.STAGE {
			continue
		}
		if v, ok := o[k]; ok {
			meta[k] = v
			delete(o, k)
		}
	}
	if len(meta) > 0 {
		o["metadata"] = meta
	}
}

// plain converts a cty value into the generic document representation
// (maps, lists, strings, float64 numbers and booleans).
func plain(val cty.Value) (interface{}, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	data, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, err
	}
	var v interface{}
	err = json.Unmarshal(data, &v)
	return v, err
}

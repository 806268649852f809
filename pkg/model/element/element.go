package element

import (
	"maps"
	"slices"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
	"github.com/mandelsoft/femodel/pkg/utils"
)

// TypeMeta is the element type discriminant.
type TypeMeta struct {
	ElementType string `json:"element_type"`
}

func (t *TypeMeta) GetType() string {
	return t.ElementType
}

func (t *TypeMeta) SetType(typ string) {
	t.ElementType = typ
}

// Element is the common interface of all element kinds.
// Additional kinds must embed Base.
type Element interface {
	model.Object
	runtime.Object

	GetNodes() []int
	GetMaterialId() *int
	GetSectionId() *int
	GetProperties() map[string]interface{}

	ElementBase() *Base
}

type Initializer = runtime.Initializer[Element]

// Base is the common part of all elements.
// Nodes, materials and sections are referenced by id only.
type Base struct {
	model.ObjectMeta `json:",inline"`
	TypeMeta         `json:",inline"`
	Nodes            []int                  `json:"nodes"`
	MaterialId       *int                   `json:"material_id"`
	SectionId        *int                   `json:"section_id"`
	Properties       map[string]interface{} `json:"properties"`
}

func (b *Base) ElementBase() *Base {
	return b
}

func (b *Base) GetObjectType() model.ObjectType {
	return model.ELEMENT
}

func (b *Base) GetNodes() []int {
	return slices.Clone(b.Nodes)
}

func (b *Base) GetMaterialId() *int {
	return b.MaterialId
}

func (b *Base) GetSectionId() *int {
	return b.SectionId
}

func (b *Base) GetProperties() map[string]interface{} {
	return maps.Clone(b.Properties)
}

func (b *Base) SetProperty(key string, value interface{}) {
	if b.Properties == nil {
		b.Properties = map[string]interface{}{}
	}
	b.Properties[key] = value
}

func (b *Base) validateBase() {
	b.ResetValidation()
	if len(b.Nodes) == 0 {
		b.AddValidationMessage("Element must have at least one node")
	}
}

// Validate is the validation for element kinds without
// additional constraints.
func (b *Base) Validate() bool {
	b.validateBase()
	return b.ValidationResult()
}

func (b *Base) material() string {
	return model.OptionalId(b.MaterialId)
}

func (b *Base) section() string {
	return model.OptionalId(b.SectionId)
}

// TransformationId is the geometric transformation
// tag used by beam column elements (property transf_id).
func (b *Base) TransformationId() int {
	return model.IntValue(b.Properties["transf_id"], 1)
}

func (b *Base) nodes(sep string) string {
	return model.Ints(b.Nodes, sep)
}

////////////////////////////////////////////////////////////////////////////////
// initializers

func WithMetadata(meta model.Metadata) Initializer {
	return func(e Element) {
		*e.GetMetadata() = meta
	}
}

func WithName(name string) Initializer {
	return func(e Element) {
		e.GetMetadata().Name = name
	}
}

func WithNodes(ids ...int) Initializer {
	return func(e Element) {
		e.ElementBase().Nodes = slices.Clone(ids)
	}
}

func WithMaterial(id int) Initializer {
	return func(e Element) {
		e.ElementBase().MaterialId = utils.Pointer(id)
	}
}

func WithSection(id int) Initializer {
	return func(e Element) {
		e.ElementBase().SectionId = utils.Pointer(id)
	}
}

func WithProperty(key string, value interface{}) Initializer {
	return func(e Element) {
		e.ElementBase().SetProperty(key, value)
	}
}

func WithTransformationId(id int) Initializer {
	return WithProperty("transf_id", id)
}

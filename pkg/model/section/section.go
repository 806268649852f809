package section

import (
	"slices"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/runtime"
)

// TypeMeta is the section type discriminant.
type TypeMeta struct {
	SectionType string `json:"section_type"`
}

func (t *TypeMeta) GetType() string {
	return t.SectionType
}

func (t *TypeMeta) SetType(typ string) {
	t.SectionType = typ
}

// Section is the common interface of all cross sections.
// Sections are referenced by frame elements by id.
type Section interface {
	model.Object
	runtime.Object

	GetMaterialIds() []int

	// Area provides the cross-sectional area.
	Area() float64

	SectionBase() *Base
}

type Initializer = runtime.Initializer[Section]

type Base struct {
	model.ObjectMeta `json:",inline"`
	TypeMeta         `json:",inline"`
	MaterialIds      []int `json:"material_ids"`
}

func (b *Base) SectionBase() *Base {
	return b
}

func (b *Base) GetObjectType() model.ObjectType {
	return model.SECTION
}

func (b *Base) GetMaterialIds() []int {
	return slices.Clone(b.MaterialIds)
}

func (b *Base) validateBase() {
	b.ResetValidation()
}

func (b *Base) validateMaterials() {
	if len(b.MaterialIds) == 0 {
		b.AddValidationMessage("At least one material ID must be specified")
	}
}

func WithMetadata(meta model.Metadata) Initializer {
	return func(s Section) {
		*s.GetMetadata() = meta
	}
}

func WithName(name string) Initializer {
	return func(s Section) {
		s.GetMetadata().Name = name
	}
}

func WithMaterials(ids ...int) Initializer {
	return func(s Section) {
		s.SectionBase().MaterialIds = slices.Clone(ids)
	}
}

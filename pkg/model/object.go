package model

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/femodel/pkg/registry"
)

// ObjectType is the category of a model object.
type ObjectType string

const (
	NODE               ObjectType = "NODE"
	ELEMENT            ObjectType = "ELEMENT"
	MATERIAL           ObjectType = "MATERIAL"
	SECTION            ObjectType = "SECTION"
	LOAD               ObjectType = "LOAD"
	BOUNDARY_CONDITION ObjectType = "BOUNDARY_CONDITION"
	STAGE              ObjectType = "STAGE"
	RECORDER           ObjectType = "RECORDER"
	ANALYSIS           ObjectType = "ANALYSIS"
	OTHER              ObjectType = "OTHER"
)

// Object is the contract implemented by all model objects.
//
// Validate clears the validation messages of the object and
// repopulates them according to its actual state. It returns
// whether no message has been found. Validation never fails with
// an error, the detailed results are kept on the object.
//
// ToTcl and ToPy provide the command representation of the object
// for the command list and the call based solver dialect.
// Identical state always yields identical output.
type Object interface {
	registry.Identifiable
	SetId(int)

	GetName() string
	GetMetadata() *Metadata
	GetObjectType() ObjectType

	Validate() bool
	IsValid() bool
	GetValidationMessages() []string
	// AddValidationMessage appends a message to the actual
	// validation round. It is used by consistency checks
	// spanning multiple objects.
	AddValidationMessage(msg string, args ...interface{})

	ToTcl() string
	ToPy() string
}

// ObjectMeta is the common part of all model objects.
// It has to be embedded inline.
type ObjectMeta struct {
	Id       int      `json:"id"`
	Metadata Metadata `json:"metadata"`

	messages []string
}

func NewObjectMeta(id int, meta Metadata) ObjectMeta {
	return ObjectMeta{Id: id, Metadata: meta}
}

func (o *ObjectMeta) GetId() int {
	return o.Id
}

func (o *ObjectMeta) SetId(id int) {
	o.Id = id
}

func (o *ObjectMeta) GetName() string {
	return o.Metadata.Name
}

func (o *ObjectMeta) GetMetadata() *Metadata {
	return &o.Metadata
}

// IsValid reports the result of the last validation.
// An object never validated is valid.
func (o *ObjectMeta) IsValid() bool {
	return len(o.messages) == 0
}

func (o *ObjectMeta) GetValidationMessages() []string {
	return slices.Clone(o.messages)
}

// ResetValidation starts a new validation round.
func (o *ObjectMeta) ResetValidation() {
	o.messages = nil
}

func (o *ObjectMeta) AddValidationMessage(msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	o.messages = append(o.messages, msg)
}

// ValidationResult reports whether the actual validation
// round did not find a problem.
func (o *ObjectMeta) ValidationResult() bool {
	return len(o.messages) == 0
}

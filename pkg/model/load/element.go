package load

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/utils"
)

const (
	DISTRIBUTED = "DISTRIBUTED"
	SELF_WEIGHT = "SELF_WEIGHT"
)

// Distributed is a linearly varying line load on an element.
// A missing end value means a uniform load.
type Distributed struct {
	Base       `json:",inline"`
	ElementId  int       `json:"element_id"`
	Direction  Direction `json:"direction"`
	ValueStart float64   `json:"value_start"`
	ValueEnd   *float64  `json:"value_end"`
}

var _ Load = (*Distributed)(nil)

func NewDistributed(id int, name string, element int, d Direction, start float64, end ...float64) *Distributed {
	l := &Distributed{ElementId: element, Direction: d, ValueStart: start}
	if len(end) > 0 {
		l.ValueEnd = utils.Pointer(end[0])
	}
	l.SetType(DISTRIBUTED)
	l.Id = id
	l.Metadata.Name = name
	return l
}

func (l *Distributed) Default() {
	l.Direction = LOCAL_2
}

// End provides the end value, which defaults to the start value.
func (l *Distributed) End() float64 {
	return utils.PointerValue(l.ValueEnd, l.ValueStart)
}

func (l *Distributed) IsUniform() bool {
	return l.End() == l.ValueStart
}

func (l *Distributed) GetElementIds() []int {
	return []int{l.ElementId}
}

func (l *Distributed) Validate() bool {
	l.validateBase()
	if l.ElementId < 0 {
		l.AddValidationMessage("Element ID must be non-negative")
	}
	l.validateDirection(l.Direction)
	if l.ValueStart == 0 && l.End() == 0 {
		l.AddValidationMessage("Load values should not both be zero")
	}
	return l.ValidationResult()
}

// beamUniform provides the local y and x load components.
func (l *Distributed) beamUniform() ([]float64, string) {
	if !l.IsUniform() {
		return nil, "non-uniform distribution"
	}
	switch l.Direction {
	case LOCAL_1:
		return []float64{0, l.ValueStart}, ""
	case LOCAL_2:
		return []float64{l.ValueStart, 0}, ""
	}
	return nil, fmt.Sprintf("direction %s", l.Direction)
}

func (l *Distributed) ToTcl() string {
	v, msg := l.beamUniform()
	if v == nil {
		return unsupported(l, msg)
	}
	return fmt.Sprintf("eleLoad -ele %d -type -beamUniform %s", l.ElementId, model.Floats(v, " "))
}

func (l *Distributed) ToPy() string {
	v, msg := l.beamUniform()
	if v == nil {
		return unsupported(l, msg)
	}
	return fmt.Sprintf("ops.eleLoad('-ele', %d, '-type', '-beamUniform', %s)", l.ElementId, model.Floats(v, ", "))
}

func WithElement(id int) Initializer {
	return func(l Load) {
		if d, ok := l.(*Distributed); ok {
			d.ElementId = id
		}
	}
}

func WithValues(start float64, end ...float64) Initializer {
	return func(l Load) {
		if d, ok := l.(*Distributed); ok {
			d.ValueStart = start
			d.ValueEnd = nil
			if len(end) > 0 {
				d.ValueEnd = utils.Pointer(end[0])
			}
		}
	}
}

////////////////////////////////////////////////////////////////////////////////

// SelfWeight is the gravity load of a set of elements.
type SelfWeight struct {
	Base       `json:",inline"`
	ElementIds []int     `json:"element_ids"`
	Direction  Direction `json:"direction"`
	Factor     float64   `json:"factor"`
}

var _ Load = (*SelfWeight)(nil)

func (l *SelfWeight) Default() {
	l.Direction = Z
	l.Factor = 1
}

func (l *SelfWeight) GetElementIds() []int {
	return slices.Clone(l.ElementIds)
}

func (l *SelfWeight) Validate() bool {
	l.validateBase()
	if len(l.ElementIds) == 0 {
		l.AddValidationMessage("At least one element ID must be specified")
	}
	if l.Factor == 0 {
		l.AddValidationMessage("Load factor should not be zero")
	}
	if l.Direction != X && l.Direction != Y && l.Direction != Z {
		l.AddValidationMessage("Direction must be X, Y, or Z for self-weight loads")
	}
	return l.ValidationResult()
}

func (l *SelfWeight) comment() string {
	return fmt.Sprintf("# Self-weight load in direction %s with factor %s", l.Direction, model.Float(l.Factor))
}

func (l *SelfWeight) ToTcl() string {
	if l.Direction.Dof() > 3 || l.Direction.IsLocal() {
		return unsupported(l, fmt.Sprintf("direction %s", l.Direction))
	}
	return fmt.Sprintf("%s\neleLoad -ele %s -type -selfWeight %s", l.comment(), model.Ints(l.ElementIds, " "), vector(l.Direction, l.Factor, 3, " "))
}

func (l *SelfWeight) ToPy() string {
	if l.Direction.Dof() > 3 || l.Direction.IsLocal() {
		return unsupported(l, fmt.Sprintf("direction %s", l.Direction))
	}
	return fmt.Sprintf("%s\nops.eleLoad('-ele', %s, '-type', '-selfWeight', %s)", l.comment(), model.Ints(l.ElementIds, ", "), vector(l.Direction, l.Factor, 3, ", "))
}

func WithElements(ids ...int) Initializer {
	return func(l Load) {
		if s, ok := l.(*SelfWeight); ok {
			s.ElementIds = slices.Clone(ids)
		}
	}
}

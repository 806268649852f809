package load

import (
	"fmt"
)

const (
	POINT        = "POINT"
	TIME_VARYING = "TIME_VARYING"
)

// Point is a force or moment at a node.
type Point struct {
	Base      `json:",inline"`
	NodeId    int       `json:"node_id"`
	Direction Direction `json:"direction"`
	Value     float64   `json:"value"`
}

var _ Load = (*Point)(nil)

func NewPoint(id int, name string, node int, d Direction, value float64) *Point {
	l := &Point{NodeId: node, Direction: d, Value: value}
	l.SetType(POINT)
	l.Id = id
	l.Metadata.Name = name
	return l
}

func (l *Point) Default() {
	l.Direction = X
}

func (l *Point) GetNodeIds() []int {
	return []int{l.NodeId}
}

func (l *Point) Validate() bool {
	l.validateBase()
	if l.NodeId < 0 {
		l.AddValidationMessage("Node ID must be non-negative")
	}
	l.validateDirection(l.Direction)
	if l.Value == 0 {
		l.AddValidationMessage("Load value should not be zero")
	}
	return l.ValidationResult()
}

func (l *Point) ToTcl() string {
	if l.Direction.IsLocal() {
		return unsupported(l, "local direction")
	}
	return fmt.Sprintf("load %d %s", l.NodeId, vector(l.Direction, l.Value, 6, " "))
}

func (l *Point) ToPy() string {
	if l.Direction.IsLocal() {
		return unsupported(l, "local direction")
	}
	return fmt.Sprintf("ops.load(%d, %s)", l.NodeId, vector(l.Direction, l.Value, 6, ", "))
}

func WithValue(v float64) Initializer {
	return func(l Load) {
		if p, ok := l.(*Point); ok {
			p.Value = v
		}
	}
}

////////////////////////////////////////////////////////////////////////////////

// TimeVarying is a nodal load scaled by a time series.
type TimeVarying struct {
	Base         `json:",inline"`
	NodeId       int       `json:"node_id"`
	Direction    Direction `json:"direction"`
	TimeSeriesId int       `json:"time_series_id"`
	Factor       float64   `json:"factor"`
}

var _ Load = (*TimeVarying)(nil)

func (l *TimeVarying) Default() {
	l.Direction = X
	l.Factor = 1
}

func (l *TimeVarying) GetNodeIds() []int {
	return []int{l.NodeId}
}

func (l *TimeVarying) Validate() bool {
	l.validateBase()
	if l.NodeId < 0 {
		l.AddValidationMessage("Node ID must be non-negative")
	}
	l.validateDirection(l.Direction)
	if l.TimeSeriesId < 0 {
		l.AddValidationMessage("Time series ID must be non-negative")
	}
	if l.Factor == 0 {
		l.AddValidationMessage("Load factor should not be zero")
	}
	return l.ValidationResult()
}

func (l *TimeVarying) ToTcl() string {
	if l.Direction.IsLocal() {
		return unsupported(l, "local direction")
	}
	return fmt.Sprintf("pattern Plain %d %d {\n  load %d %s\n}", l.Id, l.TimeSeriesId, l.NodeId, vector(l.Direction, l.Factor, 6, " "))
}

func (l *TimeVarying) ToPy() string {
	if l.Direction.IsLocal() {
		return unsupported(l, "local direction")
	}
	return fmt.Sprintf("ops.pattern('Plain', %d, %d)\nops.load(%d, %s)", l.Id, l.TimeSeriesId, l.NodeId, vector(l.Direction, l.Factor, 6, ", "))
}

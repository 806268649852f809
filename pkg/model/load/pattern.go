package load

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/femodel/pkg/model"
)

const PATTERN = "PATTERN"

// Pattern groups other loads under a common time series.
// The grouped loads are exported by the model script
// inside the pattern.
type Pattern struct {
	Base         `json:",inline"`
	LoadIds      []int   `json:"load_ids"`
	TimeSeriesId int     `json:"time_series_id"`
	Factor       float64 `json:"factor"`
}

var _ Load = (*Pattern)(nil)

func (l *Pattern) Default() {
	l.TimeSeriesId = 1
	l.Factor = 1
}

func (l *Pattern) GetLoadIds() []int {
	return slices.Clone(l.LoadIds)
}

func (l *Pattern) Validate() bool {
	l.validateBase()
	if len(l.LoadIds) == 0 {
		l.AddValidationMessage("At least one load ID must be specified")
	}
	if slices.Contains(l.LoadIds, l.Id) {
		l.AddValidationMessage("Load pattern must not contain itself")
	}
	if l.TimeSeriesId < 0 {
		l.AddValidationMessage("Time series ID must be non-negative")
	}
	if l.Factor == 0 {
		l.AddValidationMessage("Load factor should not be zero")
	}
	return l.ValidationResult()
}

func (l *Pattern) ToTcl() string {
	return fmt.Sprintf("pattern Plain %d %d -fact %s", l.Id, l.TimeSeriesId, model.Float(l.Factor))
}

func (l *Pattern) ToPy() string {
	return fmt.Sprintf("ops.pattern('Plain', %d, %d, '-fact', %s)", l.Id, l.TimeSeriesId, model.Float(l.Factor))
}

func WithLoads(ids ...int) Initializer {
	return func(l Load) {
		if p, ok := l.(*Pattern); ok {
			p.LoadIds = slices.Clone(ids)
		}
	}
}

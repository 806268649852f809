package export

import (
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/stage"
)

const (
	DefaultStaticSteps  = 1
	DefaultDynamicSteps = 100
	DefaultTimeStep     = 0.01
)

// analyze adds the analysis run for stages with a step wise solution.
// The number of steps is taken from the analysis parameter num_steps,
// dynamic stages additionally use the time step dt.
func (w *writer) analyze(typ stage.Type, params map[string]interface{}) {
	switch typ {
	case stage.STATIC:
		steps := model.IntValue(params["num_steps"], DefaultStaticSteps)
		if w.py() {
			w.line("ops.analyze(%d)", steps)
		} else {
			w.line("analyze %d", steps)
		}
	case stage.DYNAMIC:
		steps := model.IntValue(params["num_steps"], DefaultDynamicSteps)
		dt := model.Float(model.FloatValue(params["dt"], DefaultTimeStep))
		if w.py() {
			w.line("ops.analyze(%d, %s)", steps, dt)
		} else {
			w.line("analyze %d %s", steps, dt)
		}
	}
}

package stage

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mandelsoft/femodel/pkg/model"
)

// Type is the kind of analysis performed by a stage.
type Type string

const (
	STATIC       Type = "STATIC"
	DYNAMIC      Type = "DYNAMIC"
	CONSTRUCTION Type = "CONSTRUCTION"
	EIGEN        Type = "EIGEN"
	LOAD_PATTERN Type = "LOAD_PATTERN"
	CUSTOM       Type = "CUSTOM"
)

var Types = []Type{STATIC, DYNAMIC, CONSTRUCTION, EIGEN, LOAD_PATTERN, CUSTOM}

// DefaultEigenModes is the number of modes computed
// by eigen stages without parameter num_modes.
const DefaultEigenModes = 10

// Stage is a phase of a multi-step analysis. Stages form
// a forest by their parent reference. The active sets
// reference model objects by id.
type Stage struct {
	model.ObjectMeta         `json:",inline"`
	StageType                Type                   `json:"stage_type"`
	Order                    int                    `json:"order"`
	ParentStageId            *int                   `json:"parent_stage_id"`
	Description              string                 `json:"description"`
	IsInitial                bool                   `json:"is_initial"`
	ActiveNodes              model.IdSet            `json:"active_nodes"`
	ActiveElements           model.IdSet            `json:"active_elements"`
	ActiveLoads              model.IdSet            `json:"active_loads"`
	ActiveBoundaryConditions model.IdSet            `json:"active_boundary_conditions"`
	AnalysisParameters       map[string]interface{} `json:"analysis_parameters"`
}

var _ model.Object = (*Stage)(nil)

func New(id int, meta model.Metadata, typ Type) *Stage {
	s := &Stage{
		ObjectMeta: model.NewObjectMeta(id, meta),
		StageType:  typ,
	}
	s.init()
	return s
}

// init assures non-nil sets and parameters.
func (s *Stage) init() {
	if s.ActiveNodes == nil {
		s.ActiveNodes = model.NewIdSet()
	}
	if s.ActiveElements == nil {
		s.ActiveElements = model.NewIdSet()
	}
	if s.ActiveLoads == nil {
		s.ActiveLoads = model.NewIdSet()
	}
	if s.ActiveBoundaryConditions == nil {
		s.ActiveBoundaryConditions = model.NewIdSet()
	}
	if s.AnalysisParameters == nil {
		s.AnalysisParameters = map[string]interface{}{}
	}
}

func (s *Stage) GetObjectType() model.ObjectType {
	return model.STAGE
}

func (s *Stage) IsRoot() bool {
	return s.ParentStageId == nil
}

func (s *Stage) AddNode(ids ...int) {
	s.ActiveNodes.Insert(ids...)
}

func (s *Stage) AddElement(ids ...int) {
	s.ActiveElements.Insert(ids...)
}

func (s *Stage) AddLoad(ids ...int) {
	s.ActiveLoads.Insert(ids...)
}

func (s *Stage) AddBoundaryCondition(ids ...int) {
	s.ActiveBoundaryConditions.Insert(ids...)
}

// RemoveNode removes a node and reports whether it was active.
func (s *Stage) RemoveNode(id int) bool {
	return s.ActiveNodes.Delete(id)
}

func (s *Stage) RemoveElement(id int) bool {
	return s.ActiveElements.Delete(id)
}

func (s *Stage) RemoveLoad(id int) bool {
	return s.ActiveLoads.Delete(id)
}

func (s *Stage) RemoveBoundaryCondition(id int) bool {
	return s.ActiveBoundaryConditions.Delete(id)
}

func (s *Stage) SetAnalysisParameter(name string, value interface{}) {
	if s.AnalysisParameters == nil {
		s.AnalysisParameters = map[string]interface{}{}
	}
	s.AnalysisParameters[name] = value
}

// GetAnalysisParameter provides a parameter or the
// given default.
func (s *Stage) GetAnalysisParameter(name string, def interface{}) interface{} {
	if v, ok := s.AnalysisParameters[name]; ok {
		return v
	}
	return def
}

func (s *Stage) GetAnalysisParameters() map[string]interface{} {
	return maps.Clone(s.AnalysisParameters)
}

// Validate checks the stage itself. Parent linkage and
// references are checked by the model manager.
func (s *Stage) Validate() bool {
	s.ResetValidation()
	if s.Order < 0 {
		s.AddValidationMessage("Stage order must be non-negative")
	}
	if !slices.Contains(Types, s.StageType) {
		s.AddValidationMessage("Unknown stage type %q", s.StageType)
	}
	return s.ValidationResult()
}

func (s *Stage) header() []string {
	return []string{
		fmt.Sprintf("# Stage %d: %s", s.Id, s.Metadata.Name),
		fmt.Sprintf("# Type: %s", s.StageType),
		fmt.Sprintf("# Description: %s", s.Description),
		fmt.Sprintf("# Setting up analysis for stage %d", s.Id),
	}
}

func (s *Stage) modes() int {
	return model.IntValue(s.GetAnalysisParameter("num_modes", DefaultEigenModes), DefaultEigenModes)
}

func (s *Stage) ToTcl() string {
	lines := s.header()
	switch s.StageType {
	case STATIC, DYNAMIC:
		lines = append(lines,
			"wipeAnalysis",
			"system BandGeneral",
			"constraints Plain",
			"numberer RCM",
			"test NormDispIncr 1.0e-6 10",
			"algorithm Newton",
		)
		if s.StageType == STATIC {
			lines = append(lines, "integrator LoadControl 1.0", "analysis Static")
		} else {
			lines = append(lines, "integrator Newmark 0.5 0.25", "analysis Transient")
		}
	case EIGEN:
		lines = append(lines, "wipeAnalysis", fmt.Sprintf("eigen %d", s.modes()))
	}
	return strings.Join(lines, "\n")
}

func (s *Stage) ToPy() string {
	lines := s.header()
	switch s.StageType {
	case STATIC, DYNAMIC:
		lines = append(lines,
			"ops.wipeAnalysis()",
			"ops.system('BandGeneral')",
			"ops.constraints('Plain')",
			"ops.numberer('RCM')",
			"ops.test('NormDispIncr', 1.0e-6, 10)",
			"ops.algorithm('Newton')",
		)
		if s.StageType == STATIC {
			lines = append(lines, "ops.integrator('LoadControl', 1.0)", "ops.analysis('Static')")
		} else {
			lines = append(lines, "ops.integrator('Newmark', 0.5, 0.25)", "ops.analysis('Transient')")
		}
	case EIGEN:
		lines = append(lines, "ops.wipeAnalysis()", fmt.Sprintf("ops.eigen(%d)", s.modes()))
	}
	return strings.Join(lines, "\n")
}

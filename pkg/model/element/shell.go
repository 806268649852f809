package element

import (
	"fmt"
	"strings"
)

const (
	SHELL        = "ShellElement"
	SHELL_MITC4  = "ShellMITC4"
	SHELL_NLDKGQ = "ShellNLDKGQ"
	SHELL_DKGQ   = "ShellDKGQ"
)

// Shell covers four node shell elements.
type Shell struct {
	Base      `json:",inline"`
	Thickness float64 `json:"thickness"`
}

var _ Element = (*Shell)(nil)

func (s *Shell) Validate() bool {
	s.validateBase()
	if s.MaterialId == nil {
		s.AddValidationMessage("Shell element must have a material assigned")
	}
	if s.Thickness <= 0 {
		s.AddValidationMessage("Shell element must have a positive thickness")
	}
	if len(s.Nodes) != 4 {
		s.AddValidationMessage("%s element must have exactly 4 nodes", s.kind())
	}
	return s.ValidationResult()
}

func (s *Shell) kind() string {
	if s.ElementType == SHELL {
		return "Shell"
	}
	return strings.TrimPrefix(s.ElementType, "Shell") + " shell"
}

func (s *Shell) ToTcl() string {
	if s.ElementType == SHELL {
		return fmt.Sprintf("# Shell element %d with nodes %s", s.Id, s.nodes(" "))
	}
	return fmt.Sprintf("element %s %d %s $matTag%s %s", s.ElementType, s.Id, s.nodes(" "), s.material(), fmtFloat(s.Thickness))
}

func (s *Shell) ToPy() string {
	if s.ElementType == SHELL {
		return fmt.Sprintf("# Shell element %d with nodes %s", s.Id, s.nodes(", "))
	}
	return fmt.Sprintf("ops.element('%s', %d, %s, matTag%s, %s)", s.ElementType, s.Id, s.nodes(", "), s.material(), fmtFloat(s.Thickness))
}

func WithThickness(t float64) Initializer {
	return func(e Element) {
		if s, ok := e.(*Shell); ok {
			s.Thickness = t
		}
	}
}

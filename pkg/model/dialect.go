package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mandelsoft/femodel/pkg/utils"
)

// Dialect is a solver scripting dialect.
type Dialect string

const (
	// TCL is the legacy command list dialect.
	TCL Dialect = "tcl"
	// PY is the call based dialect.
	PY Dialect = "py"
)

var Dialects = []Dialect{TCL, PY}

func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "tcl":
		return TCL, nil
	case "py", "python":
		return PY, nil
	}
	return "", fmt.Errorf("unknown dialect %q (use tcl or py)", s)
}

func (d Dialect) FileExtension() string {
	return "." + string(d)
}

type Exporter interface {
	ToTcl() string
	ToPy() string
}

func Export(e Exporter, d Dialect) string {
	if d == PY {
		return e.ToPy()
	}
	return e.ToTcl()
}

// Float provides the shortest exact decimal representation.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func Floats(list []float64, sep string) string {
	return utils.JoinFunc(list, sep, Float)
}

func Ints(list []int, sep string) string {
	return utils.JoinFunc(list, sep, strconv.Itoa)
}

// Flags renders boolean flags as 1 and 0.
func Flags(list []bool, sep string) string {
	return utils.JoinFunc(list, sep, func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	})
}

// OptionalId renders an optional object reference.
func OptionalId(id *int) string {
	if id == nil {
		return "None"
	}
	return strconv.Itoa(*id)
}

package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/femodel/pkg/utils"
)

// PrintTable prints rows aligned under the given column headers.
func PrintTable(w io.Writer, columns []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "no entries found\n")
		return
	}
	max := make([]int, len(columns))
	for i, s := range columns {
		max[i] = len(s)
	}
	for _, cols := range rows {
		for i, s := range cols {
			if max[i] < len(s) {
				max[i] = len(s)
			}
		}
	}

	f := formatString(max)
	printLine(w, columns, f)
	for _, cols := range rows {
		printLine(w, cols, f)
	}
}

func printLine(w io.Writer, cols []string, msg string) {
	args := utils.TransformSlice(cols, func(s string) any { return s })
	fmt.Fprintf(w, "%s\n", strings.TrimRight(fmt.Sprintf(msg, args...), " "))
}

func formatString(max []int) string {
	msg := ""
	for _, l := range max {
		msg += fmt.Sprintf("%%-%ds ", l)
	}
	return msg[:len(msg)-1]
}

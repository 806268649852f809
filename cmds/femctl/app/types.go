package app

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/model"
)

type Types struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewTypes(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "list the supported object types",
	}
	TweakCommand(cmd, 0)

	c := &Types{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Types) Run(args []string) error {
	m := manager.New()

	var rows [][]string
	for _, typ := range manager.Categories {
		if typ == model.NODE {
			continue
		}
		rows = append(rows, []string{string(typ), strings.Join(m.TypeNames(typ), ", ")})
	}
	PrintTable(c.cmd.OutOrStdout(), []string{"CATEGORY", "TYPES"}, rows)
	return nil
}

package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

type Stages struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewStages(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stages <file>",
		Short: "show the stage execution sequence",
	}
	TweakCommand(cmd, 1)

	c := &Stages{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Stages) Run(args []string) error {
	m, err := c.mainopts.LoadModel(c.cmd, args[0])
	if err != nil {
		return err
	}
	stages := m.Stages()
	if len(stages.AllStages()) == 0 {
		fmt.Fprintf(c.cmd.OutOrStdout(), "no stages found\n")
		return nil
	}
	fmt.Fprint(c.cmd.OutOrStdout(), stages.Tree())
	if cur := stages.GetCurrentStage(); cur != nil {
		fmt.Fprintf(c.cmd.OutOrStdout(), "current stage: %d %s\n", cur.GetId(), cur.GetName())
	}
	return stages.CheckCycles()
}

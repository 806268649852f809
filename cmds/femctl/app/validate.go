package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type Validate struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewValidate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "validate a model",
		Long: `
Validates all objects of a model including the references between
them. Every validation message is listed with the object it belongs to.
`,
	}
	TweakCommand(cmd, 1)

	c := &Validate{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Validate) Run(args []string) error {
	m, err := c.mainopts.LoadModel(c.cmd, args[0])
	if err != nil {
		return err
	}
	if m.Validate() {
		fmt.Fprintf(c.cmd.OutOrStdout(), "model is valid\n")
		return nil
	}

	var rows [][]string
	invalid := m.Invalid()
	for _, o := range invalid {
		for _, msg := range o.GetValidationMessages() {
			rows = append(rows, []string{string(o.GetObjectType()), strconv.Itoa(o.GetId()), o.GetName(), msg})
		}
	}
	PrintTable(c.cmd.OutOrStdout(), []string{"CATEGORY", "ID", "NAME", "MESSAGE"}, rows)
	return fmt.Errorf("model has %d invalid object(s)", len(invalid))
}

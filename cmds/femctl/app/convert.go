package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/femodel/pkg/storage"
)

type Convert struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	format   string
}

func NewConvert(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file> <options>",
		Short: "convert a model file into a model document",
		Long: `
Reads a model from a JSON, YAML or HCL file and writes it as
normalized JSON or YAML document. The output format is taken
from the extension of the output file. Without output file
the document is printed in the configured output format.
`,
	}
	TweakCommand(cmd, 1)

	c := &Convert{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output file")
	flags.StringVarP(&c.format, "format", "f", "", "output format (json or yaml)")
	return cmd
}

func (c *Convert) Run(args []string) error {
	m, err := c.mainopts.LoadModel(c.cmd, args[0])
	if err != nil {
		return err
	}
	if c.output != "" {
		return storage.SaveModel(c.mainopts.fs, c.output, m)
	}

	format := c.mainopts.settings.Output
	if c.format != "" {
		format, err = storage.ParseFormat(c.format)
		if err != nil {
			return err
		}
	}
	doc, err := m.ToDict()
	if err != nil {
		return err
	}
	data, err := storage.Encode(doc, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.cmd.OutOrStdout(), string(data))
	return err
}

package app

import (
	"fmt"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/femodel/pkg/export"
)

type Export struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	title    string
	analyze  bool
}

func NewExport(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file> <options>",
		Short: "export a model as solver script",
	}
	TweakCommand(cmd, 1)

	c := &Export{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output file")
	flags.StringVarP(&c.title, "title", "t", "", "project title for the script header")
	flags.BoolVarP(&c.analyze, "analyze", "a", false, "add analyze commands for the stages")
	return cmd
}

func (c *Export) Run(args []string) error {
	m, err := c.mainopts.LoadModel(c.cmd, args[0])
	if err != nil {
		return err
	}
	title := c.title
	if title == "" {
		title = filepath.Base(args[0])
	}
	script := export.Script(m, c.mainopts.settings.Dialect, export.WithTitle(title), export.WithAnalyze(c.analyze))

	if c.output == "" {
		_, err = fmt.Fprint(c.cmd.OutOrStdout(), script)
		return err
	}
	return vfs.WriteFile(c.mainopts.fs, c.output, []byte(script), 0o644)
}

package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

type Digest struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewDigest(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest <file>",
		Short: "print the model fingerprint",
	}
	TweakCommand(cmd, 1)

	c := &Digest{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Digest) Run(args []string) error {
	m, err := c.mainopts.LoadModel(c.cmd, args[0])
	if err != nil {
		return err
	}
	d, err := m.Digest()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", d)
	return nil
}

package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/storage"
	"github.com/mandelsoft/femodel/pkg/utils"
)

type Options struct {
	fs       vfs.FileSystem
	settings *Settings

	dialect      string
	logLevel     string
	noSubstitute bool
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   "femctl <options> <cmd> <args>",
		Short: "structural model command",
		Long: `
This command can be used to check, inspect, convert and export
structural models given as JSON, YAML or HCL files.
`,
		Run:              nil,
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Complete()
		},
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.dialect, "dialect", "d", "", "script dialect (tcl or py)")
	flags.StringVarP(&opts.logLevel, "log-level", "L", "", "log level")
	flags.BoolVarP(&opts.noSubstitute, "no-substitute", "N", false, "disable ${VAR} expansion in model files")

	maincmd.AddCommand(NewValidate(opts))
	maincmd.AddCommand(NewExport(opts))
	maincmd.AddCommand(NewStages(opts))
	maincmd.AddCommand(NewTypes(opts))
	maincmd.AddCommand(NewConvert(opts))
	maincmd.AddCommand(NewDigest(opts))
	return maincmd
}

// Complete evaluates the configuration and the global options.
func (o *Options) Complete() error {
	s, err := GetConfig(o.fs).Settings()
	if err != nil {
		return err
	}
	if o.dialect != "" {
		s.Dialect, err = model.ParseDialect(o.dialect)
		if err != nil {
			return err
		}
	}
	if o.logLevel != "" {
		s.LogLevel = o.logLevel
	}
	if o.noSubstitute {
		s.Substitute = false
	}

	l, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("femodel")))
	o.settings = s
	return nil
}

// LoadModel reads a model file. Records which could not be loaded
// are reported as warnings, the remaining model is used.
func (o *Options) LoadModel(cmd *cobra.Command, path string) (*manager.ModelManager, error) {
	m, err := storage.LoadModel(o.fs, path, storage.WithSubstitution(o.settings.Substitute))
	if m == nil {
		return nil, err
	}
	if err != nil {
		if agg, ok := err.(utilerrors.Aggregate); ok {
			for _, e := range agg.Errors() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", e)
			}
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", err)
		}
	}
	return m, nil
}

func TweakCommand(cmd *cobra.Command, args int) {
	cmd.TraverseChildren = true
	cmd.Args = cobra.ExactArgs(args)
}

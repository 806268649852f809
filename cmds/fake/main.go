package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/mandelsoft/femodel/cmds/fake/random"
	"github.com/mandelsoft/femodel/pkg/export"
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/storage"
)

func Error(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func main() {
	var opts random.Options
	var output string
	var dialect string
	var level string

	flags := pflag.NewFlagSet("fake", pflag.ExitOnError)

	flags.Int64VarP(&opts.Seed, "seed", "s", time.Now().UnixNano(), "random seed")
	flags.StringVarP(&opts.Kind, "kind", "k", random.KIND_FRAME, "model kind (frame or truss)")
	flags.IntVarP(&opts.Bays, "bays", "b", 2, "number of bays")
	flags.IntVarP(&opts.Stories, "stories", "n", 3, "number of stories (frame only)")
	flags.IntVarP(&opts.Stages, "stages", "S", 3, "number of stages")
	flags.StringVarP(&output, "output", "o", "", "output file (.json, .yaml)")
	flags.StringVarP(&dialect, "dialect", "d", "", "print solver script instead of document")
	flags.StringVarP(&level, "log-level", "L", "info", "log level")

	err := flags.Parse(os.Args[1:])
	if err != nil {
		Error("invalid arguments: %s", err)
	}
	if err := setLevel(level); err != nil {
		Error("invalid log level: %s", err)
	}

	g, err := random.New(opts)
	if err != nil {
		Error("%s", err)
	}
	log.Info("generating model with seed {{seed}}", "seed", opts.Seed)
	m, err := g.Generate()
	if err != nil {
		Error("cannot generate model: %s", err)
	}
	if !m.Validate() {
		for _, o := range m.Invalid() {
			log.Error("invalid {{type}} {{id}}: {{messages}}", "type", o.GetObjectType(), "id", o.GetId(), "messages", o.GetValidationMessages())
		}
	}

	if dialect != "" {
		d, err := model.ParseDialect(dialect)
		if err != nil {
			Error("%s", err)
		}
		fmt.Print(export.Script(m, d, export.WithTitle(fmt.Sprintf("random %s %d", opts.Kind, opts.Seed)), export.WithAnalyze()))
		return
	}

	if output == "" {
		doc, err := m.ToDict()
		if err != nil {
			Error("%s", err)
		}
		data, err := storage.Encode(doc, storage.YAML)
		if err != nil {
			Error("%s", err)
		}
		fmt.Print(string(data))
		return
	}
	if err := storage.SaveModel(nil, output, m); err != nil {
		Error("cannot write %s: %s", output, err)
	}
	log.Info("model written to {{file}}", "file", output)
}

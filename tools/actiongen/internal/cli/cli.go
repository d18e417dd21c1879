// Package cli implements actiongen's command-line surface, mirroring the
// teacher's effectsgen CLI: flag parsing, usage text, and a thin call into
// the pipeline package.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"charability/tools/actiongen/internal/pipeline"
)

func Execute(stdout, stderr io.Writer, args []string) error {
	_ = stdout

	flagSet := flag.NewFlagSet("actiongen", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	var catalogDir, outPath, pkgName, modulePath string
	flagSet.StringVar(&catalogDir, "catalog", "", "Directory of JSON action-catalog files.")
	flagSet.StringVar(&outPath, "out", "", "Path to the generated Go source file.")
	flagSet.StringVar(&pkgName, "pkg", "actions", "Go package name for the generated file.")
	flagSet.StringVar(&modulePath, "module", "", "Expected module path of the current go.mod (optional guard).")

	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage of %s:\n", flagSet.Name())
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if catalogDir == "" {
		flagSet.Usage()
		return fmt.Errorf("actiongen: missing required flag --catalog")
	}
	if outPath == "" {
		flagSet.Usage()
		return fmt.Errorf("actiongen: missing required flag --out")
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		flagSet.Usage()
		return fmt.Errorf("actiongen: unexpected arguments: %s", strings.Join(extra, " "))
	}

	return pipeline.Run(pipeline.Options{
		CatalogDir: catalogDir,
		OutputPath: outPath,
		Package:    pkgName,
		ModulePath: modulePath,
	})
}

package pipeline

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/mod/modfile"
	"golang.org/x/sync/errgroup"
)

// Options configures one generator run.
type Options struct {
	// CatalogDir holds one or more *.json action-catalog files, merged
	// together before validation.
	CatalogDir string
	// OutputPath is the Go source file to write.
	OutputPath string
	// Package is the package name declared in the generated file.
	Package string
	// ModulePath, if set, is checked against the module declaration of the
	// go.mod in the current working directory so generated output always
	// targets the module it was built against rather than a stale
	// copy-pasted import path.
	ModulePath string
}

// Run loads every catalog file under Options.CatalogDir concurrently
// (bounded to GOMAXPROCS workers via errgroup, mirroring the teacher's
// module-aware, concurrency-bounded generator), validates the merged set,
// and writes the generated Go source to Options.OutputPath.
func Run(opts Options) error {
	if opts.ModulePath != "" {
		if err := checkModulePath(opts.ModulePath); err != nil {
			return err
		}
	}

	paths, err := listCatalogFiles(opts.CatalogDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("actiongen: no catalog files found under %s", opts.CatalogDir)
	}

	results := make([][]entryDoc, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			entries, err := loadCatalogFile(path)
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var merged []entryDoc
	for _, r := range results {
		merged = append(merged, r...)
	}

	if err := validateCatalog(merged); err != nil {
		return err
	}

	source, err := generateSource(opts.Package, merged)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.OutputPath, source, 0o644); err != nil {
		return fmt.Errorf("actiongen: write %s: %w", opts.OutputPath, err)
	}
	return nil
}

// checkModulePath reads go.mod in the current directory and confirms its
// module declaration matches want, catching a generator invoked against the
// wrong checkout before it silently writes an import path nothing can use.
func checkModulePath(want string) error {
	data, err := os.ReadFile("go.mod")
	if err != nil {
		return fmt.Errorf("actiongen: read go.mod: %w", err)
	}
	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return fmt.Errorf("actiongen: parse go.mod: %w", err)
	}
	if f.Module == nil || f.Module.Mod.Path != want {
		got := ""
		if f.Module != nil {
			got = f.Module.Mod.Path
		}
		return fmt.Errorf("actiongen: go.mod module %q does not match expected %q", got, want)
	}
	return nil
}

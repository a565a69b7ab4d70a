package buildgen

import (
	"context"

	"github.com/spf13/afero"
)

// Result contains everything a generator run found and produced
type Result struct {
	Layout    Layout
	Sources   []string
	Libraries LibrarySet
	Script    *Script
	Issues    []Issue
}

// Discover searches the layout's root for sources and its library directory for prebuilt libraries
func Discover(ctx context.Context, fs afero.Fs, layout Layout) (*Result, error) {
	sources, err := FindSources(ctx, fs, layout.Root)
	if err != nil {
		return nil, err
	}

	libs, err := FindLibraries(ctx, fs, layout.LibDir)
	if err != nil {
		return nil, err
	}

	return &Result{
		Layout:    layout,
		Sources:   sources,
		Libraries: libs,
	}, nil
}

// Generate discovers the project's files and assembles the compile script without writing it
func Generate(ctx context.Context, fs afero.Fs, layout Layout, opts ScriptOptions) (*Result, error) {
	result, err := Discover(ctx, fs, layout)
	if err != nil {
		return nil, err
	}

	result.Script = Assemble(result.Sources, result.Libraries, opts)
	result.Issues = result.Script.Check(ctx)

	return result, nil
}

// Run generates the compile script and writes it to the layout's output path
func Run(ctx context.Context, fs afero.Fs, layout Layout, opts ScriptOptions) (*Result, error) {
	result, err := Generate(ctx, fs, layout, opts)
	if err != nil {
		return nil, err
	}

	err = WriteScript(ctx, fs, layout.Output, result.Script)
	if err != nil {
		return nil, err
	}

	log(ctx).Info().
		Str("path", layout.Output).
		Int("sources", len(result.Sources)).
		Int("libraries", len(result.Libraries.Paths)).
		Msgf("wrote %s", layout.Output)
	return result, nil
}

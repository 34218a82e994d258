// Package pagelint provides a fluent API for checking the layout quality
// of a rendered book interior.
//
// The input is a page-geometry dump produced by a PDF inspection tool
// (characters, table boxes and page dimensions as JSON). Basic usage:
//
//	result, err := pagelint.Check("interior.json").Run()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(report.Console("interior.pdf", result.Issues))
//	os.Exit(result.ExitCode)
//
// With options:
//
//	result, err := pagelint.Check("interior.json").
//	    WithTrimSize("digest").
//	    ImagesDir("assets/images").
//	    Strict().
//	    Run()
//
// For finer control, the lint, preflight and productspec packages are
// available directly.
package pagelint

import (
	"fmt"

	"github.com/tsawler/pagelint/lint"
	"github.com/tsawler/pagelint/model"
	"github.com/tsawler/pagelint/preflight"
	"github.com/tsawler/pagelint/productspec"
)

// Check starts a fluent analysis chain over a geometry dump file. The
// chain is evaluated by the terminal Run call; configuration methods
// never touch the filesystem.
func Check(path string) *Runner {
	return &Runner{
		path:    path,
		options: defaultRunOptions(),
	}
}

// Runner accumulates configuration for one analysis run. Each
// configuration method returns a new Runner, so a partially configured
// chain can be reused and shared freely.
type Runner struct {
	path    string
	options runOptions

	// Accumulated error (fail-fast): the first configuration error is
	// kept and returned by Run.
	err error
}

// Result is the outcome of a completed run.
type Result struct {
	// Document is the loaded page geometry.
	Document *model.Document

	// Issues is the frozen issue list: geometry issues in page order,
	// then any file-scoped image issues.
	Issues []lint.Issue

	// ExitCode is the process status a CLI caller should exit with.
	ExitCode int
}

// Run loads the geometry dump, applies the configured target spec, runs
// the detector pipeline and the optional image preflight, and freezes
// the result. Input failures (missing dump, bad target spec, missing
// image directory) are returned as errors, never as issues.
func (r *Runner) Run() (*Result, error) {
	if r.err != nil {
		return nil, r.err
	}

	config, err := r.options.resolveConfig()
	if err != nil {
		return nil, err
	}

	doc, err := model.Load(r.path)
	if err != nil {
		return nil, err
	}

	issues, err := lint.Analyze(doc, config)
	if err != nil {
		return nil, err
	}

	if r.options.imagesDir != "" {
		checker := preflight.NewCheckerWithConfig(r.options.preflightConfig())
		imageIssues, err := checker.Check(r.options.imagesDir)
		if err != nil {
			return nil, err
		}
		issues = append(issues, imageIssues...)
	}

	return &Result{
		Document: doc,
		Issues:   issues,
		ExitCode: lint.ExitCode(issues, r.options.strict),
	}, nil
}

// clone returns a copy of the Runner with a deep copy of its options.
func (r *Runner) clone() *Runner {
	return &Runner{
		path:    r.path,
		options: r.options.clone(),
		err:     r.err,
	}
}

// fail records a configuration error on a fresh clone.
func (r *Runner) fail(err error) *Runner {
	clone := r.clone()
	if clone.err == nil {
		clone.err = err
	}
	return clone
}

// WithConfig replaces the detector configuration entirely, overriding
// any target spec or trim size set on the chain.
func (r *Runner) WithConfig(config lint.Config) *Runner {
	clone := r.clone()
	clone.options.config = &config
	return clone
}

// WithTargetSpec derives the detector geometry from a JSON target-spec
// file at Run time.
func (r *Runner) WithTargetSpec(path string) *Runner {
	clone := r.clone()
	clone.options.targetSpecPath = path
	return clone
}

// WithTrimSize derives the detector geometry from a named industry trim
// size such as "digest" or "us_trade".
func (r *Runner) WithTrimSize(name string) *Runner {
	trim, err := productspec.TrimSizeByName(name)
	if err != nil {
		return r.fail(err)
	}
	clone := r.clone()
	clone.options.trimSize = &trim
	return clone
}

// ImagesDir enables the image preflight over the given directory.
func (r *Runner) ImagesDir(dir string) *Runner {
	clone := r.clone()
	clone.options.imagesDir = dir
	return clone
}

// MinDPI overrides the 300 DPI print floor for the image preflight.
func (r *Runner) MinDPI(dpi float64) *Runner {
	if dpi <= 0 {
		return r.fail(fmt.Errorf("min dpi must be positive, got %g", dpi))
	}
	clone := r.clone()
	clone.options.minDPI = dpi
	return clone
}

// Strict upgrades a warnings-only run from exit code 1 to 2.
func (r *Runner) Strict() *Runner {
	clone := r.clone()
	clone.options.strict = true
	return clone
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and
// tests where error handling would be cumbersome.
//
//	result := pagelint.Must(pagelint.Check("interior.json").Run())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

package pagelint

import (
	"github.com/tsawler/pagelint/lint"
	"github.com/tsawler/pagelint/preflight"
	"github.com/tsawler/pagelint/productspec"
)

// runOptions holds the configuration accumulated by a Runner chain.
type runOptions struct {
	// Geometry sources, highest precedence first. config wins over
	// targetSpecPath, which wins over trimSize; with none set the A5
	// defaults apply.
	config         *lint.Config
	targetSpecPath string
	trimSize       *productspec.TrimSize

	// Image preflight. Empty imagesDir disables the check.
	imagesDir string
	minDPI    float64

	strict bool
}

func defaultRunOptions() runOptions {
	return runOptions{
		minDPI: preflight.DefaultConfig().MinDPI,
	}
}

// clone creates a copy with the pointer fields duplicated, keeping
// chained Runners independent.
func (o runOptions) clone() runOptions {
	newOpts := o
	if o.config != nil {
		config := *o.config
		newOpts.config = &config
	}
	if o.trimSize != nil {
		trim := *o.trimSize
		newOpts.trimSize = &trim
	}
	return newOpts
}

// resolveConfig produces the detector configuration for a run, reading
// the target-spec file now if one was named.
func (o runOptions) resolveConfig() (lint.Config, error) {
	switch {
	case o.config != nil:
		return *o.config, nil
	case o.targetSpecPath != "":
		spec, err := productspec.LoadTargetSpec(o.targetSpecPath)
		if err != nil {
			return lint.Config{}, err
		}
		return lint.ConfigFromTargetSpec(spec), nil
	case o.trimSize != nil:
		return lint.ConfigFromTargetSpec(o.trimSize.Spec()), nil
	}
	return lint.DefaultConfig(), nil
}

// preflightConfig builds the image-check configuration for a run.
func (o runOptions) preflightConfig() preflight.Config {
	config := preflight.DefaultConfig()
	if o.minDPI > 0 {
		config.MinDPI = o.minDPI
	}
	return config
}

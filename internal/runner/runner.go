// Package runner composes the scoping pipeline from configuration and runs
// it over a set of documents.
package runner

import (
	"errors"
	"fmt"

	"github.com/erraggy/phpscoper/config"
	"github.com/erraggy/phpscoper/patcher"
	"github.com/erraggy/phpscoper/scoper"
	"github.com/erraggy/phpscoper/scoper/composer"
)

// Option configures a run.
type Option func(*runConfig) error

type runConfig struct {
	cfg    *config.Config
	logger scoper.Logger
	base   scoper.Scoper
}

// WithConfig sets the configuration the pipeline is built from. Required.
func WithConfig(cfg *config.Config) Option {
	return func(rc *runConfig) error {
		if cfg == nil {
			return errors.New("runner: config cannot be nil")
		}
		rc.cfg = cfg
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l scoper.Logger) Option {
	return func(rc *runConfig) error {
		if l != nil {
			rc.logger = l
		}
		return nil
	}
}

// WithScoper sets the scoper that files not handled by the specialised
// scopers fall through to. The default is [scoper.Null].
func WithScoper(s scoper.Scoper) Option {
	return func(rc *runConfig) error {
		if s == nil {
			return errors.New("runner: scoper cannot be nil")
		}
		rc.base = s
		return nil
	}
}

// Result is the outcome of a successful run.
type Result struct {
	// Documents holds the scoped documents in input order.
	Documents []scoper.Document
	// Changed counts documents whose contents differ from the input.
	Changed int
}

// Build assembles the scoping pipeline described by cfg on top of base:
// installed.json rewriting first, then the configured patches.
func Build(cfg *config.Config, base scoper.Scoper) (scoper.Scoper, error) {
	prefixer, err := cfg.Prefixer()
	if err != nil {
		return nil, err
	}
	patchers, err := cfg.Patchers()
	if err != nil {
		return nil, err
	}

	installed, err := composer.NewInstalledPackagesScoper(base, prefixer)
	if err != nil {
		return nil, err
	}
	return patcher.NewScoper(installed, prefixer.Prefix(), patcher.NewChain(patchers...)), nil
}

// Run scopes every document in order. The first failure aborts the run and
// no result is returned, so a single bad file fails the whole bundle.
func Run(docs []scoper.Document, opts ...Option) (*Result, error) {
	rc := &runConfig{
		logger: scoper.NopLogger{},
		base:   scoper.Null,
	}
	for _, opt := range opts {
		if err := opt(rc); err != nil {
			return nil, err
		}
	}
	if rc.cfg == nil {
		return nil, errors.New("runner: a config is required (use WithConfig)")
	}

	pipeline, err := Build(rc.cfg, rc.base)
	if err != nil {
		return nil, fmt.Errorf("runner: building pipeline: %w", err)
	}

	result := &Result{Documents: make([]scoper.Document, 0, len(docs))}
	for _, doc := range docs {
		scoped, err := scoper.ScopeDocument(pipeline, doc)
		if err != nil {
			rc.logger.Error("scoping failed", "path", doc.Path, "error", err)
			return nil, fmt.Errorf("runner: scoping %s: %w", doc.Path, err)
		}

		changed := scoped.Contents != doc.Contents
		if changed {
			result.Changed++
		}
		rc.logger.Debug("scoped file", "path", doc.Path, "changed", changed)
		result.Documents = append(result.Documents, scoped)
	}

	rc.logger.Info("scoping complete", "files", len(docs), "changed", result.Changed, "prefix", rc.cfg.Prefix)
	return result, nil
}

// Package phpscoper provides tools for prefixing the namespaces of a PHP
// dependency tree so that it can be bundled without clashing with the code
// that loads it.
//
// # Overview
//
// The library is built from small, independently testable units that are
// composed into a pipeline:
//
//   - scoper: the [scoper.Scoper] transformer interface and the identity scoper
//   - scoper/composer: a decorator that rewrites vendor/composer/installed.json
//     and passes every other file through to the scoper it wraps
//   - patcher: ordered chains of content patches applied after scoping
//   - scoperrors: structured error types for decode, shape and config failures
//   - config: YAML configuration with environment overrides
//
// # Quick Start
//
// Rewrite an installed.json document:
//
//	import (
//		"github.com/erraggy/phpscoper/scoper"
//		"github.com/erraggy/phpscoper/scoper/composer"
//	)
//
//	prefixer, err := composer.NewNamespacePrefixer("Humbug")
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, err := composer.NewInstalledPackagesScoper(scoper.Null, prefixer)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := s.Scope("vendor/composer/installed.json", contents)
//
// Chain patches:
//
//	import "github.com/erraggy/phpscoper/patcher"
//
//	chain := patcher.NewChain(first, second)
//	out, err := chain.Patch("src/Foo.php", "Humbug", contents)
//
// Each stage sees the output of the stage before it, and the first failure
// aborts the whole call. See the package documentation of each subpackage
// for details.
package phpscoper

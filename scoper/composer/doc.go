// Package composer rewrites the metadata files Composer writes into a
// vendor directory.
//
// [InstalledPackagesScoper] is a [scoper.Scoper] decorator. It recognises
// vendor/composer/installed.json by path alone, rewrites every package
// record in it through an [AutoloadPrefixer], and hands every other file,
// untouched, to the scoper it wraps.
//
// # Recognised Files
//
// A path is recognised when it ends in composer/installed.json, using
// either a slash or a backslash before installed.json. The file contents are
// never inspected to decide routing.
//
// # Document Layout
//
// The "packages" field may be either of the layouts Composer has used:
//
//	{"packages": [{"name": "acme/foo", "autoload": {...}}, ...]}
//	{"packages": {"acme/foo": {"autoload": {...}}, ...}}
//
// Every record is handed to the prefixer exactly once, in source order.
// Sibling fields and key order are preserved, and output is indented with
// four spaces, so rewriting unchanged input twice gives byte-identical
// results.
//
// # Errors
//
// Content that is not JSON, or whose top-level value is not an object,
// fails with [scoperrors.DecodeError]. A missing or malformed "packages"
// field fails with [scoperrors.ShapeError]. Prefixer errors are returned
// verbatim. No partially rewritten document is ever returned.
package composer

// Package scoper defines the transformer capability shared by every stage of
// the phpscoper pipeline.
//
// A [Scoper] converts the contents of one file, identified by its path, into
// new contents. Scopers are composed by decoration: a specialised scoper
// handles the files it recognises and hands everything else, unchanged, to
// the scoper it wraps. [Null] sits at the bottom of every stack and returns
// its input as is.
//
// Scopers are stateless across calls. Scoping disjoint documents from
// several goroutines is safe as long as the capabilities supplied at
// construction hold no shared mutable state.
package scoper

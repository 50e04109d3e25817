// Package patcher composes content patches into ordered chains.
//
// A [Patcher] receives the path of the file being patched, the namespace
// prefix, and the current contents, and returns new contents. A [Chain]
// applies its patchers in construction order: the first sees the original
// contents, every later one sees the output of the one before it, and all of
// them receive the same path and prefix.
//
//	chain := patcher.NewChain(first, second, third)
//	out, err := chain.Patch("src/Foo.php", "Humbug", contents)
//	// out == third(second(first(contents)))
//
// The first failing patcher aborts the chain. Its error is returned as is and
// no later patcher runs.
//
// [Replace] is a declarative patcher driven by configuration, and
// [NewScoper] plugs a patcher into a [scoper.Scoper] stack.
package patcher

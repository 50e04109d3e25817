package patcher

import "slices"

// Patcher rewrites file contents. filePath and prefix identify the
// invocation and are passed through a chain unchanged.
type Patcher interface {
	Patch(filePath, prefix, contents string) (string, error)
}

// Func adapts an ordinary function to the Patcher interface.
type Func func(filePath, prefix, contents string) (string, error)

// Patch calls f(filePath, prefix, contents).
func (f Func) Patch(filePath, prefix, contents string) (string, error) {
	return f(filePath, prefix, contents)
}

// Chain applies an ordered list of patchers, threading the contents from one
// to the next. A Chain is immutable once constructed and is itself a Patcher,
// so chains nest.
type Chain struct {
	patchers []Patcher
}

// NewChain creates a chain applying patchers in the given order.
// The slice is copied; later changes to it do not affect the chain.
func NewChain(patchers ...Patcher) *Chain {
	return &Chain{patchers: slices.Clone(patchers)}
}

// Len returns the number of patchers in the chain.
func (c *Chain) Len() int {
	return len(c.patchers)
}

// Patch implements Patcher. An empty chain returns contents unchanged.
func (c *Chain) Patch(filePath, prefix, contents string) (string, error) {
	for _, p := range c.patchers {
		patched, err := p.Patch(filePath, prefix, contents)
		if err != nil {
			return "", err
		}
		contents = patched
	}
	return contents, nil
}

var (
	_ Patcher = Func(nil)
	_ Patcher = (*Chain)(nil)
)

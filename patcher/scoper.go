package patcher

import "github.com/erraggy/phpscoper/scoper"

// patchingScoper runs a patcher over the output of the scoper it decorates.
type patchingScoper struct {
	decorated scoper.Scoper
	prefix    string
	patcher   Patcher
}

// NewScoper returns a scoper that scopes a file with decorated and then
// applies p to the result, using prefix for every file.
// Errors from either stage are returned unchanged.
func NewScoper(decorated scoper.Scoper, prefix string, p Patcher) scoper.Scoper {
	return &patchingScoper{
		decorated: decorated,
		prefix:    prefix,
		patcher:   p,
	}
}

func (s *patchingScoper) Scope(filePath, contents string) (string, error) {
	scoped, err := s.decorated.Scope(filePath, contents)
	if err != nil {
		return "", err
	}
	return s.patcher.Patch(filePath, s.prefix, scoped)
}

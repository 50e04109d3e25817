package scoper

// Scoper rewrites the contents of a single file.
//
// Implementations must not retain filePath or contents across calls and must
// return either the complete rewritten contents or an error, never both.
type Scoper interface {
	Scope(filePath, contents string) (string, error)
}

// Func adapts an ordinary function to the [Scoper] interface.
type Func func(filePath, contents string) (string, error)

// Scope calls f(filePath, contents).
func (f Func) Scope(filePath, contents string) (string, error) {
	return f(filePath, contents)
}

// nullScoper returns its input unchanged.
type nullScoper struct{}

func (nullScoper) Scope(_, contents string) (string, error) {
	return contents, nil
}

// Null is the identity scoper. It never fails.
var Null Scoper = nullScoper{}

// Document is an addressable unit of content.
type Document struct {
	// Path identifies the document, typically a slash or backslash separated file path.
	Path string
	// Contents is the text of the document.
	Contents string
}

// ScopeDocument runs s over d and returns the rewritten document.
// d itself is never modified; on error the zero Document is returned.
func ScopeDocument(s Scoper, d Document) (Document, error) {
	contents, err := s.Scope(d.Path, d.Contents)
	if err != nil {
		return Document{}, err
	}
	return Document{Path: d.Path, Contents: contents}, nil
}

// Ensure the adapters implement Scoper at compile time.
var (
	_ Scoper = Func(nil)
	_ Scoper = nullScoper{}
)

package interfaces

// Header carries the structured metadata block parsed from the top of a
// document. Known keys are promoted to fields; everything else is preserved
// in Custom so downstream consumers never lose author-supplied values.
type Header struct {
	Title      string
	Slug       string
	Status     string
	Date       string
	Categories []string
	Tags       []string
	// Language holds the raw header value. It stays untyped because a
	// wrong-typed value must degrade to "no language" instead of failing
	// the header decode; i18n.Normalize performs the validation.
	Language any
	Hashtag  string
	Custom   map[string]any
}

// Document owns one parsed header and the markdown body that follows it.
// Instances are immutable after load; body transforms produce new strings.
type Document struct {
	FilePath string
	Header   Header
	Body     string
}

// DocumentSource abstracts the host that supplies the active document, such
// as an editor buffer or a file on disk. Active returns the raw UTF-8 text
// and the document's file-system path; it errors when no document is open.
type DocumentSource interface {
	Active() (text []byte, path string, err error)
}

// Renderer converts markdown text into HTML. Implementations must be pure:
// the same input always yields the same output and no state is retained
// between calls.
type Renderer interface {
	Render(markdown []byte) ([]byte, error)
}

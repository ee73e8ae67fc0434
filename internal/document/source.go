package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

// ErrNoActiveDocument indicates the source has no document to publish.
var ErrNoActiveDocument = errors.New("document: no active document")

const sourceMissingCode = "DOCUMENT_SOURCE_MISSING"

// FileSource supplies a document from the local filesystem. It is the CLI
// counterpart of an editor's active buffer.
type FileSource struct {
	path string
}

var _ interfaces.DocumentSource = (*FileSource)(nil)

// NewFileSource builds a source around the supplied path. An empty path is
// allowed at construction; Active reports the precondition failure.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: strings.TrimSpace(path)}
}

// Active reads the document text and returns it with its absolute path.
func (s *FileSource) Active() ([]byte, string, error) {
	if s == nil || s.path == "" {
		return nil, "", goerrors.Wrap(ErrNoActiveDocument, goerrors.CategoryValidation, "no document path supplied").
			WithTextCode(sourceMissingCode)
	}

	abs, err := filepath.Abs(s.path)
	if err != nil {
		abs = s.path
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, "", goerrors.Wrap(err, goerrors.CategoryValidation, "read document").
			WithTextCode(sourceMissingCode)
	}
	return data, abs, nil
}

package document

import (
	"bytes"
	"errors"
	"strings"

	"github.com/adrg/frontmatter"
	goerrors "github.com/goliatone/go-errors"

	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

// ErrMissingTitle indicates the document header lacks a non-empty title.
// Publishing stops before any network call when this is returned.
var ErrMissingTitle = errors.New("document: header is missing a title")

const missingTitleCode = "DOCUMENT_TITLE_MISSING"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load parses raw document text into a Document. A leading byte-order mark
// is stripped before the header is split from the body. The returned
// document is a value snapshot; downstream transforms never mutate it.
func Load(source []byte, path string) (*interfaces.Document, error) {
	source = bytes.TrimPrefix(source, utf8BOM)

	var meta headerEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "parse document header").
			WithTextCode("DOCUMENT_HEADER_INVALID")
	}

	header := envelopeToHeader(meta)
	if strings.TrimSpace(header.Title) == "" {
		return nil, goerrors.Wrap(ErrMissingTitle, goerrors.CategoryValidation, "document header must declare a title").
			WithTextCode(missingTitleCode)
	}

	return &interfaces.Document{
		FilePath: path,
		Header:   header,
		Body:     string(body),
	}, nil
}

// headerEnvelope mirrors the known header keys; everything else is captured
// inline. Language stays untyped so a mistyped value degrades later instead
// of failing the YAML decode.
type headerEnvelope struct {
	Title      string         `yaml:"title"`
	Slug       string         `yaml:"slug"`
	Status     string         `yaml:"status"`
	Date       string         `yaml:"date"`
	Categories []string       `yaml:"categories"`
	Tags       []string       `yaml:"tags"`
	Language   any            `yaml:"language"`
	Hashtag    string         `yaml:"hashtag"`
	Custom     map[string]any `yaml:",inline"`
}

func envelopeToHeader(env headerEnvelope) interfaces.Header {
	status := strings.TrimSpace(env.Status)
	if status == "" {
		status = "draft"
	}

	return interfaces.Header{
		Title:      env.Title,
		Slug:       env.Slug,
		Status:     status,
		Date:       env.Date,
		Categories: append([]string(nil), env.Categories...),
		Tags:       append([]string(nil), env.Tags...),
		Language:   env.Language,
		Hashtag:    env.Hashtag,
		Custom:     cloneMap(env.Custom),
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}

// IsMissingTitle reports whether err stems from a title-less header.
func IsMissingTitle(err error) bool {
	return errors.Is(err, ErrMissingTitle)
}

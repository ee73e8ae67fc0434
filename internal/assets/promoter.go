package assets

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/darktribe/wordpress-post/internal/logging"
	"github.com/darktribe/wordpress-post/internal/wordpress"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

// imageRef matches inline image references: ![alt](path). Group 1 is the alt
// text, group 2 the path.
var imageRef = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

const fallbackContentType = "application/octet-stream"

// Uploader is the slice of the REST client asset promotion needs. Kept
// narrow so tests can stub it without a server.
type Uploader interface {
	UploadMedia(ctx context.Context, data []byte, filename, contentType string) (wordpress.Media, error)
	SetMediaAltText(ctx context.Context, id int, alt string) error
}

// Promoter uploads locally referenced images and rewrites the body to point
// at the hosted copies. Every image is best-effort: a failed upload leaves
// the original reference untouched and the publish continues.
type Promoter struct {
	uploader Uploader
	logger   interfaces.Logger
}

// NewPromoter builds a promoter around an uploader.
func NewPromoter(uploader Uploader, logger interfaces.Logger) *Promoter {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Promoter{uploader: uploader, logger: logger}
}

// span records where a path sits inside the body and what replaces it.
type span struct {
	start, end  int
	replacement string
}

// Promote scans the body once, uploads every resolvable local image, and
// rewrites the matched path spans back-to-front. Rewriting by recorded
// offsets rather than literal text keeps duplicate references independent:
// each occurrence is replaced exactly once at its own position.
func (p *Promoter) Promote(ctx context.Context, body, baseDir string) (string, []string) {
	matches := imageRef.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return body, nil
	}

	var spans []span
	var warnings []string

	for _, match := range matches {
		altStart, altEnd := match[2], match[3]
		pathStart, pathEnd := match[4], match[5]

		ref := strings.TrimSpace(body[pathStart:pathEnd])
		if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
			continue
		}

		alt := body[altStart:altEnd]
		url, err := p.upload(ctx, ref, alt, baseDir)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("image %q: %v", ref, err))
			p.logger.Warn("assets.upload_failed", "path", ref, "error", err)
			continue
		}
		spans = append(spans, span{start: pathStart, end: pathEnd, replacement: url})
	}

	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		body = body[:s.start] + s.replacement + body[s.end:]
	}
	return body, warnings
}

// upload reads one local file and pushes it to the media endpoint, returning
// the hosted URL. Alt text is attached afterwards on a best-effort basis.
func (p *Promoter) upload(ctx context.Context, ref, alt, baseDir string) (string, error) {
	localPath := ref
	if !filepath.IsAbs(localPath) {
		localPath = filepath.Join(baseDir, ref)
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = fallbackContentType
	}

	media, err := p.uploader.UploadMedia(ctx, data, sanitizeFilename(filepath.Base(localPath)), contentType)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	p.logger.Info("assets.uploaded", "path", ref, "media_id", media.ID, "url", media.SourceURL)

	if trimmed := strings.TrimSpace(alt); trimmed != "" {
		if err := p.uploader.SetMediaAltText(ctx, media.ID, trimmed); err != nil {
			// The asset is already hosted; losing the alt text is not worth
			// failing the reference over.
			p.logger.Warn("assets.alt_text_failed", "media_id", media.ID, "error", err)
		}
	}
	return media.SourceURL, nil
}

// sanitizeFilename normalises the name part of an uploaded file so the CMS
// derives a clean permalink from it. The extension is preserved as-is.
func sanitizeFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	normalized, err := slug.Normalize(base)
	if err != nil || normalized == "" {
		return name
	}
	return normalized + ext
}

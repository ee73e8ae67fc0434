package wordpress

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Media is the uploaded asset as the CMS reports it.
type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

// UploadMedia posts raw file bytes to the media endpoint. The file name
// travels in a Content-Disposition attachment header so the CMS can derive
// the asset's permalink from it.
func (c *Client) UploadMedia(ctx context.Context, data []byte, filename, contentType string) (Media, error) {
	url, err := c.buildURL(routeMedia, nil, nil)
	if err != nil {
		return Media{}, err
	}

	headers := http.Header{}
	headers.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	resp, err := c.do(ctx, http.MethodPost, url, contentType, bytes.NewReader(data), headers)
	if err != nil {
		return Media{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, url); err != nil {
		return Media{}, err
	}

	var media Media
	if err := decodeJSON(resp, &media, url); err != nil {
		return Media{}, err
	}
	return media, nil
}

// SetMediaAltText patches the alt text on an uploaded asset. The value is
// trimmed; callers should skip the call entirely for blank alt text.
func (c *Client) SetMediaAltText(ctx context.Context, id int, alt string) error {
	url, err := c.buildURL(routeMediaItem, map[string]any{"id": id}, nil)
	if err != nil {
		return err
	}
	body := map[string]string{"alt_text": strings.TrimSpace(alt)}
	return c.doJSON(ctx, http.MethodPatch, url, body, nil)
}

package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thenoetrevino/ugcctl/internal/export"
)

// Export requests an export file. The caller must close the returned body.
// Hours are passed through; the backend rejects unsupported windows with 400.
func (c *Client) Export(ctx context.Context, projectID int, format export.Format, hours int) (io.ReadCloser, error) {
	path := "/export/" + strconv.Itoa(projectID) + "/" + string(format)
	q := url.Values{"aggregate_hours": []string{strconv.Itoa(hours)}}

	resp, cancel, err := c.send(ctx, http.MethodGet, c.endpoint(path, q))
	if err != nil {
		return nil, err
	}
	return &cancelBody{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelBody releases the request context once the body is closed
type cancelBody struct {
	io.ReadCloser
	cancel func()
}

func (b *cancelBody) Close() error {
	defer b.cancel()
	return b.ReadCloser.Close()
}

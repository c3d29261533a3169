package admin

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/pkg/errors"
)

// ProgressFunc receives the upload progress as a whole percentage.
type ProgressFunc func(percent int)

// Upload posts a multipart form with the file under "file" and the given
// extra fields. Cancelling ctx aborts the upload with "Upload cancelled".
func (c *Client) Upload(ctx context.Context, path, filename string, file io.Reader, fields map[string]string, onProgress ProgressFunc) (*Envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.Wrap(err, "error creating form file")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.Wrap(err, "error reading upload")
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return nil, errors.Wrapf(err, "error writing field %s", k)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, "error closing multipart body")
	}

	total := int64(buf.Len())
	body := &progressReader{r: &buf, total: total, onProgress: onProgress, last: -1}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", mw.FormDataContentType())

	env, err := c.send(req)
	if err != nil && ctx.Err() != nil {
		return nil, &APIError{Message: values.UploadCancelled, Status: 0, cause: ctx.Err()}
	}
	return env, err
}

type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	last       int
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.onProgress != nil && p.total > 0 {
		percent := int(p.read * 100 / p.total)
		if percent != p.last {
			p.last = percent
			p.onProgress(percent)
		}
	}
	return n, err
}

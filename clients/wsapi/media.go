package wsapi

import (
	"context"
	"net/url"
	"regexp"

	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/flowx"
)

const defaultMediaType = "application/octet-stream"

var dispositionFilename = regexp.MustCompile(`filename="([^"]+)"`)

// DownloadMedia fetches a media file by id. The file name comes from
// Content-Disposition and falls back to media_<id>.
func (c *Client) DownloadMedia(ctx context.Context, mediaID string) (*flowx.Binary, error) {
	dl, err := c.Download(ctx, "/media/download", url.Values{"id": {mediaID}})
	if err != nil {
		return nil, Registry.NewWithMessage(ErrMediaDownloadFailed, errx.MessageOf(err)).
			WithCause(err).
			WithDetail("mediaId", mediaID)
	}

	fileName := "media_" + mediaID
	if m := dispositionFilename.FindStringSubmatch(dl.Headers.Get("Content-Disposition")); m != nil {
		fileName = m[1]
	}
	mimeType := dl.Headers.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultMediaType
	}

	return flowx.NewBinary(dl.Data, fileName, mimeType), nil
}

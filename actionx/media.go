package actionx

import (
	"context"
	"net/http"

	"github.com/Abraxas-365/wsapix/flowx"
)

func mediaOperations() []Operation {
	return []Operation{
		{
			Name:    "downloadMedia",
			Summary: "Download a media file by id",
			Method:  http.MethodGet,
			Path:    "/media/download?id={mediaId}",
			Params:  []Param{required("mediaId", TypeString, "Media identifier from a message event")},
			Run: func(ctx context.Context, gw Gateway, p flowx.Params) ([]flowx.Record, error) {
				mediaID, err := p.String("mediaId")
				if err != nil {
					return nil, err
				}
				bin, err := gw.DownloadMedia(ctx, mediaID)
				if err != nil {
					return nil, err
				}
				return []flowx.Record{{
					JSON: map[string]any{
						"success":     true,
						"mediaId":     mediaID,
						"fileName":    bin.FileName,
						"contentType": bin.MimeType,
						"fileSize":    bin.FileSize,
						"message":     "Media downloaded successfully",
					},
					Binary: bin,
				}}, nil
			},
		},
	}
}

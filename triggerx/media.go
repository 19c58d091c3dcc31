package triggerx

import (
	"context"
	"time"

	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/flowx"
)

// enrich downloads the media of a message event and stamps the outcome on
// the shaped media object. A failed download is recorded, never returned.
func (t *Translator) enrich(ctx context.Context, event Event, record *flowx.Record) {
	if event.EventType != EventMessage {
		return
	}
	if kind, _ := event.EventData["type"].(string); kind != "media" {
		return
	}
	media, _ := event.EventData["media"].(map[string]any)
	mediaID, _ := media["id"].(string)
	if mediaID == "" {
		return
	}

	target := t.shapedMedia(record.JSON)
	bin, err := t.media.DownloadMedia(ctx, mediaID)
	if err != nil {
		t.logger.With("mediaId", mediaID).Warn("media download failed: %s", errx.MessageOf(err))
		if target != nil {
			target["downloadError"] = "Failed to download media: " + errx.MessageOf(err)
		}
		return
	}

	record.Binary = bin
	if target != nil {
		target["downloadedAt"] = t.now().UTC().Format(time.RFC3339)
		target["autoDownloaded"] = true
	}
}

// shapedMedia finds the media object in the output, flattened or nested
func (t *Translator) shapedMedia(out map[string]any) map[string]any {
	if t.opts.ParseEventData {
		media, _ := out["media"].(map[string]any)
		return media
	}
	data, _ := out["eventData"].(map[string]any)
	media, _ := data["media"].(map[string]any)
	return media
}

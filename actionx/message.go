package actionx

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

var (
	toParam         = required("to", TypeString, "Recipient chat id, e.g. 1234567890@s.whatsapp.net")
	messageIDParam  = required("messageId", TypeString, "Message identifier")
	senderIDParam   = required("senderId", TypeString, "Sender of the message")
	advancedParam   = optional("advancedOptions", TypeObject, "mentions (comma separated), replyTo, isForwarded, viewOnce (image and video only)", nil)
	inputTypeParam  = enum("mediaInputType", "url", "Where the media comes from", "url", "base64")
	mediaURLParam   = optional("mediaUrl", TypeString, "Media URL when mediaInputType is url", nil)
	mediaB64Param   = optional("mediaBase64", TypeString, "Base64 media when mediaInputType is base64", nil)
	captionParam    = optional("caption", TypeString, "Caption", nil)
	mimeTypeParam   = func(def string) Param { return optional("mimeType", TypeString, "MIME type", def) }
	receiptTypes    = []string{"delivered", "sender", "read", "played"}
)

// advancedOptions copies the optional send settings into body
func advancedOptions(p flowx.Params, body map[string]any, allowViewOnce bool) error {
	opts, err := p.Object("advancedOptions")
	if err != nil {
		return err
	}
	adv := flowx.MapParams(opts)

	if adv.StringOr("mentions", "") != "" {
		mentions, err := adv.StringList("mentions")
		if err != nil {
			return flowx.InvalidParameter("advancedOptions.mentions", "expected a comma separated list")
		}
		body["mentions"] = mentions
	}
	if replyTo := adv.StringOr("replyTo", ""); replyTo != "" {
		body["replyTo"] = replyTo
	}
	if adv.BoolOr("isForwarded", false) {
		body["isForwarded"] = true
	}
	if allowViewOnce && adv.BoolOr("viewOnce", false) {
		body["viewOnce"] = true
	}
	return nil
}

// mediaSource sets <kind>URL or <kind>Base64 depending on mediaInputType
func mediaSource(p flowx.Params, body map[string]any, kind string) error {
	inputType, err := oneOf(p, "mediaInputType", "url", "url", "base64")
	if err != nil {
		return err
	}
	if inputType == "base64" {
		data, err := p.String("mediaBase64")
		if err != nil {
			return err
		}
		body[kind+"Base64"] = data
		return nil
	}
	link, err := p.String("mediaUrl")
	if err != nil {
		return err
	}
	body[kind+"URL"] = link
	return nil
}

// send builds a POST /messages/<kind> whose body starts as {to} and is
// filled by fill. The gateway response passes through.
func send(kind, summary string, viewOnce bool, params []Param, fill func(p flowx.Params, body map[string]any) error) Operation {
	path := "/messages/" + kind
	return Operation{
		Name:    "send" + strings.ToUpper(kind[:1]) + kind[1:],
		Summary: summary,
		Method:  http.MethodPost,
		Path:    path,
		Params:  append(append([]Param{toParam}, params...), advancedParam),
		Build: func(p flowx.Params) (Call, error) {
			to, err := p.String("to")
			if err != nil {
				return Call{}, err
			}
			body := map[string]any{"to": to}
			if err := fill(p, body); err != nil {
				return Call{}, err
			}
			if err := advancedOptions(p, body, viewOnce); err != nil {
				return Call{}, err
			}
			return Call{Request: wsapi.Request{Method: http.MethodPost, Path: path, Body: body}}, nil
		},
	}
}

func sendMedia(kind, summary, defaultMime string, viewOnce, captioned bool) Operation {
	params := []Param{inputTypeParam, mediaURLParam, mediaB64Param, mimeTypeParam(defaultMime)}
	if captioned {
		params = append(params, captionParam)
	}
	return send(kind, summary, viewOnce, params, func(p flowx.Params, body map[string]any) error {
		body["mimeType"] = p.StringOr("mimeType", "")
		if body["mimeType"] == "" {
			body["mimeType"] = defaultMime
		}
		if err := mediaSource(p, body, kind); err != nil {
			return err
		}
		if caption := p.StringOr("caption", ""); captioned && caption != "" {
			body["caption"] = caption
		}
		return nil
	})
}

// onMessage builds a PUT /messages/{messageId}/<suffix>
func onMessage(name, suffix, summary string, params []Param, build func(p flowx.Params, to, messageID string) (body, echo map[string]any, err error)) Operation {
	return Operation{
		Name:    name,
		Summary: summary,
		Method:  http.MethodPut,
		Path:    "/messages/{messageId}/" + suffix,
		Params:  append([]Param{toParam, messageIDParam}, params...),
		Build: func(p flowx.Params) (Call, error) {
			to, err := p.String("to")
			if err != nil {
				return Call{}, err
			}
			messageID, err := p.String("messageId")
			if err != nil {
				return Call{}, err
			}
			body, echo, err := build(p, to, messageID)
			if err != nil {
				return Call{}, err
			}
			return Call{
				Request: wsapi.Request{Method: http.MethodPut, Path: "/messages/" + escape(messageID) + "/" + suffix, Body: body},
				Echo:    echo,
			}, nil
		},
	}
}

func messageOperations() []Operation {
	return []Operation{
		send("text", "Send a text message", false,
			[]Param{required("message", TypeString, "Message text")},
			func(p flowx.Params, body map[string]any) error {
				text, err := p.String("message")
				body["text"] = text
				return err
			}),
		send("link", "Send a link with preview", false,
			[]Param{
				required("url", TypeString, "Link URL"),
				required("message", TypeString, "Message text"),
				optional("linkTitle", TypeString, "Preview title", nil),
				optional("linkDescription", TypeString, "Preview description", nil),
				optional("jpegThumbnail", TypeString, "Base64 JPEG preview thumbnail", nil),
			},
			func(p flowx.Params, body map[string]any) error {
				link, err := p.String("url")
				if err != nil {
					return err
				}
				text, err := p.String("message")
				if err != nil {
					return err
				}
				body["url"] = link
				body["text"] = text
				for param, field := range map[string]string{"linkTitle": "title", "linkDescription": "description", "jpegThumbnail": "jpegThumbnail"} {
					if v := p.StringOr(param, ""); v != "" {
						body[field] = v
					}
				}
				return nil
			}),
		sendMedia("image", "Send an image", "image/jpeg", true, true),
		sendMedia("video", "Send a video", "video/mp4", true, true),
		sendMedia("audio", "Send an audio file", "audio/mpeg", false, false),
		send("voice", "Send a voice note", false,
			[]Param{inputTypeParam, mediaURLParam, mediaB64Param},
			func(p flowx.Params, body map[string]any) error {
				return mediaSource(p, body, "voice")
			}),
		send("document", "Send a document", false,
			[]Param{inputTypeParam, mediaURLParam, mediaB64Param, required("fileName", TypeString, "File name shown to the recipient"), captionParam},
			func(p flowx.Params, body map[string]any) error {
				fileName, err := p.String("fileName")
				if err != nil {
					return err
				}
				body["fileName"] = fileName
				if err := mediaSource(p, body, "document"); err != nil {
					return err
				}
				if caption := p.StringOr("caption", ""); caption != "" {
					body["caption"] = caption
				}
				return nil
			}),
		send("contact", "Send a contact card", false,
			[]Param{required("contactName", TypeString, "Contact name"), required("contactPhone", TypeString, "Contact phone number")},
			func(p flowx.Params, body map[string]any) error {
				name, err := p.String("contactName")
				if err != nil {
					return err
				}
				phone, err := p.String("contactPhone")
				if err != nil {
					return err
				}
				body["displayName"] = name
				body["vCard"] = vCard(name, phone)
				return nil
			}),
		send("location", "Send a location", false,
			[]Param{
				required("latitude", TypeNumber, "Latitude"),
				required("longitude", TypeNumber, "Longitude"),
				optional("address", TypeString, "Address, also used as the place name", nil),
				optional("locationUrl", TypeString, "URL for the place", nil),
			},
			func(p flowx.Params, body map[string]any) error {
				lat, err := p.Float("latitude")
				if err != nil {
					return err
				}
				lng, err := p.Float("longitude")
				if err != nil {
					return err
				}
				body["latitude"] = lat
				body["longitude"] = lng
				if address := p.StringOr("address", ""); address != "" {
					body["name"] = address
					body["address"] = address
				}
				if link := p.StringOr("locationUrl", ""); link != "" {
					body["url"] = link
				}
				return nil
			}),
		send("sticker", "Send a sticker", false,
			[]Param{inputTypeParam, mediaURLParam, mediaB64Param, mimeTypeParam("image/webp"), optional("isAnimated", TypeBoolean, "Animated sticker", false)},
			func(p flowx.Params, body map[string]any) error {
				mimeType := p.StringOr("mimeType", "")
				if mimeType == "" {
					mimeType = "image/webp"
				}
				body["mimeType"] = mimeType
				body["isAnimated"] = p.BoolOr("isAnimated", false)
				return mediaSource(p, body, "sticker")
			}),
		{
			Name:    "sendReaction",
			Summary: "React to a message",
			Method:  http.MethodPost,
			Path:    "/messages/{messageId}/reaction",
			Params:  []Param{toParam, messageIDParam, senderIDParam, required("emoji", TypeString, "Reaction emoji, empty removes it"), advancedParam},
			Build: func(p flowx.Params) (Call, error) {
				to, err := p.String("to")
				if err != nil {
					return Call{}, err
				}
				messageID, err := id(p, "messageId")
				if err != nil {
					return Call{}, err
				}
				sender, err := p.String("senderId")
				if err != nil {
					return Call{}, err
				}
				body := map[string]any{"to": to, "senderId": sender, "reaction": p.StringOr("emoji", "")}
				opts, err := p.Object("advancedOptions")
				if err != nil {
					return Call{}, err
				}
				if exp, found := opts["ephemeralExpiration"]; found && exp != nil && exp != "" {
					body["ephemeralExpiration"] = exp
				}
				return Call{Request: wsapi.Request{Method: http.MethodPost, Path: "/messages/" + messageID + "/reaction", Body: body}}, nil
			},
		},
		{
			Name:    "editMessage",
			Summary: "Edit a sent text message",
			Method:  http.MethodPut,
			Path:    "/messages/{messageId}/text",
			Params:  []Param{toParam, messageIDParam, required("newMessage", TypeString, "Replacement text")},
			Build: func(p flowx.Params) (Call, error) {
				to, err := p.String("to")
				if err != nil {
					return Call{}, err
				}
				messageID, err := id(p, "messageId")
				if err != nil {
					return Call{}, err
				}
				text, err := p.String("newMessage")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodPut, Path: "/messages/" + messageID + "/text", Body: map[string]any{"to": to, "text": text}}}, nil
			},
		},
		onMessage("deleteMessage", "delete", "Delete a message for everyone", []Param{senderIDParam},
			func(p flowx.Params, to, messageID string) (map[string]any, map[string]any, error) {
				sender, err := p.String("senderId")
				if err != nil {
					return nil, nil, err
				}
				return map[string]any{"chatId": to, "senderId": sender}, ok("messageId", messageID), nil
			}),
		onMessage("deleteForMe", "delete/forme", "Delete a message for this account only",
			[]Param{senderIDParam, optional("ifFromMe", TypeBoolean, "The message was sent by this account", false), required("deleteTimestamp", TypeString, "Timestamp of the message")},
			func(p flowx.Params, to, messageID string) (map[string]any, map[string]any, error) {
				sender, err := p.String("senderId")
				if err != nil {
					return nil, nil, err
				}
				ts := p.StringOr("deleteTimestamp", "")
				if ts == "" {
					missing := flowx.MissingParameter("deleteTimestamp")
					missing.Message = "Deletion timestamp is required to delete message for me"
					return nil, nil, missing
				}
				body := map[string]any{"chatId": to, "senderId": sender, "ifFromMe": p.BoolOr("ifFromMe", false), "Time": ts}
				return body, ok("messageId", messageID), nil
			}),
		onMessage("starMessage", "star", "Star a message", []Param{senderIDParam},
			func(p flowx.Params, to, messageID string) (map[string]any, map[string]any, error) {
				sender, err := p.String("senderId")
				if err != nil {
					return nil, nil, err
				}
				return map[string]any{"chatId": to, "senderId": sender}, ok("messageId", messageID), nil
			}),
		onMessage("markAsRead", "read", "Send a read receipt",
			[]Param{senderIDParam, enum("receiptType", "", "Receipt type", receiptTypes...)},
			func(p flowx.Params, to, messageID string) (map[string]any, map[string]any, error) {
				sender, err := p.String("senderId")
				if err != nil {
					return nil, nil, err
				}
				receipt, err := oneOf(p, "receiptType", "", receiptTypes...)
				if err != nil {
					return nil, nil, err
				}
				body := map[string]any{"chatId": to, "senderId": sender, "receiptType": receipt}
				return body, ok("chatId", to, "messageId", messageID, "receiptType", receipt), nil
			}),
	}
}

func vCard(name, phone string) string {
	return fmt.Sprintf("BEGIN:VCARD\nVERSION:3.0\nFN:%s\nTEL:%s\nEND:VCARD", name, phone)
}

package actionx

import (
	"net/http"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

var chatIDParam = required("chatId", TypeString, "Chat identifier, e.g. 1234567890@s.whatsapp.net or 120363123456789@g.us")

// chatPut builds a PUT /chats/{chatId}/<suffix> whose body and echo come from fn
func chatPut(suffix string, fn func(p flowx.Params) (body, echo map[string]any, err error)) func(flowx.Params) (Call, error) {
	return func(p flowx.Params) (Call, error) {
		chatID, err := id(p, "chatId")
		if err != nil {
			return Call{}, err
		}
		body, echo, err := fn(p)
		if err != nil {
			return Call{}, err
		}
		echo["chatId"] = p.StringOr("chatId", "")
		return Call{
			Request: wsapi.Request{Method: http.MethodPut, Path: "/chats/" + chatID + "/" + suffix, Body: body},
			Echo:    echo,
		}, nil
	}
}

func chatOperations() []Operation {
	return []Operation{
		{
			Name:      "getChats",
			Summary:   "List chats",
			Method:    http.MethodGet,
			Path:      "/chats",
			Params:    cacheParams,
			Cacheable: true,
			Build: func(p flowx.Params) (Call, error) {
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/chats"}}, nil
			},
		},
		{
			Name:      "getChat",
			Summary:   "Get a chat",
			Method:    http.MethodGet,
			Path:      "/chats/{chatId}",
			Params:    append([]Param{chatIDParam}, cacheParams...),
			Cacheable: true,
			CacheKey:  "chatId",
			Build: func(p flowx.Params) (Call, error) {
				chatID, err := id(p, "chatId")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/chats/" + chatID}}, nil
			},
		},
		{
			Name:    "deleteChat",
			Summary: "Delete a chat",
			Method:  http.MethodDelete,
			Path:    "/chats/{chatId}",
			Params:  []Param{chatIDParam},
			Build: func(p flowx.Params) (Call, error) {
				chatID, err := id(p, "chatId")
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodDelete, Path: "/chats/" + chatID},
					Echo:    ok("chatId", p.StringOr("chatId", "")),
				}, nil
			},
		},
		{
			Name:    "markChatAsRead",
			Summary: "Mark a chat as read or unread",
			Method:  http.MethodPut,
			Path:    "/chats/{chatId}/read",
			Params:  []Param{chatIDParam, optional("read", TypeBoolean, "Read state", true)},
			Build: chatPut("read", func(p flowx.Params) (map[string]any, map[string]any, error) {
				read := p.BoolOr("read", true)
				return map[string]any{"read": read}, ok("read", read), nil
			}),
		},
		{
			Name:    "setPresence",
			Summary: "Set the presence shown in a chat",
			Method:  http.MethodPut,
			Path:    "/chats/{chatId}/presence",
			Params:  []Param{chatIDParam, enum("presence", "", "Presence state", "typing", "recording", "paused")},
			Build: chatPut("presence", func(p flowx.Params) (map[string]any, map[string]any, error) {
				presence, err := oneOf(p, "presence", "", "typing", "recording", "paused")
				if err != nil {
					return nil, nil, err
				}
				return map[string]any{"state": presence}, ok("presence", presence), nil
			}),
		},
		{
			Name:    "muteChat",
			Summary: "Mute or unmute a chat",
			Method:  http.MethodPut,
			Path:    "/chats/{chatId}/mute",
			Params:  []Param{chatIDParam, enum("muteDuration", "", "How long to mute", "unmute", "8h", "1w", "always")},
			Build: chatPut("mute", func(p flowx.Params) (map[string]any, map[string]any, error) {
				duration, err := oneOf(p, "muteDuration", "", "unmute", "8h", "1w", "always")
				if err != nil {
					return nil, nil, err
				}
				return map[string]any{"duration": duration}, ok("muteDuration", duration), nil
			}),
		},
		{
			Name:    "pinChat",
			Summary: "Pin or unpin a chat",
			Method:  http.MethodPut,
			Path:    "/chats/{chatId}/pin",
			Params:  []Param{chatIDParam, optional("pinned", TypeBoolean, "Pinned state", false)},
			Build: chatPut("pin", func(p flowx.Params) (map[string]any, map[string]any, error) {
				pinned := p.BoolOr("pinned", false)
				return map[string]any{"pinned": pinned}, ok("pinned", pinned), nil
			}),
		},
		{
			Name:    "archiveChat",
			Summary: "Archive or unarchive a chat",
			Method:  http.MethodPut,
			Path:    "/chats/{chatId}/archive",
			Params:  []Param{chatIDParam, optional("archived", TypeBoolean, "Archived state", false)},
			Build: chatPut("archive", func(p flowx.Params) (map[string]any, map[string]any, error) {
				archived := p.BoolOr("archived", false)
				return map[string]any{"archived": archived}, ok("archived", archived), nil
			}),
		},
		{
			Name:    "setEphemeral",
			Summary: "Set disappearing messages for a chat",
			Method:  http.MethodPut,
			Path:    "/chats/{chatId}/ephemeral",
			Params:  []Param{chatIDParam, enum("ephemeralExpiration", "", "Message lifetime", "off", "24h", "7d", "90d")},
			Build: chatPut("ephemeral", func(p flowx.Params) (map[string]any, map[string]any, error) {
				expiration, err := oneOf(p, "ephemeralExpiration", "", "off", "24h", "7d", "90d")
				if err != nil {
					return nil, nil, err
				}
				return map[string]any{"expiration": expiration}, ok("ephemeralExpiration", expiration), nil
			}),
		},
	}
}

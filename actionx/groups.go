package actionx

import (
	"net/http"
	"net/url"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

var (
	groupIDParam      = required("groupId", TypeString, "Group identifier, e.g. 120363123456789@g.us")
	participantsParam = required("participants", TypeList, "Phone numbers with country code, as a list or comma separated")
	inviteCodeParam   = required("inviteCode", TypeString, "Invite code from the group link")
)

func groupGet(path, summary string, cacheable bool) Operation {
	op := Operation{
		Summary: summary,
		Method:  http.MethodGet,
		Path:    "/groups/{groupId}" + path,
		Params:  []Param{groupIDParam},
		Build: func(p flowx.Params) (Call, error) {
			groupID, err := id(p, "groupId")
			if err != nil {
				return Call{}, err
			}
			return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/groups/" + groupID + path}}, nil
		},
	}
	if cacheable {
		op.Cacheable = true
		op.CacheKey = "groupId"
		op.Params = append(op.Params, cacheParams...)
	}
	return op
}

// groupToggle builds a PUT /groups/{groupId}/<suffix> with a single boolean
func groupToggle(name, suffix, field, summary string) Operation {
	return Operation{
		Name:    name,
		Summary: summary,
		Method:  http.MethodPut,
		Path:    "/groups/{groupId}/" + suffix,
		Params:  []Param{groupIDParam, optional(field, TypeBoolean, summary, false)},
		Build: func(p flowx.Params) (Call, error) {
			groupID, err := id(p, "groupId")
			if err != nil {
				return Call{}, err
			}
			value := p.BoolOr(field, false)
			return Call{
				Request: wsapi.Request{Method: http.MethodPut, Path: "/groups/" + groupID + "/" + suffix, Body: map[string]any{field: value}},
				Echo:    ok("groupId", p.StringOr("groupId", ""), field, value),
			}, nil
		},
	}
}

// groupParticipants builds a PUT that applies action to a participant list
func groupParticipants(name, suffix, actionParam, summary string, actions ...string) Operation {
	return Operation{
		Name:    name,
		Summary: summary,
		Method:  http.MethodPut,
		Path:    "/groups/{groupId}/" + suffix,
		Params:  []Param{groupIDParam, enum(actionParam, actions[0], "Action to apply", actions...), participantsParam},
		Build: func(p flowx.Params) (Call, error) {
			groupID, err := id(p, "groupId")
			if err != nil {
				return Call{}, err
			}
			action, err := oneOf(p, actionParam, actions[0], actions...)
			if err != nil {
				return Call{}, err
			}
			participants, err := phoneList(p, "participants")
			if err != nil {
				return Call{}, err
			}
			return Call{
				Request: wsapi.Request{Method: http.MethodPut, Path: "/groups/" + groupID + "/" + suffix, Body: map[string]any{"action": action, "participants": participants}},
				Echo:    ok("groupId", p.StringOr("groupId", ""), "action", action, "participants", participants),
			}, nil
		},
	}
}

func named(name string, op Operation) Operation {
	op.Name = name
	return op
}

func groupsOperations() []Operation {
	return []Operation{
		{
			Name:      "getAll",
			Summary:   "List groups",
			Method:    http.MethodGet,
			Path:      "/groups",
			Params:    cacheParams,
			Cacheable: true,
			Build: func(p flowx.Params) (Call, error) {
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/groups"}}, nil
			},
		},
		named("get", groupGet("", "Get a group", true)),
		{
			Name:    "create",
			Summary: "Create a group",
			Method:  http.MethodPost,
			Path:    "/groups",
			Params:  []Param{required("groupName", TypeString, "Group name"), participantsParam},
			Build: func(p flowx.Params) (Call, error) {
				name, err := p.String("groupName")
				if err != nil {
					return Call{}, err
				}
				participants, err := phoneList(p, "participants")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodPost, Path: "/groups", Body: map[string]any{"name": name, "participants": participants}}}, nil
			},
		},
		{
			Name:    "leave",
			Summary: "Leave a group",
			Method:  http.MethodDelete,
			Path:    "/groups/{groupId}",
			Params:  []Param{groupIDParam},
			Build: func(p flowx.Params) (Call, error) {
				groupID, err := id(p, "groupId")
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodDelete, Path: "/groups/" + groupID},
					Echo:    ok("groupId", p.StringOr("groupId", "")),
				}, nil
			},
		},
		{
			Name:    "setDescription",
			Summary: "Set the group description",
			Method:  http.MethodPut,
			Path:    "/groups/{groupId}/description",
			Params:  []Param{groupIDParam, required("description", TypeString, "Group description")},
			Build: func(p flowx.Params) (Call, error) {
				groupID, err := id(p, "groupId")
				if err != nil {
					return Call{}, err
				}
				description, err := p.String("description")
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodPut, Path: "/groups/" + groupID + "/description", Body: map[string]any{"description": description}},
					Echo:    ok("groupId", p.StringOr("groupId", ""), "description", description),
				}, nil
			},
		},
		{
			Name:    "setName",
			Summary: "Rename a group",
			Method:  http.MethodPut,
			Path:    "/groups/{groupId}/name",
			Params:  []Param{groupIDParam, required("groupName", TypeString, "New group name")},
			Build: func(p flowx.Params) (Call, error) {
				groupID, err := id(p, "groupId")
				if err != nil {
					return Call{}, err
				}
				name, err := p.String("groupName")
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodPut, Path: "/groups/" + groupID + "/name", Body: map[string]any{"name": name}},
					Echo:    ok("groupId", p.StringOr("groupId", ""), "name", name),
				}, nil
			},
		},
		{
			Name:    "setPicture",
			Summary: "Set the group picture",
			Method:  http.MethodPost,
			Path:    "/groups/{groupId}/picture",
			Params:  []Param{groupIDParam, required("pictureBase64", TypeString, "Base64 encoded image")},
			Build: func(p flowx.Params) (Call, error) {
				groupID, err := id(p, "groupId")
				if err != nil {
					return Call{}, err
				}
				picture, err := p.String("pictureBase64")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodPost, Path: "/groups/" + groupID + "/picture", Body: map[string]any{"pictureBase64": picture}}}, nil
			},
		},
		groupToggle("setAnnounce", "announce", "announce", "Only admins can send messages"),
		groupToggle("setLocked", "locked", "locked", "Only admins can edit group info"),
		groupToggle("setJoinApproval", "join-approval", "joinApproval", "Require admin approval to join"),
		groupToggle("setMemberAddMode", "member-add-mode", "onlyAdmins", "Only admins can add members"),
		{
			Name:    "getInviteLink",
			Summary: "Get the group invite link",
			Method:  http.MethodGet,
			Path:    "/groups/{groupId}/invite-link",
			Params:  []Param{groupIDParam, optional("resetLink", TypeBoolean, "Revoke the current link and create a new one", false)},
			Build: func(p flowx.Params) (Call, error) {
				groupID, err := id(p, "groupId")
				if err != nil {
					return Call{}, err
				}
				var query url.Values
				if p.BoolOr("resetLink", false) {
					query = url.Values{"reset": {"true"}}
				}
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/groups/" + groupID + "/invite-link", Query: query}}, nil
			},
		},
		named("getInviteRequests", groupGet("/requests", "List pending join requests", true)),
		groupParticipants("handleJoinRequests", "requests", "requestAction", "Approve or reject join requests", "approve", "reject"),
		groupParticipants("updateParticipants", "participants", "participantAction", "Add, remove, promote or demote participants", "add", "remove", "promote", "demote"),
		{
			Name:      "getInviteInfo",
			Summary:   "Get group information from an invite code",
			Method:    http.MethodGet,
			Path:      "/group-invites/{inviteCode}",
			Params:    append([]Param{inviteCodeParam}, cacheParams...),
			Cacheable: true,
			CacheKey:  "inviteCode",
			Build: func(p flowx.Params) (Call, error) {
				code, err := id(p, "inviteCode")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/group-invites/" + code}}, nil
			},
		},
		{
			Name:    "joinWithLink",
			Summary: "Join a group with an invite code",
			Method:  http.MethodPost,
			Path:    "/group-invites/{inviteCode}/join",
			Params:  []Param{inviteCodeParam},
			Build: func(p flowx.Params) (Call, error) {
				code, err := id(p, "inviteCode")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodPost, Path: "/group-invites/" + code + "/join"}}, nil
			},
		},
		{
			Name:    "joinWithInvite",
			Summary: "Join a group with a private invite",
			Method:  http.MethodPost,
			Path:    "/groups/{groupId}/invite/join",
			Params: []Param{
				groupIDParam,
				inviteCodeParam,
				required("inviterId", TypeString, "Identifier of the user who sent the invite"),
				optional("expiration", TypeNumber, "Invite expiration as a unix timestamp", 0),
			},
			Build: func(p flowx.Params) (Call, error) {
				groupID, err := id(p, "groupId")
				if err != nil {
					return Call{}, err
				}
				code, err := p.String("inviteCode")
				if err != nil {
					return Call{}, err
				}
				inviter, err := p.String("inviterId")
				if err != nil {
					return Call{}, err
				}
				body := map[string]any{"code": code, "inviterId": inviter, "expiration": p.IntOr("expiration", 0)}
				return Call{Request: wsapi.Request{Method: http.MethodPost, Path: "/groups/" + groupID + "/invite/join", Body: body}}, nil
			},
		},
	}
}

package triggerx

import "sort"

// Event groups, as offered when configuring the trigger
const (
	GroupAll     = "all"
	GroupCall    = "call"
	GroupChat    = "chat"
	GroupContact = "contact"
	GroupMessage = "message"
	GroupSession = "session"
	GroupUser    = "user"
)

// EventMessage is the event type that carries media
const EventMessage = "message"

var groupEvents = map[string][]string{
	GroupCall:    {"call_accept", "call_offer", "call_terminate"},
	GroupChat:    {"chat_picture", "chat_presence", "chat_push_name", "chat_setting", "chat_status"},
	GroupContact: {"contact", "group"},
	GroupSession: {"initial_sync_finished", "logged_in", "logged_out", "logged_error"},
	GroupMessage: {"message", "message_delete", "message_history_sync", "message_read", "message_star"},
	GroupUser:    {"user_presence"},
}

var groupDefaults = map[string][]string{
	GroupAll:     {"message"},
	GroupCall:    {"call_offer"},
	GroupChat:    {"chat_setting"},
	GroupContact: {"contact"},
	GroupMessage: {"message"},
	GroupSession: {"logged_in"},
	GroupUser:    {"user_presence"},
}

// Groups lists the event groups
func Groups() []string {
	groups := make([]string, 0, len(groupDefaults))
	for g := range groupDefaults {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// EventTypes lists the event types of a group. "all" lists every type.
func EventTypes(group string) []string {
	if group != GroupAll {
		return append([]string(nil), groupEvents[group]...)
	}
	var all []string
	for _, events := range groupEvents {
		all = append(all, events...)
	}
	sort.Strings(all)
	return all
}

// DefaultEvents is the subscription used when none is configured
func DefaultEvents(group string) []string {
	return append([]string(nil), groupDefaults[group]...)
}

func inGroup(group, eventType string) bool {
	for _, e := range EventTypes(group) {
		if e == eventType {
			return true
		}
	}
	return false
}

package triggerx

import "strings"

const DefaultAuthHeader = "X-Webhook-Auth"

// Auth is the optional shared-secret header check
type Auth struct {
	Enabled     bool   `json:"enabled"`
	HeaderName  string `json:"headerName"`
	HeaderValue string `json:"headerValue" validate:"required_if=Enabled true"`
}

// Options configure the translator
type Options struct {
	Operation         string   `json:"operation" validate:"oneof=all call chat contact message session user"`
	Events            []string `json:"events"`
	AutoDownloadMedia bool     `json:"autoDownloadMedia"`
	ParseEventData    bool     `json:"parseEventData"`
	IncludeRawEvent   bool     `json:"includeRawEvent"`
	Auth              Auth     `json:"auth"`
}

// DefaultOptions subscribes to new messages and flattens event data
func DefaultOptions() Options {
	return Options{
		Operation:      GroupMessage,
		Events:         DefaultEvents(GroupMessage),
		ParseEventData: true,
		Auth:           Auth{HeaderName: DefaultAuthHeader},
	}
}

// withDefaults fills the empty fields
func (o Options) withDefaults() Options {
	if o.Operation == "" {
		o.Operation = GroupMessage
	}
	if len(o.Events) == 0 {
		o.Events = DefaultEvents(o.Operation)
	}
	if strings.TrimSpace(o.Auth.HeaderName) == "" {
		o.Auth.HeaderName = DefaultAuthHeader
	}
	return o
}

// Validate checks that every event belongs to the group. validatex.Struct
// runs it after the tag rules.
func (o Options) Validate() error {
	var foreign []string
	for _, e := range o.Events {
		if !inGroup(o.Operation, e) {
			foreign = append(foreign, e)
		}
	}
	if len(foreign) > 0 {
		return triggerErrors.NewWithMessage(ErrInvalidOptions, "Events not in the "+o.Operation+" group: "+strings.Join(foreign, ", ")).
			WithDetail("operation", o.Operation).
			WithDetail("events", foreign)
	}
	return nil
}

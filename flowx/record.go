package flowx

import (
	"encoding/json"
)

// Binary is a downloaded file attached to a record
type Binary struct {
	Data     []byte `json:"data"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	FileSize int    `json:"fileSize"`
}

// NewBinary fills FileSize from data
func NewBinary(data []byte, fileName, mimeType string) *Binary {
	return &Binary{Data: data, FileName: fileName, MimeType: mimeType, FileSize: len(data)}
}

// Record is one execution output: a JSON object, an optional binary and the
// index of the input item that produced it
type Record struct {
	JSON   map[string]any `json:"json"`
	Binary *Binary        `json:"binary,omitempty"`
	Item   int            `json:"pairedItem"`
}

// NewJSONRecords turns a response into records. An array yields one record
// per element, an object yields one record, anything else is wrapped as
// {"value": v}. nil yields a single empty record.
func NewJSONRecords(value any, item int) []Record {
	if raw, ok := value.(json.RawMessage); ok {
		value = decodeRaw(raw)
	}

	switch v := value.(type) {
	case nil:
		return []Record{{JSON: map[string]any{}, Item: item}}
	case []any:
		out := make([]Record, 0, len(v))
		for _, elem := range v {
			out = append(out, Record{JSON: asObject(elem), Item: item})
		}
		return out
	case []map[string]any:
		out := make([]Record, 0, len(v))
		for _, elem := range v {
			out = append(out, Record{JSON: elem, Item: item})
		}
		return out
	default:
		return []Record{{JSON: asObject(v), Item: item}}
	}
}

func decodeRaw(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func asObject(v any) map[string]any {
	switch val := v.(type) {
	case map[string]any:
		return val
	case nil:
		return map[string]any{"value": nil}
	default:
		return map[string]any{"value": val}
	}
}

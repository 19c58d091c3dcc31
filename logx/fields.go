package logx

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatValue renders a field value on a single line for the text formats
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		if val == "" || strings.ContainsAny(val, " \t\n\"=") {
			return strconv.Quote(val)
		}
		return val
	case error:
		return strconv.Quote(val.Error())
	case time.Time:
		return val.Format(time.RFC3339)
	case time.Duration:
		return val.String()
	case []byte:
		return fmt.Sprintf("[%d bytes]", len(val))
	case fmt.Stringer:
		return strconv.Quote(val.String())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return fmt.Sprint(val)
	}

	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprintf("%v", v)
}

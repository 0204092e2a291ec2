package webhook

import (
	"fmt"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
)

// Timestamp tolerates the formats Lodgify has shipped across API
// versions: RFC 3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05",
// and bare dates. Values without an offset are read as UTC, and every
// value normalizes to UTC.
type Timestamp struct {
	time.Time
}

var _ go_json.Unmarshaler = (*Timestamp)(nil)
var _ go_json.Marshaler = (*Timestamp)(nil)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

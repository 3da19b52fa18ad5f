package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Date is a posting date. It keeps the raw text it was decoded from so that
// values which fail to parse still round-trip; such dates compare as zero.
type Date struct {
	time.Time
	Raw string
}

// ParseDate parses value with the accepted layouts. The returned Date is zero
// (but keeps Raw) when no layout matches.
func ParseDate(value string) Date {
	value = strings.TrimSpace(value)
	d := Date{Raw: value}
	if value == "" {
		return d
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			d.Time = ts
			return d
		}
	}
	return d
}

func (d Date) String() string {
	if d.Raw != "" {
		return d.Raw
	}
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json5.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = ParseDate(raw)
	return nil
}

package coggle

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// wireTime holds a timestamp as the server sent it, either a date string or
// a number of (milli)seconds since the epoch.
type wireTime string

func (t *wireTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = wireTime(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = wireTime(n.String())
	return nil
}

// Time parses the timestamp, returning nil when it is absent or unparseable.
func (t wireTime) Time() *time.Time {
	if t == "" {
		return nil
	}
	parsed, err := dateparse.ParseIn(string(t), time.UTC)
	if err != nil {
		return nil
	}
	return &parsed
}

// accessList accepts either a single access level or a list of them.
type accessList []string

func (a *accessList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = accessList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*a = list
	return nil
}

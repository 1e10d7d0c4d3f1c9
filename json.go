package moment

import (
	"encoding/json"
	"fmt"
)

const jsonLayout = "YYYY-MM-DDTHH:mm:ss.SSS[Z]"

// MarshalJSON encodes m as a UTC ISO 8601 string with milliseconds, or null
// when m is invalid.
func (m Moment) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return []byte("null"), nil
	}
	return json.Marshal(englishLocale().Format(m.UTC(), jsonLayout))
}

// UnmarshalJSON ignores null and accepts a string read like Parse without layouts, or a
// number of milliseconds since the epoch.
func (m *Moment) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		*m = FromUnixMilli(ms)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("moment: decode json: %w", err)
	}
	parsed := parseFreeText(raw, DefaultLocation())
	if !parsed.IsValid() {
		return parsed.Err()
	}
	*m = parsed
	return nil
}

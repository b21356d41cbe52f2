package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadSettings reads site settings from a JSON object of string keys.
// Non-string values are stored in their JSON form, so {"rss_display": true}
// and {"rss_display": "True"} are not the same setting.
func ReadSettings(settingsPath string) (map[string]string, error) {
	contents, err := os.ReadFile(settingsPath)

	if err != nil {
		return nil, fmt.Errorf("could not read settings file: %w", err)
	}

	var raw map[string]json.RawMessage

	if err = json.Unmarshal(contents, &raw); err != nil {
		return nil, fmt.Errorf("could not parse settings file: %w", err)
	}

	settings := make(map[string]string, len(raw))

	for key, value := range raw {
		var s string

		if err := json.Unmarshal(value, &s); err != nil {
			s = string(value)
		}

		settings[key] = s
	}

	return settings, nil
}

package settings

import (
	"context"
	"fmt"

	"github.com/nDmitry/mediafeeds/internal/config"
	"github.com/nDmitry/mediafeeds/internal/entity"
)

// Store defines the interface for reading site settings
type Store interface {
	// Get returns the value of a setting, or an empty string if it is not set
	Get(ctx context.Context, key string) (string, error)
}

// Enabled reports whether a boolean-like setting holds the enabled sentinel
func Enabled(ctx context.Context, s Store, key string) (bool, error) {
	value, err := s.Get(ctx, key)

	if err != nil {
		return false, fmt.Errorf("could not read setting %s: %w", key, err)
	}

	return value == entity.SettingEnabled, nil
}

// Static is an immutable in-memory settings store
type Static map[string]string

// FromFile loads a Static store from a JSON settings file
func FromFile(path string) (Static, error) {
	values, err := config.ReadSettings(path)

	if err != nil {
		return nil, err
	}

	return Static(values), nil
}

// Get returns the stored value
func (s Static) Get(_ context.Context, key string) (string, error) {
	return s[key], nil
}

package store

import (
	"encoding/json"
	"fmt"
	"os"

	"tempoclaro/internal/auth"
)

// LoadProfile reads the stored user profile.
func LoadProfile(path string) (auth.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return auth.Profile{}, err
	}
	var p auth.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return auth.Profile{}, fmt.Errorf("invalid user profile: %w", err)
	}
	return p, nil
}

// SaveProfile writes the user profile with mode 0600.
func SaveProfile(path string, p auth.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for settings.yaml.
const (
	DefaultTimeZone            = "America/Sao_Paulo"
	DefaultCalendarName        = "TEMPO-CLARO Rotinas"
	DefaultCalendarDescription = "Rotinas estruturadas criadas no TEMPO-CLARO"
)

// Settings holds user-tunable values read from settings.yaml.
type Settings struct {
	// TimeZone is the IANA timezone used for day boundaries and calendar events.
	TimeZone string `yaml:"timezone"`

	// CalendarName is the display name of the application-reserved calendar.
	CalendarName string `yaml:"calendar_name"`

	// CalendarDescription is the description given to the calendar on creation.
	CalendarDescription string `yaml:"calendar_description"`
}

// DefaultSettings returns the settings used when settings.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		TimeZone:            DefaultTimeZone,
		CalendarName:        DefaultCalendarName,
		CalendarDescription: DefaultCalendarDescription,
	}
}

// LoadSettings reads settings from path. A missing file yields the defaults;
// absent keys keep their default value.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("invalid %s: %w", path, err)
	}

	if s.TimeZone == "" {
		s.TimeZone = DefaultTimeZone
	}
	if s.CalendarName == "" {
		s.CalendarName = DefaultCalendarName
	}
	if s.CalendarDescription == "" {
		s.CalendarDescription = DefaultCalendarDescription
	}
	return s, nil
}

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"safeairway/internal/config"
)

// Setting keys.
const (
	KeyRecentCases      = "recent_cases"
	KeyLastDirectory    = "last_directory"
	KeyFontSize         = "font_size"
	KeyAutoSaveInterval = "autosave_interval"
	KeyAutoSaveEnabled  = "autosave_enabled"
)

var (
	// ErrUnknownKey marks a preference name outside the supported set.
	ErrUnknownKey = errors.New("unknown preference")
	// ErrInvalidValue marks a preference value that fails validation.
	ErrInvalidValue = errors.New("invalid preference value")
)

// Preferences is the typed view of the user-editable keys.
type Preferences struct {
	LastDirectory    string
	FontSize         int
	AutoSaveEnabled  bool
	AutoSaveInterval int
}

// PreferenceKeys lists the names accepted by SetPreference, in display order.
func PreferenceKeys() []string {
	return []string{KeyLastDirectory, KeyFontSize, KeyAutoSaveEnabled, KeyAutoSaveInterval}
}

func defaultsFromConfig(cfg *config.Config) Preferences {
	return Preferences{
		LastDirectory:    cfg.Paths.BaseDir,
		FontSize:         cfg.Display.FontSize,
		AutoSaveEnabled:  cfg.AutoSave.Enabled,
		AutoSaveInterval: cfg.AutoSave.IntervalMinutes,
	}
}

// Preferences reads all user preferences, applying defaults for unset keys.
func (s *Store) Preferences(ctx context.Context) (Preferences, error) {
	prefs := s.defaults

	if v, ok, err := s.Get(ctx, KeyLastDirectory); err != nil {
		return Preferences{}, err
	} else if ok {
		prefs.LastDirectory = v
	}
	if v, ok, err := s.Get(ctx, KeyFontSize); err != nil {
		return Preferences{}, err
	} else if ok {
		if n, convErr := strconv.Atoi(v); convErr == nil {
			prefs.FontSize = n
		}
	}
	if v, ok, err := s.Get(ctx, KeyAutoSaveEnabled); err != nil {
		return Preferences{}, err
	} else if ok {
		if b, convErr := strconv.ParseBool(v); convErr == nil {
			prefs.AutoSaveEnabled = b
		}
	}
	if v, ok, err := s.Get(ctx, KeyAutoSaveInterval); err != nil {
		return Preferences{}, err
	} else if ok {
		if n, convErr := strconv.Atoi(v); convErr == nil {
			prefs.AutoSaveInterval = n
		}
	}
	return prefs, nil
}

// SetPreference validates and stores one preference by name.
func (s *Store) SetPreference(ctx context.Context, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case KeyLastDirectory:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, key)
		}
	case KeyFontSize:
		n, err := strconv.Atoi(value)
		if err != nil || n < 6 || n > 72 {
			return fmt.Errorf("%w: %s must be an integer between 6 and 72", ErrInvalidValue, key)
		}
		value = strconv.Itoa(n)
	case KeyAutoSaveInterval:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive number of minutes", ErrInvalidValue, key)
		}
		value = strconv.Itoa(n)
	case KeyAutoSaveEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
		}
		value = strconv.FormatBool(b)
	default:
		return fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownKey, key, strings.Join(PreferenceKeys(), ", "))
	}
	return s.Put(ctx, key, value)
}

// RecentCases returns the persisted recent-case list, most recent first.
// A corrupt stored value reads as an empty list.
func (s *Store) RecentCases(ctx context.Context) ([]string, error) {
	raw, ok, err := s.Get(ctx, KeyRecentCases)
	if err != nil || !ok {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, nil
	}
	return list, nil
}

// SaveRecentCases replaces the persisted recent-case list.
func (s *Store) SaveRecentCases(ctx context.Context, list []string) error {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode recent cases: %w", err)
	}
	return s.Put(ctx, KeyRecentCases, string(data))
}

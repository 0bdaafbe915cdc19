package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/ecosnake/internal/config"
)

// Setting keys.
const (
	KeyCharacter  = "character"
	KeyBackground = "background"
	KeyBag        = "bag"
)

// Setting returns a stored value and whether it exists.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores a value, replacing any previous one.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %q: %w", key, err)
	}
	return nil
}

// LoadAppearance reads the saved appearance. Missing, unreadable or
// unknown values fall back to the defaults one field at a time and are
// logged; this never fails.
func (s *Store) LoadAppearance() config.Appearance {
	a := config.DefaultAppearance()

	if v, ok := s.lookup(KeyCharacter); ok {
		if c, err := config.ParseCharacter(v); err == nil {
			a.Character = c
		} else {
			s.logger.Warn("invalid setting, using default", "key", KeyCharacter, "value", v, "default", a.Character)
		}
	}
	if v, ok := s.lookup(KeyBackground); ok {
		if b, err := config.ParseBackground(v); err == nil {
			a.Background = b
		} else {
			s.logger.Warn("invalid setting, using default", "key", KeyBackground, "value", v, "default", a.Background)
		}
	}
	if v, ok := s.lookup(KeyBag); ok {
		if b, err := config.ParseBag(v); err == nil {
			a.Bag = b
		} else {
			s.logger.Warn("invalid setting, using default", "key", KeyBag, "value", v, "default", a.Bag)
		}
	}

	return a
}

func (s *Store) lookup(key string) (string, bool) {
	v, ok, err := s.Setting(key)
	if err != nil {
		s.logger.Warn("could not read setting", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

// SaveAppearance stores all three appearance choices.
func (s *Store) SaveAppearance(a config.Appearance) error {
	values := map[string]string{
		KeyCharacter:  a.Character.String(),
		KeyBackground: a.Background.String(),
		KeyBag:        a.Bag.String(),
	}
	for k, v := range values {
		if err := s.SetSetting(k, v); err != nil {
			return err
		}
	}
	return nil
}

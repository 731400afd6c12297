package models

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preference is a key value setting of the instance.
type Preference struct {
	Key   string `gorm:"primaryKey"`
	Value string
	Timestamps
}

// Theme is the color scheme of the user interface.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system" // Follow the operating system
)

const themeKey = "theme"

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// GetTheme returns the stored theme. It defaults to ThemeSystem.
func GetTheme(db *gorm.DB) (Theme, error) {
	var p Preference
	err := db.Where(&Preference{Key: themeKey}).First(&p).Error
	if errors.Is(err, ErrResourceNotFound) {
		return ThemeSystem, nil
	} else if err != nil {
		return "", err
	}

	theme := Theme(p.Value)
	if !theme.Valid() {
		return ThemeSystem, nil
	}

	return theme, nil
}

// SetTheme stores the theme.
func SetTheme(db *gorm.DB, theme Theme) error {
	if !theme.Valid() {
		return ErrThemeInvalid
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Preference{Key: themeKey, Value: string(theme)}).Error
}

// Returns all preferences on this instance for export
func (Preference) Export() (json.RawMessage, error) {
	var preferences []Preference
	err := DB.Where(&Preference{}).Find(&preferences).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&preferences)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

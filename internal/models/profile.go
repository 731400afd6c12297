package models

import (
	"encoding/json"
	"strings"

	"github.com/meu-painel/backend/internal/ledger"
	"gorm.io/gorm"
)

// Profile is a person or household with its own transactions and goals.
type Profile struct {
	DefaultModel
	Name string
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = ledger.DefaultName
	}

	return nil
}

// Returns all profiles on this instance for export
func (Profile) Export() (json.RawMessage, error) {
	var profiles []Profile
	err := DB.Where(&Profile{}).Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&profiles)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

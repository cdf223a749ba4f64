package models

import (
	"strings"

	"gorm.io/gorm"
)

// Household is the highest level of organization, all other
// resources reference it directly or transitively.
type Household struct {
	DefaultModel
	Name string
	Note string
}

func (h *Household) BeforeSave(_ *gorm.DB) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Note = strings.TrimSpace(h.Note)

	return nil
}

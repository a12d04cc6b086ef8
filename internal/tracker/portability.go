// ABOUTME: Export and import of the flat interchange document.
// ABOUTME: Import overwrites meals and settings wholesale per present field.
package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/store"
	"gopkg.in/yaml.v3"
)

// ExportDoc is the flat interchange document. On import, a missing field
// is a per-field no-op; a present field overwrites its key wholesale.
type ExportDoc struct {
	ID         string           `json:"id" yaml:"id"`
	ExportDate time.Time        `json:"exportDate" yaml:"exportDate"`
	Meals      []*models.Meal   `json:"meals,omitempty" yaml:"meals,omitempty"`
	Settings   *models.Settings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

func (t *Tracker) exportDoc() ExportDoc {
	settings := t.Settings()
	return ExportDoc{
		ID:         uuid.NewString(),
		ExportDate: t.now(),
		Meals:      t.Ledger.All(),
		Settings:   &settings,
	}
}

// ExportJSON serializes all meals and settings as the interchange document.
func (t *Tracker) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(t.exportDoc(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportYAML serializes the interchange document as YAML for human review.
func (t *Tracker) ExportYAML() ([]byte, error) {
	data, err := yaml.Marshal(t.exportDoc())
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// Import reads an interchange document. Malformed JSON fails without
// touching the store; no partial import occurs before the first write.
func (t *Tracker) Import(data []byte) error {
	var doc ExportDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed import document: %w", err)
	}

	if doc.Meals != nil {
		if err := store.Save(t.store, store.KeyMeals, doc.Meals); err != nil {
			return fmt.Errorf("import meals: %w", err)
		}
	}
	if doc.Settings != nil {
		if err := store.Save(t.store, store.KeySettings, *doc.Settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}
	return nil
}

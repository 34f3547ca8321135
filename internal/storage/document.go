package storage

import "encoding/json"

// Document is the persisted application state: the card collection plus the
// ordered list of deck names. Cards is opaque to the backend; its schema is
// owned entirely by the frontend. Deck order is caller-significant and
// preserved as-is, including duplicates and empty strings.
type Document struct {
	Cards json.RawMessage `json:"cards"`
	Decks []string        `json:"decks"`
}

// DefaultDocument is what a never-saved store loads as: a null cards value
// and an empty deck list. A nil RawMessage marshals to JSON null.
func DefaultDocument() *Document {
	return &Document{
		Cards: nil,
		Decks: []string{},
	}
}

// ApplyDefaults sets fallback values after decode.
func (d *Document) ApplyDefaults() {
	if d.Decks == nil {
		d.Decks = []string{}
	}
}

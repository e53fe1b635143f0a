package storage

import (
	"encoding/json"
	"time"
)

// MeasureRecord is a published catalog entry.
type MeasureRecord struct {
	Symbol      string
	Name        string
	Doc         string
	MeasureType string
	AssetClass  *string
	Unit        *string
	Shape       *string
	Rendered    string
	Document    json.RawMessage
	ReplacedBy  *string
	UpdatedAt   time.Time
}

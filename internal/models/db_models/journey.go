package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Journey stores a generated itinerary as a document: the itinerary and its
// originating soul profile are kept as JSON, the completion overlay as a
// separate, independently mutable column of positional item ids.
type Journey struct {
	BaseModel
	AccountID      uuid.UUID `gorm:"type:uuid;index"`
	Title          string
	Destination    string
	StartDate      string
	EndDate        string
	SchemaVersion  string
	Itinerary      string         `gorm:"type:jsonb"`
	SoulProfile    string         `gorm:"type:jsonb"`
	CompletedItems pq.StringArray `gorm:"type:text[]"`
}

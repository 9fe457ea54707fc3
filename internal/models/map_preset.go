package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapPreset is a named MapRequest stored for reuse.
type MapPreset struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required,preset_name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty" validate:"max=500"`
	Request     MapRequest         `json:"request" bson:"request"`
	CreatedBy   string             `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// RenderedMap is what the service hands back for a request or preset.
type RenderedMap struct {
	URL    string `json:"url"`
	Output string `json:"output"`
	Mode   string `json:"mode"`
}

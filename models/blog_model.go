package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a single published entry. Image holds the resolved URL of the
// uploaded picture, or nil when none was provided.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Date        time.Time          `bson:"date" json:"date"`
	Image       *string            `bson:"image" json:"image"`
}

package models

import (
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe lifecycle states. Recipes are archived, not hard-deleted, by the
// domain model; the REST layer still exposes hard delete for owners.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// IngredientList is the canonical ingredient shape: an ordered list of
// free-text lines. Older clients submitted a single comma-joined string;
// that legacy form is converted here, once, at decode time.
type IngredientList []string

func (il *IngredientList) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*il = lines
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*il = nil
	for _, part := range strings.Split(joined, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			*il = append(*il, trimmed)
		}
	}
	return nil
}

type Recipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	Dietary     map[string]bool    `bson:"dietary" json:"dietary"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	CookingTime int                `bson:"cookingTime" json:"cookingTime"` // minutes
	Servings    int                `bson:"servings" json:"servings"`
	Ingredients IngredientList     `bson:"ingredients" json:"ingredients"`
	Steps       []string           `bson:"steps" json:"steps"`
	ImageURLs   []string           `bson:"imageUrls" json:"imageUrls"`
	Rating      float64            `bson:"rating" json:"rating"`
	RatingCount int                `bson:"ratingCount" json:"ratingCount"`
	Status      string             `bson:"status" json:"status"`
	Views       int                `bson:"views" json:"views"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EntityType string             `bson:"entityType" json:"entityType"`
	EntityID   string             `bson:"entityId" json:"entityId"`
	UserID     string             `bson:"userId" json:"userId"`
	Username   string             `bson:"username" json:"username"`
	Rating     float64            `bson:"rating" json:"rating"`
	Comment    string             `bson:"comment" json:"comment"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt  int64              `bson:"updatedAt" json:"updatedAt"`
}

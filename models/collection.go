package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Collection groups recipes under an owner-chosen name. Names are unique
// per owner; only the owner may rename, delete, or change membership.
type Collection struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	RecipeIDs []string           `bson:"recipeIds" json:"recipeIds"`
	Public    bool               `bson:"public" json:"public"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64              `bson:"updatedAt" json:"updatedAt"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID       string             `bson:"userid" json:"userid"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Bio          string             `bson:"bio" json:"bio"`
	AvatarURL    string             `bson:"avatarUrl" json:"avatarUrl"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
}

// UserFollow is one document per user: who they follow and who follows them.
type UserFollow struct {
	UserID    string   `bson:"userid" json:"userid"`
	Follows   []string `bson:"follows" json:"follows"`
	Followers []string `bson:"followers" json:"followers"`
}

type UserSuggest struct {
	UserID      string `bson:"userid" json:"userid"`
	Username    string `bson:"username" json:"username"`
	Bio         string `bson:"bio" json:"bio"`
	IsFollowing bool   `bson:"-" json:"is_following"`
}

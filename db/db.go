package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection        *mongo.Collection
	RecipeCollection      *mongo.Collection
	ReviewsCollection     *mongo.Collection
	CollectionsCollection *mongo.Collection
	FollowingsCollection  *mongo.Collection
	FavoritesCollection   *mongo.Collection

	Client *mongo.Client
)

// Connect dials MongoDB and binds the package-level collection handles.
// Callers own the returned client and should Disconnect it on shutdown.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	Client = client

	database := client.Database(dbName)
	CollectionsCollection = database.Collection("collections")
	FavoritesCollection = database.Collection("favorites")
	FollowingsCollection = database.Collection("followings")
	RecipeCollection = database.Collection("recipes")
	ReviewsCollection = database.Collection("reviews")
	UserCollection = database.Collection("users")

	return client, nil
}

func OptionsFindLatest(limit int64) *options.FindOptions {
	opts := options.Find()
	opts.SetSort(map[string]interface{}{"createdAt": -1})
	opts.SetLimit(limit)
	return opts
}

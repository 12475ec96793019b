package db

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongo opens the MongoDB connection and verifies it with a ping.
// The caller decides whether a failure is fatal; this service logs it and
// keeps serving, letting individual requests fail until the store is back.
func ConnectMongo(ctx context.Context, uri, name string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.New("failed to open MongoDB connection: " + err.Error())
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.New("failed to ping MongoDB: " + err.Error())
	}

	log.Println("MongoDB connection initialized successfully.")
	return client.Database(name), nil
}

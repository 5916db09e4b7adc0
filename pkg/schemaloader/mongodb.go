package schemaloader

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultSampleSize = 50

// ConnectMongo opens a client for schema introspection and verifies the
// connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// CollectionKeys samples documents from a collection and returns the
// union of their top-level keys in first-seen order. Document stores
// carry no fixed schema, so sampling is the practical approximation.
func CollectionKeys(ctx context.Context, client *mongo.Client, database, collection string, sampleSize int64) ([]string, error) {
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}

	coll := client.Database(database).Collection(collection)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: sampleSize}}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample collection %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var keys []string
	seen := make(map[string]bool)
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode sampled document: %w", err)
		}
		for _, elem := range doc {
			if !seen[elem.Key] {
				seen[elem.Key] = true
				keys = append(keys, elem.Key)
			}
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while sampling %s: %w", collection, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("collection %s is empty or does not exist", collection)
	}
	return keys, nil
}

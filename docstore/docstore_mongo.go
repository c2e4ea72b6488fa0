package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDocStore is a DocStore on a MongoDB database.
type MongoDocStore struct {
	Client *mongo.Client
	DB     *mongo.Database
}

var _ DocStore = (*MongoDocStore)(nil)

// DialMongoDocStore connects to mongoURL, verifies the connection, and
// returns a store over the named database.
func DialMongoDocStore(ctx context.Context, mongoURL, dbName string) (*MongoDocStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("could not configure mongo client: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("could not connect to mongodb: %w", err)
	}
	return &MongoDocStore{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

func (s *MongoDocStore) InsertOne(ctx context.Context, collection string, doc map[string]any) (string, error) {
	res, err := s.DB.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("inserting document: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoDocStore) CountDocuments(ctx context.Context, collection string, filter map[string]any) (int64, error) {
	if filter == nil {
		filter = map[string]any{}
	}
	n, err := s.DB.Collection(collection).CountDocuments(ctx, bson.M(filter))
	if err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return n, nil
}

func (s *MongoDocStore) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

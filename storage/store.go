package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jinxsazzad/sportifyu-server/util"
)

const (
	dbName               = "sportSpark"
	userCollection       = "users"
	classCollection      = "classes"
	enrollmentCollection = "students-classes"
)

// Store wraps the one mongo client the process holds for its lifetime.
// Every operation is a single-document read or write; the driver handles
// interleaving across concurrent requests.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the client and pings the server once. A failure
// here is fatal to the caller; there is no retry.
func Connect(uri string) (*Store, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(context.Background(), nil); err != nil {
		return nil, err
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) users() *mongo.Collection {
	return s.db.Collection(userCollection)
}

func (s *Store) classes() *mongo.Collection {
	return s.db.Collection(classCollection)
}

func (s *Store) enrollments() *mongo.Collection {
	return s.db.Collection(enrollmentCollection)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", util.ErrInvalidInput, id)
	}
	return oid, nil
}

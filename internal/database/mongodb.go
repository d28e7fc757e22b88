// Package database provides database connection and management.
package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names
const (
	UsersCollection    = "users"
	ToursCollection    = "tours"
	ReviewsCollection  = "reviews"
	BookingsCollection = "bookings"
)

// MongoDB holds the database connection
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	log      *zap.Logger
}

// NewMongoDB connects to MongoDB and verifies the connection with a ping.
// The process exits when the database is unreachable.
func NewMongoDB(uri, dbName string, log *zap.Logger) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB", zap.Error(err))
	}

	log.Info("Connected to MongoDB", zap.String("database", dbName))

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
		log:      log,
	}
}

// EnsureIndexes creates the application indexes. Existing indexes with the
// same keys and options are left alone, so it is safe on every start.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	names, err := EnsureIndexes(ctx, m.Database)
	if err != nil {
		return err
	}
	m.log.Info("Indexes ready", zap.Strings("indexes", names))
	return nil
}

// Close disconnects from MongoDB
func (m *MongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		m.log.Error("Error disconnecting from MongoDB", zap.Error(err))
		return
	}
	m.log.Info("Disconnected from MongoDB")
}

// Collection returns a collection from the database
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

package database

import (
	"context"
	"log"
	"time"

	"stayx/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogClient is the global MongoDB client backing the services catalog.
var CatalogClient *mongo.Client

// InitCatalogDB initializes the MongoDB connection for the services catalog.
func InitCatalogDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.CatalogDatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	CatalogClient = client
	log.Println("Connected to MongoDB successfully!")
}

// CatalogDatabase returns the configured catalog database handle.
func CatalogDatabase() *mongo.Database {
	return CatalogClient.Database(config.AppConfig.CatalogDatabase)
}

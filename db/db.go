package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection    *mongo.Collection
	ClientCollection  *mongo.Collection
	AgentCollection   *mongo.Collection
	CompanyCollection *mongo.Collection
	TripCollection    *mongo.Collection
	BlogCollection    *mongo.Collection
	FilesCollection   *mongo.Collection
	Client            *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("keliva")
	UserCollection = database.Collection("users")
	ClientCollection = database.Collection("clients")
	AgentCollection = database.Collection("agents")
	CompanyCollection = database.Collection("companies")
	TripCollection = database.Collection("trips")
	BlogCollection = database.Collection("blogs")
	FilesCollection = database.Collection("files")
}

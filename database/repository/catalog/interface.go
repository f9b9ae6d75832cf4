package catalog

import (
	"context"

	"dragontravel/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// AirportRepository resolves a city or region prefix to an airport display
// name. An empty name with a nil error means no airport matched.
type AirportRepository interface {
	FindByPrefix(ctx context.Context, prefix string) (string, error)
}

// AirlineRepository resolves an airline mention (callsign or name prefix) to
// its display name.
type AirlineRepository interface {
	FindByPrefix(ctx context.Context, prefix string) (string, error)
}

type mongoAirportRepo struct {
	coll *mongo.Collection
}

type mongoAirlineRepo struct {
	coll *mongo.Collection
}

// NewMongoAirportRepo returns an AirportRepository over the aeropuertos
// collection.
func NewMongoAirportRepo() AirportRepository {
	db := database.MongoClient.Database("DragonTravel")
	return &mongoAirportRepo{coll: db.Collection("aeropuertos")}
}

// NewMongoAirlineRepo returns an AirlineRepository over the aerolineas
// collection.
func NewMongoAirlineRepo() AirlineRepository {
	db := database.MongoClient.Database("DragonTravel")
	return &mongoAirlineRepo{coll: db.Collection("aerolineas")}
}

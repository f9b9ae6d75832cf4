package reservationRepo

import (
	"context"

	"dragontravel/database"
	"dragontravel/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	Create(ctx context.Context, res models.Reservation) (string, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	GetAll(ctx context.Context) ([]models.Reservation, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a Repository over the reservas collection.
func NewMongoReservationRepo() Repository {
	db := database.MongoClient.Database("DragonTravel")
	return &mongoReservationRepo{
		coll: db.Collection("reservas"),
	}
}

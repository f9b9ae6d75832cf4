package reservationRepo

import (
	"context"
	"errors"
	"time"

	"dragontravel/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create upserts a reservation by id and returns the id. Replacing on the id
// keeps a retried finalize from inserting the same conversation twice.
func (r *mongoReservationRepo) Create(ctx context.Context, res models.Reservation) (string, error) {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	res.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": res.ID}, res, opts)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

// GetByID returns a stored reservation by its id.
func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetAll returns every stored reservation, newest first.
func (r *mongoReservationRepo) GetAll(ctx context.Context) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// DeleteByID removes a reservation by id.
func (r *mongoReservationRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("reservation not found")
	}
	return nil
}

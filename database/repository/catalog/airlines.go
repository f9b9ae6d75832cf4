package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type airlineDoc struct {
	Name     string `bson:"Name"`
	Callsign string `bson:"Callsign"`
}

// FindByPrefix matches the callsign first, then the name.
func (r *mongoAirlineRepo) FindByPrefix(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", nil
	}
	for _, key := range []string{"Callsign", "Name"} {
		var doc airlineDoc
		err := r.coll.FindOne(ctx, bson.M{key: prefixRegex(prefix)}).Decode(&doc)
		if err == nil {
			return doc.Name, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return "", err
		}
	}
	return "", nil
}

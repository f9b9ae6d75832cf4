package catalog

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func prefixRegex(prefix string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix), Options: "i"}
}

type airportDoc struct {
	Name  string `bson:"name"`
	City  string `bson:"city"`
	State string `bson:"state"`
}

// FindByPrefix matches the city first, then the state. No match returns an
// empty name so the caller can substitute its fallback label.
func (r *mongoAirportRepo) FindByPrefix(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", nil
	}
	for _, key := range []string{"city", "state"} {
		var doc airportDoc
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

package profiles

import (
	"context"
	"mindwell-service/internal/app/contracts"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/constvars"
	"mindwell-service/internal/pkg/exceptions"
	"mindwell-service/internal/pkg/screening"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfiles),
	}
}

func (r *ProfileMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProfileMongoRepository) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	update := bson.M{
		"$set": bson.M{
			"age":           profile.Age,
			"locality":      profile.Locality,
			"personalNotes": profile.PersonalNotes,
			"goals":         profile.Goals,
			"updatedAt":     profile.UpdatedAt,
		},
	}

	updateOptions := options.Update().SetUpsert(true)
	_, err := r.Collection.UpdateOne(ctx, bson.M{"userId": profile.UserID}, update, updateOptions)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProfileMongoRepository) UpdateScores(ctx context.Context, userID string, scores map[screening.Instrument]int) error {
	now := time.Now()
	fields := bson.M{"updatedAt": now}
	for instrument, score := range scores {
		fields[scoreFieldFor(instrument)] = score
	}

	updateOptions := options.Update().SetUpsert(true)
	_, err := r.Collection.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{"$set": fields}, updateOptions)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func scoreFieldFor(instrument screening.Instrument) string {
	switch instrument {
	case screening.InstrumentGAD7:
		return "gad7Score"
	case screening.InstrumentGHQ12:
		return "ghq12Score"
	default:
		return "phq9Score"
	}
}

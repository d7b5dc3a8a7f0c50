package assessments

import (
	"context"
	"mindwell-service/internal/app/contracts"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/constvars"
	"mindwell-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssessmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssessmentMongoRepository(db *mongo.Client, dbName string) contracts.AssessmentRepository {
	return &AssessmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
	}
}

func (r *AssessmentMongoRepository) InsertAssessment(ctx context.Context, assessment *models.Assessment) (assessmentID string, err error) {
	result, err := r.Collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AssessmentMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Assessment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var assessments []models.Assessment
	err = cursor.All(ctx, &assessments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assessments, nil
}

func (r *AssessmentMongoRepository) FindByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var assessment models.Assessment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

package storage

import (
	"context"
	"errors"
	"fmt"

	"recruit_backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// resumeImageDocument - форма документа в коллекции resumeimages.
type resumeImageDocument struct {
	ID                 bson.ObjectID `bson:"_id"`
	models.ResumeImage `bson:",inline"`
}

func newResumeImageDocument(img *models.ResumeImage) resumeImageDocument {
	return resumeImageDocument{
		ID:          bson.NewObjectID(),
		ResumeImage: *img,
	}
}

func (d *resumeImageDocument) toModel() *models.ResumeImage {
	img := d.ResumeImage
	img.ID = d.ID.Hex()
	return &img
}

// MongoImageStore stores resume images in a MongoDB collection.
type MongoImageStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoImageStore connects lazily; the first operation (or Ping) dials the server.
func NewMongoImageStore(ctx context.Context, cfg Config) (*MongoImageStore, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if cfg.Database == "" {
		cfg.Database = "recruit"
	}
	if cfg.Collection == "" {
		cfg.Collection = "resumeimages"
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	return &MongoImageStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (s *MongoImageStore) Insert(ctx context.Context, img *models.ResumeImage) (string, error) {
	doc := newResumeImageDocument(img)

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert resume image: %w", err)
	}

	img.ID = doc.ID.Hex()
	return img.ID, nil
}

func (s *MongoImageStore) FindByID(ctx context.Context, id string) (*models.ResumeImage, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrImageNotFound
	}

	var doc resumeImageDocument
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to find resume image: %w", err)
	}

	return doc.toModel(), nil
}

func (s *MongoImageStore) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete resume image: %w", err)
	}
	return nil
}

func (s *MongoImageStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoImageStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

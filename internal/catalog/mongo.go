package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sfaram/vidgrid/internal/models"
)

// videoDoc is the document shape stored in the videos collection.
type videoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	URL       string             `bson:"url"`
	Title     string             `bson:"title"`
	Category  string             `bson:"category"`
	Thumbnail string             `bson:"thumbnail,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *videoDoc) toVideo() models.Video {
	return models.Video{
		ID:        d.ID.Hex(),
		URL:       d.URL,
		Title:     d.Title,
		Category:  d.Category,
		Thumbnail: d.Thumbnail,
		CreatedAt: d.CreatedAt,
	}
}

// MongoStore implements Store over a remote MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore connects to the given MongoDB deployment and binds the
// videos collection. The connection is verified with a ping before use so a
// misconfigured URI fails here, not on the first request.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	if uri == "" {
		return nil, ErrStoreUnavailable
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// List returns all documents ordered by createdAt descending.
func (s *MongoStore) List(ctx context.Context) ([]models.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []videoDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}

	videos := make([]models.Video, 0, len(docs))
	for i := range docs {
		videos = append(videos, docs[i].toVideo())
	}
	return videos, nil
}

// Create inserts a new document with a server-assigned id and timestamp.
func (s *MongoStore) Create(ctx context.Context, draft models.VideoDraft) (string, error) {
	doc := videoDoc{
		URL:       draft.URL,
		Title:     draft.Title,
		Category:  draft.Category,
		Thumbnail: draft.Thumbnail,
		CreatedAt: time.Now().UTC(),
	}

	result, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert video: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// Update merges the mutable fields into the document identified by id.
func (s *MongoStore) Update(ctx context.Context, id string, draft models.VideoDraft) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "url", Value: draft.URL},
		{Key: "title", Value: draft.Title},
		{Key: "category", Value: draft.Category},
		{Key: "thumbnail", Value: draft.Thumbnail},
	}}}

	result, err := s.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document identified by id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping checks deployment reachability.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects from the deployment.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

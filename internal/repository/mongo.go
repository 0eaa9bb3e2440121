package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"seoAuditGO/internal/config"
	"seoAuditGO/internal/models"
)

// Repository defines operations on audit data
type Repository interface {
	SaveAudit(ctx context.Context, audit *models.AuditRecord) error
	GetAudit(ctx context.Context, id string) (*models.AuditRecord, error)
	GetRecentAudits(ctx context.Context, limit int) ([]*models.AuditRecord, error)
	GetUserAudits(ctx context.Context, userID string, limit int) ([]*models.AuditRecord, error)
	GetStats(ctx context.Context) (*models.Stats, error)
	Close(ctx context.Context) error
}

// MongoRepository implements Repository interface for MongoDB
type MongoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRepository creates a new MongoDB repository
func NewMongoRepository(ctx context.Context, cfg config.MongoDBConfig) (*MongoRepository, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Check the connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	collection := client.Database(cfg.Database).Collection(cfg.CollectionName)

	// Indexes for the common lookups
	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "urls", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		return nil, err
	}

	return &MongoRepository{
		client:     client,
		collection: collection,
	}, nil
}

// SaveAudit saves an audit record to MongoDB
func (r *MongoRepository) SaveAudit(ctx context.Context, audit *models.AuditRecord) error {
	// Set creation time if not set
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return err
	}

	// Update ID in the audit object
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		audit.ID = oid
	}

	return nil
}

// GetAudit retrieves an audit by ID
func (r *MongoRepository) GetAudit(ctx context.Context, id string) (*models.AuditRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var audit models.AuditRecord
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&audit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		return nil, err
	}

	return &audit, nil
}

// GetRecentAudits retrieves the most recent audits
func (r *MongoRepository) GetRecentAudits(ctx context.Context, limit int) ([]*models.AuditRecord, error) {
	return r.findAudits(ctx, bson.M{}, limit)
}

// GetUserAudits retrieves audits for a specific user
func (r *MongoRepository) GetUserAudits(ctx context.Context, userID string, limit int) ([]*models.AuditRecord, error) {
	return r.findAudits(ctx, bson.M{"user_id": userID}, limit)
}

func (r *MongoRepository) findAudits(ctx context.Context, filter bson.M, limit int) ([]*models.AuditRecord, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var audits []*models.AuditRecord
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, err
	}

	return audits, nil
}

// GetStats retrieves application statistics
func (r *MongoRepository) GetStats(ctx context.Context) (*models.Stats, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	last24h, err := r.collection.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": time.Now().Add(-24 * time.Hour)},
	})
	if err != nil {
		return nil, err
	}

	last7d, err := r.collection.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": time.Now().Add(-7 * 24 * time.Hour)},
	})
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		TotalAudits:   int(total),
		AuditsLast24h: int(last24h),
		AuditsLast7d:  int(last7d),
		LastUpdated:   time.Now(),
	}, nil
}

// Close closes the MongoDB connection
func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

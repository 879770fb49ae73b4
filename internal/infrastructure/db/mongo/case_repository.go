package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/caseflow/case-api/internal/core/domain"
)

const collectionCases = "cases"

type CaseRepository struct {
	col *mongo.Collection
}

func NewCaseRepository(db *mongo.Database) *CaseRepository {
	return &CaseRepository{col: db.Collection(collectionCases)}
}

type caseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Category    string             `bson:"category,omitempty"`
	Description string             `bson:"description,omitempty"`
	ImagePath   string             `bson:"image_path,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d caseDoc) toDomain() domain.Case {
	return domain.Case{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		ImagePath:   d.ImagePath,
		OwnerID:     d.OwnerID,
		CreatedAt:   d.CreatedAt,
	}
}

// Insert persists a new case document.
func (r *CaseRepository) Insert(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := caseDoc{
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		ImagePath:   c.ImagePath,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert case: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindAll returns every case in store-natural order.
func (r *CaseRepository) FindAll(ctx context.Context) ([]domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cur.Close(ctx)

	var docs []caseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cases: %w", err)
	}

	cases := make([]domain.Case, 0, len(docs))
	for _, d := range docs {
		cases = append(cases, d.toDomain())
	}
	return cases, nil
}

// DeleteByID removes the case with the given id.
func (r *CaseRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCaseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

// EnsureIndexes creates the secondary indexes used by the case collection.
func (r *CaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

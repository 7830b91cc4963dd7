package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultRecurringItemsCollection = "recurring_items"

type recurringItemDocument struct {
	ID                string               `bson:"_id"`
	OwnerSpaceID      string               `bson:"ownerSpaceId"`
	AccountID         string               `bson:"accountId"`
	CategoryID        string               `bson:"categoryId,omitempty"`
	Amount            primitive.Decimal128 `bson:"amount"`
	Kind              string               `bson:"kind"`
	Frequency         string               `bson:"frequency"`
	StartDate         string               `bson:"startDate"`
	EndDate           string               `bson:"endDate,omitempty"`
	LastExecutedDate  string               `bson:"lastExecutedDate,omitempty"`
	NextExecutionDate string               `bson:"nextExecutionDate"`
	IsActive          bool                 `bson:"isActive"`
	Note              string               `bson:"note,omitempty"`
	CreatedBy         string               `bson:"createdBy"`
	UpdatedBy         string               `bson:"updatedBy"`
	Version           int64                `bson:"version"`
	CreatedAt         time.Time            `bson:"createdAt"`
	UpdatedAt         time.Time            `bson:"updatedAt"`
}

// RecurringItemMongoRepository persists RecurringItem entities in a MongoDB
// collection. Every filter carries ownerSpaceId so one space can never read
// or write another's items.
type RecurringItemMongoRepository struct {
	collection *mongo.Collection
}

var _ interfaces.IRecurringItemRepository = (*RecurringItemMongoRepository)(nil)

func NewRecurringItemMongoRepository(collection *mongo.Collection) *RecurringItemMongoRepository {
	return &RecurringItemMongoRepository{collection: collection}
}

// EnsureIndexes creates the index backing the due queries.
func (r *RecurringItemMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerSpaceId", Value: 1},
			{Key: "isActive", Value: 1},
			{Key: "nextExecutionDate", Value: 1},
		},
		Options: options.Index().SetName("space_due"),
	})
	if err != nil {
		return fmt.Errorf("failed to create recurring item indexes: %w", err)
	}
	return nil
}

func (r *RecurringItemMongoRepository) Create(ctx context.Context, item entities.RecurringItem) (entities.RecurringItem, error) {
	doc, err := toRecurringItemDocument(item)
	if err != nil {
		return entities.RecurringItem{}, err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return entities.RecurringItem{}, fmt.Errorf("failed to insert recurring item: %w", err)
	}
	return item, nil
}

func (r *RecurringItemMongoRepository) GetByID(ctx context.Context, ownerSpaceID, id string) (entities.RecurringItem, error) {
	var doc recurringItemDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "ownerSpaceId": ownerSpaceID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.RecurringItem{}, nil
		}
		return entities.RecurringItem{}, fmt.Errorf("failed to find recurring item: %w", err)
	}
	return fromRecurringItemDocument(doc)
}

func (r *RecurringItemMongoRepository) Save(ctx context.Context, item entities.RecurringItem, expectedVersion int64) (entities.RecurringItem, error) {
	doc, err := toRecurringItemDocument(item)
	if err != nil {
		return entities.RecurringItem{}, err
	}

	filter := bson.M{"_id": item.ID, "ownerSpaceId": item.OwnerSpaceID, "version": expectedVersion}
	res, err := r.collection.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return entities.RecurringItem{}, fmt.Errorf("failed to save recurring item: %w", err)
	}
	if res.MatchedCount == 0 {
		return entities.RecurringItem{}, interfaces.ErrVersionConflict
	}
	return item, nil
}

func (r *RecurringItemMongoRepository) Delete(ctx context.Context, ownerSpaceID, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerSpaceId": ownerSpaceID})
	if err != nil {
		return false, fmt.Errorf("failed to delete recurring item: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *RecurringItemMongoRepository) ListBySpace(ctx context.Context, ownerSpaceID string) ([]entities.RecurringItem, error) {
	return r.find(ctx, bson.M{"ownerSpaceId": ownerSpaceID})
}

func (r *RecurringItemMongoRepository) ListDue(ctx context.Context, ownerSpaceID string, ref calendar.Date) ([]entities.RecurringItem, error) {
	filter := dueDocumentFilter(ref)
	filter["ownerSpaceId"] = ownerSpaceID
	return r.find(ctx, filter)
}

func (r *RecurringItemMongoRepository) ListAllDue(ctx context.Context, ref calendar.Date) ([]entities.RecurringItem, error) {
	return r.find(ctx, dueDocumentFilter(ref))
}

func (r *RecurringItemMongoRepository) find(ctx context.Context, filter bson.M) ([]entities.RecurringItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "nextExecutionDate", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recurring items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []entities.RecurringItem
	for cursor.Next(ctx) {
		var doc recurringItemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode recurring item: %w", err)
		}
		item, err := fromRecurringItemDocument(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recurring items: %w", err)
	}
	return items, nil
}

func dueDocumentFilter(ref calendar.Date) bson.M {
	return bson.M{
		"isActive":          true,
		"nextExecutionDate": bson.M{"$lte": ref.String()},
		"$or": bson.A{
			bson.M{"endDate": bson.M{"$exists": false}},
			bson.M{"endDate": bson.M{"$gte": ref.String()}},
		},
	}
}

func toRecurringItemDocument(item entities.RecurringItem) (recurringItemDocument, error) {
	amount, err := primitive.ParseDecimal128(item.Amount.String())
	if err != nil {
		return recurringItemDocument{}, fmt.Errorf("encode amount of %s: %w", item.ID, err)
	}
	return recurringItemDocument{
		ID:                item.ID,
		OwnerSpaceID:      item.OwnerSpaceID,
		AccountID:         item.AccountID,
		CategoryID:        item.CategoryID,
		Amount:            amount,
		Kind:              string(item.Kind),
		Frequency:         string(item.Frequency),
		StartDate:         item.StartDate.String(),
		EndDate:           optionalDate(item.EndDate),
		LastExecutedDate:  optionalDate(item.LastExecutedDate),
		NextExecutionDate: item.NextExecutionDate.String(),
		IsActive:          item.IsActive,
		Note:              item.Note,
		CreatedBy:         item.CreatedBy,
		UpdatedBy:         item.UpdatedBy,
		Version:           item.Version,
		CreatedAt:         item.CreatedAt.UTC(),
		UpdatedAt:         item.UpdatedAt.UTC(),
	}, nil
}

func fromRecurringItemDocument(doc recurringItemDocument) (entities.RecurringItem, error) {
	return storedFields{
		ID:                doc.ID,
		OwnerSpaceID:      doc.OwnerSpaceID,
		AccountID:         doc.AccountID,
		CategoryID:        doc.CategoryID,
		Amount:            doc.Amount.String(),
		Kind:              doc.Kind,
		Frequency:         doc.Frequency,
		StartDate:         doc.StartDate,
		EndDate:           doc.EndDate,
		LastExecutedDate:  doc.LastExecutedDate,
		NextExecutionDate: doc.NextExecutionDate,
		IsActive:          doc.IsActive,
		Note:              doc.Note,
		CreatedBy:         doc.CreatedBy,
		UpdatedBy:         doc.UpdatedBy,
		Version:           doc.Version,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}.toEntity()
}

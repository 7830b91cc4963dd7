package repository

import (
	"context"
	"errors"
	"strconv"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultRecurringItemsTableName = "recurring_items"

// dueFilter mirrors the due-set rule; the use case re-applies the rule on the
// result, so the filter only has to narrow the read.
const dueFilter = "#is_active = :true AND #next <= :ref AND (attribute_not_exists(#end) OR #end >= :ref)"

// DynamoAPI is the subset of *dynamodb.Client the repository needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type recurringItemRecord struct {
	OwnerSpaceID      string `dynamodbav:"owner_space_id"`
	ID                string `dynamodbav:"id"`
	AccountID         string `dynamodbav:"account_id"`
	CategoryID        string `dynamodbav:"category_id,omitempty"`
	Amount            string `dynamodbav:"amount"`
	Kind              string `dynamodbav:"kind"`
	Frequency         string `dynamodbav:"frequency"`
	StartDate         string `dynamodbav:"start_date"`
	EndDate           string `dynamodbav:"end_date,omitempty"`
	LastExecutedDate  string `dynamodbav:"last_executed_date,omitempty"`
	NextExecutionDate string `dynamodbav:"next_execution_date"`
	IsActive          bool   `dynamodbav:"is_active"`
	Note              string `dynamodbav:"note,omitempty"`
	CreatedBy         string `dynamodbav:"created_by"`
	UpdatedBy         string `dynamodbav:"updated_by"`
	Version           int64  `dynamodbav:"version"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// RecurringItemDynamoRepository persists RecurringItem entities in DynamoDB.
//
// Table requirements:
//   - PK: owner_space_id (string)
//   - SK: id (string)
//
// Every write is conditional: create requires the key to be free, save
// requires the stored version to match the one the caller read.
type RecurringItemDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRecurringItemRepository = (*RecurringItemDynamoRepository)(nil)

func NewRecurringItemDynamoRepository(ddb DynamoAPI, tableName string) *RecurringItemDynamoRepository {
	if tableName == "" {
		tableName = DefaultRecurringItemsTableName
	}
	return &RecurringItemDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RecurringItemDynamoRepository) Create(ctx context.Context, item entities.RecurringItem) (entities.RecurringItem, error) {
	av, err := attributevalue.MarshalMap(toRecurringItemRecord(item))
	if err != nil {
		return entities.RecurringItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RecurringItem{}, err
	}
	return item, nil
}

func (r *RecurringItemDynamoRepository) GetByID(ctx context.Context, ownerSpaceID, id string) (entities.RecurringItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            itemKey(ownerSpaceID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RecurringItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.RecurringItem{}, nil
	}

	var rec recurringItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.RecurringItem{}, err
	}
	return fromRecurringItemRecord(rec)
}

func (r *RecurringItemDynamoRepository) Save(ctx context.Context, item entities.RecurringItem, expectedVersion int64) (entities.RecurringItem, error) {
	av, err := attributevalue.MarshalMap(toRecurringItemRecord(item))
	if err != nil {
		return entities.RecurringItem{}, err
	}

	// A missing item has no version attribute, so the condition fails too.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RecurringItem{}, interfaces.ErrVersionConflict
		}
		return entities.RecurringItem{}, err
	}
	return item, nil
}

func (r *RecurringItemDynamoRepository) Delete(ctx context.Context, ownerSpaceID, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          itemKey(ownerSpaceID, id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *RecurringItemDynamoRepository) ListBySpace(ctx context.Context, ownerSpaceID string) ([]entities.RecurringItem, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :space"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "owner_space_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":space": &types.AttributeValueMemberS{Value: ownerSpaceID},
		},
	})
}

func (r *RecurringItemDynamoRepository) ListDue(ctx context.Context, ownerSpaceID string, ref calendar.Date) ([]entities.RecurringItem, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#pk = :space"),
		FilterExpression:          aws.String(dueFilter),
		ExpressionAttributeNames:  mergeNames(map[string]string{"#pk": "owner_space_id"}, dueFilterNames()),
		ExpressionAttributeValues: mergeValues(map[string]types.AttributeValue{":space": &types.AttributeValueMemberS{Value: ownerSpaceID}}, dueFilterValues(ref)),
	})
}

// ListAllDue scans the whole table. It backs the daily sweep only.
func (r *RecurringItemDynamoRepository) ListAllDue(ctx context.Context, ref calendar.Date) ([]entities.RecurringItem, error) {
	var items []entities.RecurringItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(dueFilter),
		ExpressionAttributeNames:  dueFilterNames(),
		ExpressionAttributeValues: dueFilterValues(ref),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeRecords(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func (r *RecurringItemDynamoRepository) query(ctx context.Context, input *dynamodb.QueryInput) ([]entities.RecurringItem, error) {
	var items []entities.RecurringItem
	p := dynamodb.NewQueryPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeRecords(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func decodeRecords(raw []map[string]types.AttributeValue) ([]entities.RecurringItem, error) {
	var recs []recurringItemRecord
	if err := attributevalue.UnmarshalListOfMaps(raw, &recs); err != nil {
		return nil, err
	}
	out := make([]entities.RecurringItem, 0, len(recs))
	for _, rec := range recs {
		item, err := fromRecurringItemRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func itemKey(ownerSpaceID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"owner_space_id": &types.AttributeValueMemberS{Value: ownerSpaceID},
		"id":             &types.AttributeValueMemberS{Value: id},
	}
}

func dueFilterNames() map[string]string {
	return map[string]string{
		"#is_active": "is_active",
		"#next":      "next_execution_date",
		"#end":       "end_date",
	}
}

func dueFilterValues(ref calendar.Date) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":true": &types.AttributeValueMemberBOOL{Value: true},
		":ref":  &types.AttributeValueMemberS{Value: ref.String()},
	}
}

func toRecurringItemRecord(item entities.RecurringItem) recurringItemRecord {
	return recurringItemRecord{
		OwnerSpaceID:      item.OwnerSpaceID,
		ID:                item.ID,
		AccountID:         item.AccountID,
		CategoryID:        item.CategoryID,
		Amount:            item.Amount.String(),
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
		CreatedAt:         formatTimestamp(item.CreatedAt),
		UpdatedAt:         formatTimestamp(item.UpdatedAt),
	}
}

func fromRecurringItemRecord(rec recurringItemRecord) (entities.RecurringItem, error) {
	createdAt, err := parseTimestamp("created_at", rec.CreatedAt)
	if err != nil {
		return entities.RecurringItem{}, err
	}
	updatedAt, err := parseTimestamp("updated_at", rec.UpdatedAt)
	if err != nil {
		return entities.RecurringItem{}, err
	}
	return storedFields{
		ID:                rec.ID,
		OwnerSpaceID:      rec.OwnerSpaceID,
		AccountID:         rec.AccountID,
		CategoryID:        rec.CategoryID,
		Amount:            rec.Amount,
		Kind:              rec.Kind,
		Frequency:         rec.Frequency,
		StartDate:         rec.StartDate,
		EndDate:           rec.EndDate,
		LastExecutedDate:  rec.LastExecutedDate,
		NextExecutionDate: rec.NextExecutionDate,
		IsActive:          rec.IsActive,
		Note:              rec.Note,
		CreatedBy:         rec.CreatedBy,
		UpdatedBy:         rec.UpdatedBy,
		Version:           rec.Version,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}.toEntity()
}

func mergeNames(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

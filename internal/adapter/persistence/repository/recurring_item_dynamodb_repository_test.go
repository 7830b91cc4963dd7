package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type stubDynamo struct {
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (s *stubDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return s.putItem(in)
}

func (s *stubDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return s.getItem(in)
}

func (s *stubDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return s.deleteItem(in)
}

func (s *stubDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return s.query(in)
}

func (s *stubDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return s.scan(in)
}

func sampleItem() entities.RecurringItem {
	end := calendar.MustParse("2024-12-31")
	last := calendar.MustParse("2024-03-31")
	created := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	return entities.RecurringItem{
		ID:                "item-1",
		OwnerSpaceID:      "space-1",
		AccountID:         "acc-1",
		CategoryID:        "cat-9",
		Amount:            decimal.RequireFromString("1234.56"),
		Kind:              entities.KindExpense,
		Frequency:         entities.FrequencyMonthly,
		StartDate:         calendar.MustParse("2024-01-31"),
		EndDate:           &end,
		LastExecutedDate:  &last,
		NextExecutionDate: calendar.MustParse("2024-04-30"),
		IsActive:          true,
		Note:              "rent",
		CreatedBy:         "user-1",
		UpdatedBy:         "user-2",
		Version:           3,
		CreatedAt:         created,
		UpdatedAt:         created.Add(time.Hour),
	}
}

func marshalItem(t *testing.T, item entities.RecurringItem) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toRecurringItemRecord(item))
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	return av
}

func TestRecurringItemRecord_Mapping(t *testing.T) {
	t.Run("keeps amount precision and optional dates", func(t *testing.T) {
		item := sampleItem()
		got, err := fromRecurringItemRecord(toRecurringItemRecord(item))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Amount.Equal(item.Amount) || got.EndDate == nil || *got.EndDate != *item.EndDate {
			t.Fatalf("unexpected item: %+v", got)
		}
		if got.LastExecutedDate == nil || got.LastExecutedDate.String() != "2024-03-31" || !got.UpdatedAt.Equal(item.UpdatedAt) {
			t.Fatalf("unexpected item: %+v", got)
		}
	})

	t.Run("absent optional dates stay nil", func(t *testing.T) {
		item := sampleItem()
		item.EndDate = nil
		item.LastExecutedDate = nil

		av := marshalItem(t, item)
		if _, ok := av["end_date"]; ok {
			t.Fatalf("expected end_date to be omitted")
		}
		got, err := fromRecurringItemRecord(toRecurringItemRecord(item))
		if err != nil || got.EndDate != nil || got.LastExecutedDate != nil {
			t.Fatalf("expected nil optional dates, got %+v / %v", got, err)
		}
	})

	t.Run("corrupt date is an error", func(t *testing.T) {
		rec := toRecurringItemRecord(sampleItem())
		rec.NextExecutionDate = "30/04/2024"
		if _, err := fromRecurringItemRecord(rec); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("corrupt timestamp is an error", func(t *testing.T) {
		rec := toRecurringItemRecord(sampleItem())
		rec.CreatedAt = "yesterday"
		_, err := fromRecurringItemRecord(rec)
		if err == nil || !strings.Contains(err.Error(), "created_at") {
			t.Fatalf("expected created_at decode error, got %v", err)
		}
	})

	t.Run("timestamps round trip", func(t *testing.T) {
		got, err := fromRecurringItemRecord(toRecurringItemRecord(sampleItem()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.CreatedAt.Equal(sampleItem().CreatedAt) || !got.UpdatedAt.Equal(sampleItem().UpdatedAt) {
			t.Fatalf("unexpected timestamps: %s / %s", got.CreatedAt, got.UpdatedAt)
		}
	})

	t.Run("unknown stored frequency is kept verbatim", func(t *testing.T) {
		rec := toRecurringItemRecord(sampleItem())
		rec.Frequency = "fortnightly"
		got, err := fromRecurringItemRecord(rec)
		if err != nil || got.Frequency.Valid() {
			t.Fatalf("expected raw invalid frequency, got %q / %v", got.Frequency, err)
		}
	})
}

func TestRecurringItemDynamoRepository_Create(t *testing.T) {
	stub := &stubDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		if aws.ToString(in.TableName) != "recurring_items" {
			t.Fatalf("unexpected table: %s", aws.ToString(in.TableName))
		}
		if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected condition: %s", aws.ToString(in.ConditionExpression))
		}
		amount := in.Item["amount"].(*types.AttributeValueMemberS).Value
		if amount != "1234.56" {
			t.Fatalf("expected amount stored as string, got %s", amount)
		}
		return &dynamodb.PutItemOutput{}, nil
	}}
	repo := NewRecurringItemDynamoRepository(stub, "")

	if _, err := repo.Create(context.Background(), sampleItem()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecurringItemDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing item is the zero value", func(t *testing.T) {
		stub := &stubDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if in.Key["owner_space_id"].(*types.AttributeValueMemberS).Value != "space-1" {
				t.Fatalf("expected space-scoped key")
			}
			return &dynamodb.GetItemOutput{}, nil
		}}
		repo := NewRecurringItemDynamoRepository(stub, "items")

		got, err := repo.GetByID(context.Background(), "space-1", "item-1")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero item, got %+v / %v", got, err)
		}
	})

	t.Run("found", func(t *testing.T) {
		stub := &stubDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshalItem(t, sampleItem())}, nil
		}}
		repo := NewRecurringItemDynamoRepository(stub, "items")

		got, err := repo.GetByID(context.Background(), "space-1", "item-1")
		if err != nil || got.ID != "item-1" || got.Version != 3 {
			t.Fatalf("unexpected item: %+v / %v", got, err)
		}
	})
}

func TestRecurringItemDynamoRepository_Save(t *testing.T) {
	t.Run("condition failure is a version conflict", func(t *testing.T) {
		stub := &stubDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value != "3" {
				t.Fatalf("expected version guard on 3")
			}
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
		}}
		repo := NewRecurringItemDynamoRepository(stub, "")

		_, err := repo.Save(context.Background(), sampleItem(), 3)
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		stub := &stubDynamo{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("throttled")
		}}
		repo := NewRecurringItemDynamoRepository(stub, "")

		_, err := repo.Save(context.Background(), sampleItem(), 3)
		if err == nil || errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})
}

func TestRecurringItemDynamoRepository_Delete(t *testing.T) {
	cases := []struct {
		name  string
		attrs map[string]types.AttributeValue
		want  bool
	}{
		{name: "missing", attrs: nil, want: false},
		{name: "deleted", attrs: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "item-1"}}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubDynamo{deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				if in.ReturnValues != types.ReturnValueAllOld {
					t.Fatalf("expected ALL_OLD return values")
				}
				return &dynamodb.DeleteItemOutput{Attributes: tc.attrs}, nil
			}}
			repo := NewRecurringItemDynamoRepository(stub, "")

			got, err := repo.Delete(context.Background(), "space-1", "item-1")
			if err != nil || got != tc.want {
				t.Fatalf("expected %v, got %v / %v", tc.want, got, err)
			}
		})
	}
}

func TestRecurringItemDynamoRepository_ListDue(t *testing.T) {
	calls := 0
	stub := &stubDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		calls++
		if aws.ToString(in.FilterExpression) != dueFilter {
			t.Fatalf("unexpected filter: %s", aws.ToString(in.FilterExpression))
		}
		if in.ExpressionAttributeValues[":ref"].(*types.AttributeValueMemberS).Value != "2024-04-30" {
			t.Fatalf("expected reference date bound")
		}
		if in.ExpressionAttributeValues[":space"].(*types.AttributeValueMemberS).Value != "space-1" {
			t.Fatalf("expected space bound")
		}
		if calls == 1 {
			return &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{marshalItem(t, sampleItem())},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "item-1"}},
			}, nil
		}
		second := sampleItem()
		second.ID = "item-2"
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalItem(t, second)}}, nil
	}}
	repo := NewRecurringItemDynamoRepository(stub, "")

	items, err := repo.ListDue(context.Background(), "space-1", calendar.MustParse("2024-04-30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 || len(items) != 2 || items[1].ID != "item-2" {
		t.Fatalf("expected two pages, got %d calls and %+v", calls, items)
	}
}

func TestRecurringItemDynamoRepository_ListAllDue(t *testing.T) {
	t.Run("scans with due filter", func(t *testing.T) {
		stub := &stubDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if _, ok := in.ExpressionAttributeValues[":space"]; ok {
				t.Fatalf("cross-space scan must not bind a space")
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{marshalItem(t, sampleItem())}}, nil
		}}
		repo := NewRecurringItemDynamoRepository(stub, "")

		items, err := repo.ListAllDue(context.Background(), calendar.MustParse("2024-04-30"))
		if err != nil || len(items) != 1 {
			t.Fatalf("expected one item, got %+v / %v", items, err)
		}
	})

	t.Run("scan error", func(t *testing.T) {
		stub := &stubDynamo{scan: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			return nil, errors.New("boom")
		}}
		repo := NewRecurringItemDynamoRepository(stub, "")

		if _, err := repo.ListAllDue(context.Background(), calendar.MustParse("2024-04-30")); err == nil {
			t.Fatalf("expected error")
		}
	})
}

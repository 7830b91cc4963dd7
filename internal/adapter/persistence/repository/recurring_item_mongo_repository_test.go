package repository

import (
	"context"
	"errors"
	"testing"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func documentD(t *testing.T) bson.D {
	t.Helper()
	doc, err := toRecurringItemDocument(sampleItem())
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	return d
}

func TestRecurringItemMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewRecurringItemMongoRepository(mt.Coll)

		got, err := repo.Create(context.Background(), sampleItem())
		if err != nil || got.ID != "item-1" {
			mt.Fatalf("unexpected result: %+v / %v", got, err)
		}
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		repo := NewRecurringItemMongoRepository(mt.Coll)

		if _, err := repo.Create(context.Background(), sampleItem()); err == nil {
			mt.Fatalf("expected duplicate key error")
		}
	})

	mt.Run("get missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewRecurringItemMongoRepository(mt.Coll)

		got, err := repo.GetByID(context.Background(), "space-1", "nope")
		if err != nil || got.ID != "" {
			mt.Fatalf("expected zero item, got %+v / %v", got, err)
		}
	})

	mt.Run("get found", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, documentD(mt.T)))
		repo := NewRecurringItemMongoRepository(mt.Coll)

		got, err := repo.GetByID(context.Background(), "space-1", "item-1")
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "item-1" || got.Amount.String() != "1234.56" || got.EndDate == nil || got.EndDate.String() != "2024-12-31" {
			mt.Fatalf("unexpected item: %+v", got)
		}
	})

	mt.Run("save with stale version", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		repo := NewRecurringItemMongoRepository(mt.Coll)

		_, err := repo.Save(context.Background(), sampleItem(), 2)
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			mt.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	mt.Run("save", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		repo := NewRecurringItemMongoRepository(mt.Coll)

		if _, err := repo.Save(context.Background(), sampleItem(), 2); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewRecurringItemMongoRepository(mt.Coll)

		deleted, err := repo.Delete(context.Background(), "space-1", "item-1")
		if err != nil || deleted {
			mt.Fatalf("expected nothing deleted, got %v / %v", deleted, err)
		}
	})

	mt.Run("list due across batches", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		second := documentD(mt.T)
		for i := range second {
			if second[i].Key == "_id" {
				second[i].Value = "item-2"
			}
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, documentD(mt.T)),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch, second),
		)
		repo := NewRecurringItemMongoRepository(mt.Coll)

		items, err := repo.ListDue(context.Background(), "space-1", calendar.MustParse("2024-04-30"))
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[1].ID != "item-2" {
			mt.Fatalf("unexpected items: %+v", items)
		}
	})

	mt.Run("find error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))
		repo := NewRecurringItemMongoRepository(mt.Coll)

		if _, err := repo.ListAllDue(context.Background(), calendar.MustParse("2024-04-30")); err == nil {
			mt.Fatalf("expected error")
		}
	})
}

func TestDueDocumentFilter(t *testing.T) {
	f := dueDocumentFilter(calendar.MustParse("2024-04-30"))
	if f["isActive"] != true {
		t.Fatalf("expected active-only filter")
	}
	if f["nextExecutionDate"].(bson.M)["$lte"] != "2024-04-30" {
		t.Fatalf("unexpected next date bound: %v", f["nextExecutionDate"])
	}
	if _, ok := f["ownerSpaceId"]; ok {
		t.Fatalf("cross-space filter must not bind a space")
	}
}

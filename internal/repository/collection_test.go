package repository

import (
	"context"
	"encoding/json"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/model"
	"reflect"
	"testing"
	"time"
)

func TestCollectionAllDefaultsEmpty(t *testing.T) {
	col := NewCollection[*model.User](kvstore.NewMemory(), KeyUsers)
	users := col.All(context.Background())
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty slice, got %#v", users)
	}
}

func TestCollectionAllOnCorruptDocument(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	if err := store.Set(ctx, KeyUsers, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	col := NewCollection[*model.User](store, KeyUsers)
	if users := col.All(ctx); len(users) != 0 {
		t.Fatalf("corrupt document should read as empty, got %d records", len(users))
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	col := NewCollection[*model.User](store, KeyUsers)

	want := &model.User{
		Name:            "Jo Lee",
		Email:           "jo@example.com",
		Password:        "Abcdef1!",
		Role:            model.Student,
		Wishlist:        []int64{},
		EnrolledCourses: []model.Enrollment{},
	}
	stored, err := col.Append(ctx, want)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if stored.ID == 0 {
		t.Fatalf("Append did not assign an ID")
	}

	got := col.All(ctx)
	if len(got) != 1 || !reflect.DeepEqual(got[0], stored) {
		t.Fatalf("round trip mismatch: want=%+v got=%+v", stored, got)
	}

	// the persisted bytes re-encode to the same document
	raw, _, _ := store.Get(ctx, KeyUsers)
	reencoded, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != string(reencoded) {
		t.Fatalf("JSON round trip not idempotent:\n%s\n%s", raw, reencoded)
	}
}

func TestNextIDMonotonicWithinMillisecond(t *testing.T) {
	col := NewCollection[*model.User](kvstore.NewMemory(), KeyUsers)
	frozen := time.UnixMilli(1700000000000)
	col.SetNowFunc(func() time.Time { return frozen })

	first := col.NextID()
	second := col.NextID()
	if first != 1700000000000 {
		t.Fatalf("first ID: want=1700000000000 got=%d", first)
	}
	if second != first+1 {
		t.Fatalf("same-millisecond IDs must increase: first=%d second=%d", first, second)
	}
}

func TestCollectionUpsertReplacesById(t *testing.T) {
	ctx := context.Background()
	col := NewCollection[*model.Course](kvstore.NewMemory(), KeyCourses)

	created, err := col.Append(ctx, &model.Course{Title: "Intro to Go", Status: model.Draft})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	updated := &model.Course{ID: created.ID, Title: "Intro to Go, 2nd ed", Status: model.Approved}
	if _, err := col.Upsert(ctx, updated); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	all := col.All(ctx)
	if len(all) != 1 {
		t.Fatalf("upsert must not append: got %d records", len(all))
	}
	if all[0].Title != "Intro to Go, 2nd ed" || all[0].Status != model.Approved {
		t.Fatalf("record not replaced: %+v", all[0])
	}
}

func TestCollectionUpsertAppendsUnknownID(t *testing.T) {
	ctx := context.Background()
	col := NewCollection[*model.Course](kvstore.NewMemory(), KeyCourses)

	stored, err := col.Upsert(ctx, &model.Course{Title: "Fresh course", Status: model.Draft})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if stored.ID == 0 {
		t.Fatalf("expected a fresh ID")
	}
	if len(col.All(ctx)) != 1 {
		t.Fatalf("expected one record")
	}
}

func TestEnsureExistsWritesEmptyArrayOnce(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	col := NewCollection[*model.Category](store, KeyCategories)

	if err := col.EnsureExists(ctx); err != nil {
		t.Fatalf("EnsureExists: %v", err)
	}
	raw, ok, _ := store.Get(ctx, KeyCategories)
	if !ok || string(raw) != "[]" {
		t.Fatalf("expected empty array document, got ok=%v raw=%s", ok, raw)
	}

	if _, err := col.Append(ctx, &model.Category{Name: "Programming"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := col.EnsureExists(ctx); err != nil {
		t.Fatalf("EnsureExists second: %v", err)
	}
	if len(col.All(ctx)) != 1 {
		t.Fatalf("EnsureExists clobbered existing data")
	}
}

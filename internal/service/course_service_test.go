package service

import (
	"context"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newCourseService(catalogURL string) (*CourseService, *repository.CourseRepository) {
	courses := repository.NewCourseRepository(kvstore.NewMemory())
	svc := NewCourseService(courses, config.CatalogConfig{URL: catalogURL}, config.MediaConfig{})
	return svc, courses
}

func validCourse() *model.Course {
	return &model.Course{
		Title:  "Intro to Go",
		Price:  49.0,
		Status: model.Draft,
		Lessons: []model.Lesson{
			{Title: "Basics", VideoURL: "https://cdn.example.com/1.mp4"},
		},
	}
}

func TestCourseAddValidation(t *testing.T) {
	svc, courses := newCourseService("")
	ctx := context.Background()

	bad := validCourse()
	bad.Title = "Go"
	_, err := svc.Add(ctx, bad)
	if !util.IsValidation(err) || err.Error() != "Title too short (min 5 chars)." {
		t.Fatalf("want title validation error, got %v", err)
	}
	if len(courses.All(ctx)) != 0 {
		t.Fatalf("invalid course must not be stored")
	}
}

func TestCourseAddCreates(t *testing.T) {
	svc, _ := newCourseService("")

	created, err := svc.Add(context.Background(), validCourse())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("no ID assigned")
	}
}

func TestCourseAddMergesByID(t *testing.T) {
	svc, _ := newCourseService("")
	ctx := context.Background()

	first := validCourse()
	first.Category = "Programming"
	created, err := svc.Add(ctx, first)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	update := validCourse()
	update.ID = created.ID
	update.Title = "Advanced Go"
	update.Price = 99.0
	update.Status = model.Approved
	merged, err := svc.Add(ctx, update)
	if err != nil {
		t.Fatalf("Add update: %v", err)
	}
	if merged.ID != created.ID {
		t.Fatalf("update changed the ID")
	}
	if merged.Title != "Advanced Go" || merged.Price != 99.0 || merged.Status != model.Approved {
		t.Fatalf("fields not merged: %#v", merged)
	}
	// empty category in the update leaves the stored one untouched
	if merged.Category != "Programming" {
		t.Fatalf("category: %q", merged.Category)
	}

	if all := svc.GetAll(ctx); len(all) != 1 {
		t.Fatalf("want 1 course, got %d", len(all))
	}
}

func TestCourseAddUnknownIDCreates(t *testing.T) {
	svc, _ := newCourseService("")

	ghost := validCourse()
	ghost.ID = 424242
	created, err := svc.Add(context.Background(), ghost)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID == 424242 {
		t.Fatalf("unknown ID must not be honored")
	}
}

func TestSeedFromCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "Intro to Go", "price": 49, "status": "approved", "lessons": []},
			{"title": "Web APIs", "price": 79, "lessons": []}
		]`))
	}))
	defer server.Close()

	svc, courses := newCourseService(server.URL)
	svc.SetHTTPClient(server.Client())
	ctx := context.Background()

	svc.SeedFromCatalog(ctx)

	all := courses.All(ctx)
	if len(all) != 2 {
		t.Fatalf("want 2 seeded courses, got %d", len(all))
	}
	if all[0].ID != 1 {
		t.Fatalf("explicit catalog ID not kept: %d", all[0].ID)
	}
	if all[1].ID == 0 || all[1].Status != model.Approved {
		t.Fatalf("missing fields not defaulted: %#v", all[1])
	}
}

func TestSeedFromCatalogSkipsNonEmpty(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc, courses := newCourseService(server.URL)
	svc.SetHTTPClient(server.Client())
	ctx := context.Background()

	if _, err := courses.Upsert(ctx, validCourse()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc.SeedFromCatalog(ctx)
	if calls != 0 {
		t.Fatalf("catalog fetched despite existing courses")
	}
	if len(courses.All(ctx)) != 1 {
		t.Fatalf("existing courses overwritten")
	}
}

func TestSeedFromCatalogFailureLeavesEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc, courses := newCourseService(server.URL)
	svc.SetHTTPClient(server.Client())
	ctx := context.Background()

	svc.SeedFromCatalog(ctx)
	if len(courses.All(ctx)) != 0 {
		t.Fatalf("failed seed must leave the table empty")
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/internal/validator"
	"learnhub_backend/pkg/logger"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type CourseService struct {
	courses     *repository.CourseRepository
	client      *http.Client
	catalogURL  string
	probeVideos bool
}

func NewCourseService(courses *repository.CourseRepository, catalog config.CatalogConfig, media config.MediaConfig) *CourseService {
	return &CourseService{
		courses:     courses,
		client:      &http.Client{Timeout: 10 * time.Second},
		catalogURL:  catalog.URL,
		probeVideos: media.ProbeVideos,
	}
}

// SetHTTPClient is a test hook.
func (s *CourseService) SetHTTPClient(c *http.Client) { s.client = c }

// Add validates and upserts: an input carrying the ID of an existing
// course overwrites that course's fields, anything else is appended
// under a fresh ID.
func (s *CourseService) Add(ctx context.Context, input *model.Course) (*model.Course, error) {
	if msg := validator.Course(input); msg != "" {
		return nil, util.Invalid(msg)
	}

	s.probeLessons(input)

	if input.ID != 0 {
		if existing, ok := s.courses.FindByID(ctx, input.ID); ok {
			existing.Title = input.Title
			existing.Price = input.Price
			existing.Status = input.Status
			existing.Lessons = input.Lessons
			if input.Category != "" {
				existing.Category = input.Category
			}
			return s.courses.Upsert(ctx, existing)
		}
		// unknown ID: treated as a create
		input.ID = 0
	}

	return s.courses.Upsert(ctx, input)
}

func (s *CourseService) GetByID(ctx context.Context, id int64) (*model.Course, bool) {
	return s.courses.FindByID(ctx, id)
}

func (s *CourseService) GetAll(ctx context.Context) []*model.Course {
	return s.courses.All(ctx)
}

// SeedFromCatalog loads the remote course catalog into an empty course
// table. A failure is logged and swallowed; the table stays empty and a
// later start retries.
func (s *CourseService) SeedFromCatalog(ctx context.Context) {
	if s.catalogURL == "" || len(s.courses.All(ctx)) > 0 {
		return
	}

	courses, err := s.fetchCatalog(ctx)
	if err != nil {
		logger.Log.Warn("course catalog fetch failed", zap.Error(err))
		return
	}

	for _, c := range courses {
		if c.ID == 0 {
			c.ID = s.courses.Col.NextID()
		}
		if c.Status == "" {
			c.Status = model.Approved
		}
	}
	if err := s.courses.SaveAll(ctx, courses); err != nil {
		logger.Log.Error("course catalog seed failed", zap.Error(err))
		return
	}
	logger.Log.Info("course catalog seeded", zap.Int("courses", len(courses)))
}

func (s *CourseService) fetchCatalog(ctx context.Context) ([]*model.Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.catalogURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var courses []*model.Course
	if err := json.Unmarshal(body, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// probeLessons records the duration of local lesson videos. Best effort,
// off by default; remote URLs are skipped.
func (s *CourseService) probeLessons(course *model.Course) {
	if !s.probeVideos {
		return
	}
	for i := range course.Lessons {
		url := course.Lessons[i].VideoURL
		if url == "" || strings.Contains(url, "://") {
			continue
		}
		duration, err := util.ProbeVideoDuration(url)
		if err != nil {
			logger.Log.Debug("lesson video probe failed", zap.String("video", url), zap.Error(err))
			continue
		}
		course.Lessons[i].DurationSeconds = duration
	}
}

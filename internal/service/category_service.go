package service

import (
	"context"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
)

type CategoryService struct {
	categories *repository.CategoryRepository
	courses    *repository.CourseRepository
}

func NewCategoryService(categories *repository.CategoryRepository, courses *repository.CourseRepository) *CategoryService {
	return &CategoryService{categories: categories, courses: courses}
}

func (s *CategoryService) GetAll(ctx context.Context) []*model.Category {
	return s.categories.All(ctx)
}

// SyncFromCourses derives category records from the categories named on
// courses, creating the ones not present yet. Returns how many were
// created.
func (s *CategoryService) SyncFromCourses(ctx context.Context) (int, error) {
	created := 0
	for _, course := range s.courses.All(ctx) {
		if course.Category == "" {
			continue
		}
		if _, ok := s.categories.FindByName(ctx, course.Category); ok {
			continue
		}
		if _, err := s.categories.Create(ctx, &model.Category{Name: course.Category}); err != nil {
			return created, err
		}
		created++
	}
	if created > 0 {
		logger.Log.Info("categories synced from courses", zap.Int("created", created))
	}
	return created, nil
}

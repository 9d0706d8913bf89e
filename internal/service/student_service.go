package service

import (
	"context"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
)

type StudentService struct {
	users       *repository.UserRepository
	courses     *repository.CourseRepository
	defaultPaid bool
}

func NewStudentService(users *repository.UserRepository, courses *repository.CourseRepository, defaultPaid bool) *StudentService {
	return &StudentService{
		users:       users,
		courses:     courses,
		defaultPaid: defaultPaid,
	}
}

// Enroll appends a fresh enrollment for the course, rejecting unknown
// users and duplicate enrollments. The initial payment flag comes from
// configuration.
func (s *StudentService) Enroll(ctx context.Context, userID, courseID int64) (*model.Enrollment, error) {
	users := s.users.All(ctx)

	var user *model.User
	for _, u := range users {
		if u.ID == userID {
			user = u
			break
		}
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	if user.EnrollmentFor(courseID) != nil {
		return nil, util.ErrAlreadyEnrolled
	}

	enrollment := model.Enrollment{
		CourseID:         courseID,
		Progress:         0,
		IsPaid:           s.defaultPaid,
		CompletedLessons: []int{},
	}
	user.EnrolledCourses = append(user.EnrolledCourses, enrollment)

	if err := s.users.SaveAll(ctx, users); err != nil {
		return nil, err
	}
	return &user.EnrolledCourses[len(user.EnrolledCourses)-1], nil
}

// CompleteLesson marks the positional lesson done (idempotent) and
// recomputes progress as the percentage of the course's lessons
// completed.
func (s *StudentService) CompleteLesson(ctx context.Context, userID, courseID int64, lessonIdx int) (*model.Enrollment, error) {
	course, ok := s.courses.FindByID(ctx, courseID)
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	if lessonIdx < 0 || lessonIdx >= len(course.Lessons) {
		return nil, util.Invalid("No such lesson in this course.")
	}

	users := s.users.All(ctx)

	var user *model.User
	for _, u := range users {
		if u.ID == userID {
			user = u
			break
		}
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	enrollment := user.EnrollmentFor(courseID)
	if enrollment == nil {
		return nil, util.ErrNotEnrolled
	}

	done := false
	for _, idx := range enrollment.CompletedLessons {
		if idx == lessonIdx {
			done = true
			break
		}
	}
	if !done {
		enrollment.CompletedLessons = append(enrollment.CompletedLessons, lessonIdx)
	}
	enrollment.Progress = len(enrollment.CompletedLessons) * 100 / len(course.Lessons)

	if err := s.users.SaveAll(ctx, users); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ToggleWishlist adds or removes the course from the user's wishlist and
// reports whether it is now present.
func (s *StudentService) ToggleWishlist(ctx context.Context, userID, courseID int64) (bool, error) {
	users := s.users.All(ctx)

	var user *model.User
	for _, u := range users {
		if u.ID == userID {
			user = u
			break
		}
	}
	if user == nil {
		return false, util.ErrUserNotFound
	}

	present := false
	kept := user.Wishlist[:0]
	for _, id := range user.Wishlist {
		if id == courseID {
			present = true
			continue
		}
		kept = append(kept, id)
	}
	if present {
		user.Wishlist = kept
	} else {
		user.Wishlist = append(user.Wishlist, courseID)
	}

	if err := s.users.SaveAll(ctx, users); err != nil {
		return false, err
	}
	return !present, nil
}

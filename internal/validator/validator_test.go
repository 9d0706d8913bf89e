package validator

import (
	"learnhub_backend/internal/model"
	"strings"
	"testing"
)

func validUser() *model.User {
	return &model.User{
		Name:     "Jo Lee",
		Email:    "jo@example.com",
		Password: "Abcdef1!",
		Role:     model.Student,
	}
}

func noneBlocked(string) bool { return false }

func TestUserValid(t *testing.T) {
	if msg := User(validUser(), noneBlocked); msg != "" {
		t.Fatalf("expected valid, got %q", msg)
	}
}

func TestUserNormalizes(t *testing.T) {
	u := validUser()
	u.Name = "  Jo Lee "
	u.Email = " Jo@Example.COM "
	if msg := User(u, noneBlocked); msg != "" {
		t.Fatalf("expected valid, got %q", msg)
	}
	if u.Name != "Jo Lee" {
		t.Fatalf("name not trimmed: %q", u.Name)
	}
	if u.Email != "jo@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
}

func TestUserRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.User)
		wantMsg string
	}{
		{"short name", func(u *model.User) { u.Name = "Jo" }, "Invalid name"},
		{"name with digits", func(u *model.User) { u.Name = "Jo 2 Lee" }, "Invalid name"},
		{"accented name ok", func(u *model.User) { u.Name = "Renée Passéra" }, ""},
		{"bad email", func(u *model.User) { u.Email = "jo@nodot" }, "Invalid email"},
		{"short password", func(u *model.User) { u.Password = "Ab1!" }, "Password too weak"},
		{"no uppercase", func(u *model.User) { u.Password = "abcdef1!" }, "Password too weak"},
		{"no digit", func(u *model.User) { u.Password = "Abcdefg!" }, "Password too weak"},
		{"no symbol", func(u *model.User) { u.Password = "Abcdefg1" }, "Password too weak"},
		{"password outside charset", func(u *model.User) { u.Password = "Abcdef1! " }, "Password too weak"},
		{"bad role", func(u *model.User) { u.Role = "teacher" }, "Invalid role"},
	}

	for _, tc := range cases {
		u := validUser()
		tc.mutate(u)
		msg := User(u, noneBlocked)
		if tc.wantMsg == "" {
			if msg != "" {
				t.Fatalf("%s: expected valid, got %q", tc.name, msg)
			}
			continue
		}
		if !strings.Contains(msg, tc.wantMsg) {
			t.Fatalf("%s: want message containing %q, got %q", tc.name, tc.wantMsg, msg)
		}
	}
}

func TestUserBlockedDomain(t *testing.T) {
	u := validUser()
	u.Email = "jo@mailinator.com"
	msg := User(u, func(domain string) bool { return domain == "mailinator.com" })
	if !strings.Contains(msg, "@mailinator.com") {
		t.Fatalf("expected blocked-domain message, got %q", msg)
	}
}

func TestCourseRules(t *testing.T) {
	valid := func() *model.Course {
		return &model.Course{
			Title:  "Intro to Go",
			Price:  49.99,
			Status: model.Approved,
			Lessons: []model.Lesson{
				{Title: "Basics", VideoURL: "https://cdn.example.com/1.mp4"},
			},
		}
	}

	if msg := Course(valid()); msg != "" {
		t.Fatalf("expected valid, got %q", msg)
	}

	c := valid()
	c.Title = "Go"
	if msg := Course(c); !strings.Contains(msg, "Title too short") {
		t.Fatalf("short title: got %q", msg)
	}

	c = valid()
	c.Price = -1
	if msg := Course(c); !strings.Contains(msg, "Price") {
		t.Fatalf("negative price: got %q", msg)
	}

	c = valid()
	c.Status = "published"
	if msg := Course(c); !strings.Contains(msg, "Invalid status") {
		t.Fatalf("bad status: got %q", msg)
	}

	c = valid()
	c.Lessons = append(c.Lessons, model.Lesson{Title: "ok", VideoURL: "x"})
	if msg := Course(c); msg != "Lesson 2 title is invalid." {
		t.Fatalf("lesson title: got %q", msg)
	}

	c = valid()
	c.Lessons[0].VideoURL = ""
	if msg := Course(c); msg != "Lesson 1 missing video URL." {
		t.Fatalf("lesson video: got %q", msg)
	}
}

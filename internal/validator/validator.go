// Package validator holds the format and business rules applied to
// candidate records. Rules run in a fixed order and the first failure's
// message is returned; an empty message means the record passed.
package validator

import (
	"fmt"
	"learnhub_backend/internal/model"
	"regexp"
	"strings"
	"unicode"
)

var (
	// letters (incl. latin-1 diacritics), spaces, apostrophes, hyphens
	namePattern  = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{00FF}\s'-]{3,50}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// password charset; the strength classes are checked separately since
	// Go's regexp has no lookahead
	passwordChars   = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	passwordSymbols = "@$!%*?&"
)

func strongPassword(pw string) bool {
	if !passwordChars.MatchString(pw) {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// User normalizes name and email in place, then validates. blocked
// reports whether an email domain is on the active denylist.
func User(u *model.User, blocked func(domain string) bool) string {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if !namePattern.MatchString(u.Name) {
		return "Invalid name. Use letters only (3-50 chars)."
	}
	if !emailPattern.MatchString(u.Email) {
		return "Invalid email format."
	}
	if !strongPassword(u.Password) {
		return "Password too weak. Needs 8+ chars, uppercase, lowercase, number & symbol."
	}
	if !model.ValidRole(u.Role) {
		return "Invalid role."
	}

	domain := u.Email[strings.IndexByte(u.Email, '@')+1:]
	if blocked != nil && blocked(domain) {
		return fmt.Sprintf("The domain '@%s' is not allowed. Please use a real email provider (Gmail, Outlook, Yahoo, etc.).", domain)
	}

	return ""
}

func Course(c *model.Course) string {
	if len(c.Title) < 5 {
		return "Title too short (min 5 chars)."
	}
	if c.Price < 0 {
		return "Price must be 0 or higher."
	}
	if !model.ValidStatus(c.Status) {
		return "Invalid status."
	}
	for i, lesson := range c.Lessons {
		if len(lesson.Title) < 3 {
			return fmt.Sprintf("Lesson %d title is invalid.", i+1)
		}
		if lesson.VideoURL == "" {
			return fmt.Sprintf("Lesson %d missing video URL.", i+1)
		}
	}
	return ""
}

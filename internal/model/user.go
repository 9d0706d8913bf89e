package model

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

func ValidRole(r UserRole) bool {
	return r == Student || r == Admin
}

// Enrollment links a user to a course. A user holds at most one
// enrollment per course.
type Enrollment struct {
	CourseID         int64 `json:"courseId"`
	Progress         int   `json:"progress"`
	IsPaid           bool  `json:"isPaid"`
	CompletedLessons []int `json:"completedLessons"`
}

// swagger:model User
type User struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Password        string       `json:"password"` // stored verbatim, no hashing in this system
	Role            UserRole     `json:"role"`
	Wishlist        []int64      `json:"wishlist"`
	EnrolledCourses []Enrollment `json:"enrolledCourses"`
}

func (u *User) GetID() int64   { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }

// EnrollmentFor returns the enrollment for courseID, or nil.
func (u *User) EnrollmentFor(courseID int64) *Enrollment {
	for i := range u.EnrolledCourses {
		if u.EnrolledCourses[i].CourseID == courseID {
			return &u.EnrolledCourses[i]
		}
	}
	return nil
}

package model

type CourseStatus string

const (
	Draft    CourseStatus = "draft"
	Approved CourseStatus = "approved"
)

func ValidStatus(s CourseStatus) bool {
	return s == Draft || s == Approved
}

// Lesson has no identifier of its own; it is referenced by position
// within the course.
type Lesson struct {
	Title           string  `json:"title"`
	VideoURL        string  `json:"videoUrl"`
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
}

// swagger:model Course
type Course struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Price    float64      `json:"price"`
	Status   CourseStatus `json:"status"`
	Category string       `json:"category,omitempty"`
	Lessons  []Lesson     `json:"lessons"`
}

func (c *Course) GetID() int64   { return c.ID }
func (c *Course) SetID(id int64) { c.ID = id }

package model

// Feedback is a course review. At most one per (user, course) pair.
// Timestamp is unix milliseconds, like record IDs.
//
// swagger:model Feedback
type Feedback struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	CourseID  int64  `json:"courseId"`
	Rating    int    `json:"rating"` // 1-5
	Comment   string `json:"comment"`
	Timestamp int64  `json:"timestamp"`
}

func (f *Feedback) GetID() int64   { return f.ID }
func (f *Feedback) SetID(id int64) { f.ID = id }

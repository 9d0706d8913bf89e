package repository

// Persisted document keys. Collection keys map to JSON arrays of
// records; the session key maps to a single user object or is absent.
const (
	KeyUsers              = "users"
	KeyCourses            = "courses"
	KeyCategories         = "categories"
	KeyFeedback           = "feedback"
	KeySession            = "current_user"
	KeyBlocklist          = "email_blocklist"
	KeyBlocklistTimestamp = "blocklist_timestamp"
)

package dto

// Session is the persisted login state the clerk screens read between
// launches.
type Session struct {
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserRole  string `json:"user_role"`
}

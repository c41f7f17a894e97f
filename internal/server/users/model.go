package users

import "time"

// User is a registered account. Rows are created at registration and never
// deleted by the service itself.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

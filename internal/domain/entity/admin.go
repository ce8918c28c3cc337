package entity

import "time"

// Admin is a back-office account used for the admin login.
type Admin struct {
	ID        string
	Username  string
	Password  string // stored as provided; see DESIGN.md
	Role      string
	CreatedAt time.Time
}

package models

import "time"

type Note struct {
	ID          int64
	Name        string
	Description string
	Urgency     string
	UserID      int64
	CreatedAt   time.Time
}

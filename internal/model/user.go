package model

import "time"

// User is a staff account. PasswordHash is a bcrypt hash and never leaves
// the process.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Role         string    `gorm:"size:32;not null" json:"role"`
	PhotoURL     string    `gorm:"size:512" json:"photoUrl"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

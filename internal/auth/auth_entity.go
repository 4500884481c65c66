package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the slice of the users table needed to authenticate.
type User struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name      string     `gorm:"column:name"`
	Email     string     `gorm:"column:email"`
	Password  string     `gorm:"column:password"`
	Role      string     `gorm:"column:role"`
	ManagerID *uuid.UUID `gorm:"column:manager_id"`
	LastLogin *time.Time `gorm:"column:last_login"`
}

func (User) TableName() string {
	return "users"
}

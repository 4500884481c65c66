package attendance

import (
	"time"

	"go-leave/internal/domain"

	"github.com/google/uuid"
)

// Member is the read side of the users table used by the dashboards.
type Member struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	Name      string      `gorm:"column:name"`
	Email     string      `gorm:"column:email"`
	Role      domain.Role `gorm:"column:role"`
	ManagerID *uuid.UUID  `gorm:"column:manager_id"`
	LastLogin *time.Time  `gorm:"column:last_login"`
}

func (Member) TableName() string {
	return "users"
}

type LeaveRecord struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID          `gorm:"column:user_id;type:uuid"`
	Type      domain.LeaveType   `gorm:"column:type"`
	StartDate time.Time          `gorm:"column:start_date;type:date"`
	EndDate   time.Time          `gorm:"column:end_date;type:date"`
	Duration  int                `gorm:"column:duration"`
	Status    domain.LeaveStatus `gorm:"column:status"`
	CreatedAt time.Time          `gorm:"column:created_at"`
}

func (LeaveRecord) TableName() string {
	return "leaves"
}

// RoleDays is one row of the per-role duration aggregate.
type RoleDays struct {
	Role domain.Role `gorm:"column:role"`
	Days int         `gorm:"column:days"`
}

// MonthCount is one row of the per-month leave count aggregate.
type MonthCount struct {
	Month int `gorm:"column:month"`
	Count int `gorm:"column:count"`
}

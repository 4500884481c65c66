package user

import (
	"time"

	"go-leave/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	DefaultPaidBalance = decimal.NewFromInt(12)
	DefaultSickBalance = decimal.NewFromInt(8)
)

type User struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string      `gorm:"column:name;type:varchar(255);not null"`
	Email     string      `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password  string      `gorm:"column:password;type:text;not null"`
	Role      domain.Role `gorm:"column:role;type:varchar(20);not null;default:EMPLOYEE;index"`
	ManagerID *uuid.UUID  `gorm:"column:manager_id;type:uuid;index"`

	LeaveBalancePaid decimal.Decimal `gorm:"column:leave_balance_paid;type:numeric(6,2);not null;default:12"`
	LeaveBalanceSick decimal.Decimal `gorm:"column:leave_balance_sick;type:numeric(6,2);not null;default:8"`

	LastLogin           *time.Time `gorm:"column:last_login"`
	LastLeaveApprovedAt *time.Time `gorm:"column:last_leave_approved_at"`
	LastLeaveRejectedAt *time.Time `gorm:"column:last_leave_rejected_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Manager *User `gorm:"foreignKey:ManagerID;references:ID;constraint:OnDelete:SET NULL"`
}

func (User) TableName() string {
	return "users"
}

package leave

import (
	"time"

	"go-leave/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Leave struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_leaves_user_dates"`

	Type      domain.LeaveType `gorm:"column:type;type:varchar(20);not null"`
	StartDate time.Time        `gorm:"column:start_date;type:date;not null;index:idx_leaves_user_dates"`
	EndDate   time.Time        `gorm:"column:end_date;type:date;not null;index:idx_leaves_user_dates"`
	Duration  int              `gorm:"column:duration;type:int;not null;default:1"`
	Reason    string           `gorm:"column:reason;type:text;not null"`

	Status         domain.LeaveStatus `gorm:"column:status;type:varchar(40);not null;default:PENDING;index:idx_leaves_status"`
	ManagerComment *string            `gorm:"column:manager_comment;type:text"`
	HRComment      *string            `gorm:"column:hr_comment;type:text"`
	DecidedBy      *uuid.UUID         `gorm:"column:decided_by;type:uuid"`
	DecidedAt      *time.Time         `gorm:"column:decided_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Owner *Owner `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Leave) TableName() string {
	return "leaves"
}

// Owner is the read side of the users table that leave rules need.
type Owner struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name             string          `gorm:"column:name"`
	Email            string          `gorm:"column:email"`
	Role             domain.Role     `gorm:"column:role"`
	ManagerID        *uuid.UUID      `gorm:"column:manager_id"`
	LeaveBalancePaid decimal.Decimal `gorm:"column:leave_balance_paid"`
	LeaveBalanceSick decimal.Decimal `gorm:"column:leave_balance_sick"`
}

func (Owner) TableName() string {
	return "users"
}

// ReportsTo reports whether the owner is an employee managed by managerID.
func (o *Owner) ReportsTo(managerID string) bool {
	return o != nil && o.Role == domain.RoleEmployee && o.ManagerID != nil && o.ManagerID.String() == managerID
}

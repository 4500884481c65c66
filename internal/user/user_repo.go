package user

import (
	"context"
	"database/sql"
	"time"

	"go-leave/internal/domain"

	"gorm.io/gorm"
)

// columns accepted by Repository.Update
const (
	ColumnName             = "name"
	ColumnPassword         = "password"
	ColumnRole             = "role"
	ColumnManagerID        = "manager_id"
	ColumnLeaveBalancePaid = "leave_balance_paid"
	ColumnLeaveBalanceSick = "leave_balance_sick"
)

type ListFilter struct {
	Roles []domain.Role
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter ListFilter) ([]User, error)
	FindByManager(ctx context.Context, managerID string) ([]User, error)
	Update(ctx context.Context, u *User, columns []string) error
	ClearManagerForReports(ctx context.Context, managerID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn runs statements on the bound *sql.Tx when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Preload("Manager").
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.conn(ctx).First(&u, "LOWER(email) = LOWER(?)", email).Error
	return &u, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]User, error) {
	var users []User
	db := r.conn(ctx).Preload("Manager").Order("name ASC")
	if len(filter.Roles) > 0 {
		db = db.Where("role IN ?", filter.Roles)
	}
	err := db.Find(&users).Error
	return users, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]User, error) {
	var users []User
	err := r.conn(ctx).
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// Update writes only columns (plus updated_at) so concurrent writers of other
// columns, e.g. the approver audit stamps, are left alone.
func (r *repository) Update(ctx context.Context, u *User, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	u.UpdatedAt = time.Now().UTC()
	res := r.conn(ctx).
		Model(&User{}).
		Where("id = ?", u.ID).
		Select(append(append([]string{}, columns...), "updated_at")).
		Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ClearManagerForReports(ctx context.Context, managerID string) error {
	return r.conn(ctx).
		Model(&User{}).
		Where("manager_id = ?", managerID).
		Updates(map[string]any{"manager_id": nil, "updated_at": time.Now().UTC()}).Error
}

package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-leave/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrLeaveChanged: the row no longer has the status the caller read, or it was deleted.
var ErrLeaveChanged = errors.New("leave was changed by another request")

// columns written by Update; owner, user_id and created_at never change after Create
var updatableColumns = []string{
	"type", "start_date", "end_date", "duration", "reason",
	"status", "manager_comment", "hr_comment", "decided_by", "decided_at", "updated_at",
}

// ListFilter narrows List. Zero values mean "no restriction".
type ListFilter struct {
	UserIDs    []string
	ManagerID  string
	OwnerRoles []domain.Role
	Statuses   []domain.LeaveStatus
	ActiveOn   *time.Time
	StartFrom  *time.Time
	StartTo    *time.Time
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindOwner(ctx context.Context, userID string) (*Owner, error)
	List(ctx context.Context, filter ListFilter) ([]Leave, error)
	Update(ctx context.Context, l *Leave, expected domain.LeaveStatus) error
	Delete(ctx context.Context, id string) error
	CountApprovedInRange(ctx context.Context, userID string, from, to time.Time) (int, error)
	HasOverlappingPeriod(ctx context.Context, userID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	TouchApproverAudit(ctx context.Context, approverID string, status domain.LeaveStatus, at time.Time) error
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Omit("Owner").Create(l).Error
}

// FindByID locks the row (SELECT ... FOR UPDATE) when the repository is bound to a tx,
// so a concurrent edit or decision waits until this tx finishes.
func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	db := r.conn(ctx)
	if r.tx != nil {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var l Leave
	err := db.Preload("Owner").First(&l, "leaves.id = ?", id).Error
	return &l, err
}

func (r *repository) FindOwner(ctx context.Context, userID string) (*Owner, error) {
	var o Owner
	err := r.conn(ctx).First(&o, "id = ?", userID).Error
	return &o, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Leave, error) {
	db := r.conn(ctx).Model(&Leave{}).Preload("Owner")

	if filter.ManagerID != "" || len(filter.OwnerRoles) > 0 {
		db = db.Joins("JOIN users ON users.id = leaves.user_id")
		if filter.ManagerID != "" {
			db = db.Where("users.manager_id = ?", filter.ManagerID)
		}
		if len(filter.OwnerRoles) > 0 {
			db = db.Where("users.role IN ?", filter.OwnerRoles)
		}
	}
	if len(filter.UserIDs) > 0 {
		db = db.Where("leaves.user_id IN ?", filter.UserIDs)
	}
	if len(filter.Statuses) > 0 {
		db = db.Where("leaves.status IN ?", filter.Statuses)
	}
	if filter.ActiveOn != nil {
		db = db.Where("leaves.start_date <= ? AND leaves.end_date >= ?", *filter.ActiveOn, *filter.ActiveOn)
	}
	if filter.StartFrom != nil {
		db = db.Where("leaves.start_date >= ?", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		db = db.Where("leaves.start_date <= ?", *filter.StartTo)
	}

	var leaves []Leave
	err := db.Order("leaves.created_at DESC").Find(&leaves).Error
	return leaves, err
}

// Update writes l only while the stored status still equals expected.
// It never inserts; a missing or already moved row yields ErrLeaveChanged.
func (r *repository) Update(ctx context.Context, l *Leave, expected domain.LeaveStatus) error {
	l.UpdatedAt = time.Now()
	res := r.conn(ctx).
		Model(&Leave{}).
		Where("id = ? AND status = ?", l.ID, expected).
		Select(updatableColumns).
		Updates(l)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLeaveChanged
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Leave{}, "id = ?", id).Error
}

// CountApprovedInRange counts approved leaves overlapping [from, to].
func (r *repository) CountApprovedInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Leave{}).
		Where("user_id = ?", userID).
		Where("status = ?", domain.StatusApproved).
		Where("start_date <= ? AND end_date >= ?", to, from).
		Count(&count).Error
	return int(count), err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, userID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.conn(ctx).
		Model(&Leave{}).
		Where("user_id = ?", userID).
		Where("status <> ?", domain.StatusRejected).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

// TouchApproverAudit stamps the approver's last approval or rejection time.
func (r *repository) TouchApproverAudit(ctx context.Context, approverID string, status domain.LeaveStatus, at time.Time) error {
	column := "last_leave_approved_at"
	if status == domain.StatusRejected {
		column = "last_leave_rejected_at"
	}
	res := r.conn(ctx).
		Table("users").
		Where("id = ?", approverID).
		Updates(map[string]any{column: at, "updated_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

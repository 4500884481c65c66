package attendance

import (
	"context"
	"time"

	"go-leave/internal/domain"

	"gorm.io/gorm"
)

type LeaveFilter struct {
	Statuses  []domain.LeaveStatus
	ActiveOn  *time.Time
	StartFrom *time.Time
	StartTo   *time.Time
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	ListMembers(ctx context.Context, p Population) ([]Member, error)
	ListLeaves(ctx context.Context, p Population, filter LeaveFilter) ([]LeaveRecord, error)
	SumApprovedDaysByRole(ctx context.Context, p Population, r DateRange) ([]RoleDays, error)
	CountByMonth(ctx context.Context, p Population, year int) ([]MonthCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// scopeMembers restricts a query on users to the population.
func scopeMembers(db *gorm.DB, p Population) *gorm.DB {
	if len(p.Roles) > 0 {
		db = db.Where("users.role IN ?", p.Roles)
	}
	if p.Restricted {
		db = db.Where("users.id IN ?", p.UserIDs)
	}
	return db
}

func (r *repository) ListMembers(ctx context.Context, p Population) ([]Member, error) {
	var rows []Member
	err := scopeMembers(r.db.WithContext(ctx).Model(&Member{}), p).
		Order("users.name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) leaves(ctx context.Context, p Population) *gorm.DB {
	return scopeMembers(
		r.db.WithContext(ctx).
			Model(&LeaveRecord{}).
			Joins("JOIN users ON users.id = leaves.user_id"),
		p,
	)
}

func (r *repository) ListLeaves(ctx context.Context, p Population, filter LeaveFilter) ([]LeaveRecord, error) {
	q := r.leaves(ctx, p).Select("leaves.*")
	if len(filter.Statuses) > 0 {
		q = q.Where("leaves.status IN ?", filter.Statuses)
	}
	if filter.ActiveOn != nil {
		day := filter.ActiveOn.Format("2006-01-02")
		q = q.Where("leaves.start_date <= ? AND leaves.end_date >= ?", day, day)
	}
	if filter.StartFrom != nil {
		q = q.Where("leaves.start_date >= ?", filter.StartFrom.Format("2006-01-02"))
	}
	if filter.StartTo != nil {
		q = q.Where("leaves.start_date <= ?", filter.StartTo.Format("2006-01-02"))
	}

	var rows []LeaveRecord
	err := q.Order("leaves.start_date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) SumApprovedDaysByRole(ctx context.Context, p Population, dr DateRange) ([]RoleDays, error) {
	q := r.leaves(ctx, p).
		Select("users.role AS role, COALESCE(SUM(leaves.duration), 0) AS days").
		Where("leaves.status = ?", domain.StatusApproved).
		Where("leaves.start_date IS NOT NULL AND leaves.end_date IS NOT NULL")
	if dr.Bounded() {
		// overlap, not containment
		q = q.Where("leaves.start_date <= ? AND leaves.end_date >= ?",
			dr.To.Format("2006-01-02"), dr.From.Format("2006-01-02"))
	}

	var rows []RoleDays
	err := q.Group("users.role").Scan(&rows).Error
	return rows, err
}

func (r *repository) CountByMonth(ctx context.Context, p Population, year int) ([]MonthCount, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var rows []MonthCount
	err := r.leaves(ctx, p).
		Select("CAST(EXTRACT(MONTH FROM leaves.start_date) AS INTEGER) AS month, COUNT(leaves.id) AS count").
		Where("leaves.start_date >= ? AND leaves.start_date < ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

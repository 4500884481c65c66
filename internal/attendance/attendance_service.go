package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	attendanceerrors "go-leave/internal/attendance/errors"
	"go-leave/internal/domain"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dateLayout = "2006-01-02"

	summaryCachePrefix = "analytics:leave-summary:"
	summaryCacheTTL    = 5 * time.Minute

	// LateHour is the local hour at or after which a first login counts as late.
	LateHour       = 10
	upcomingWindow = 7

	summarySheet = "Leave Summary"
)

// TeamResolver exposes the manager -> reports index.
type TeamResolver interface {
	TeamMemberIDs(ctx context.Context, managerID string) ([]string, error)
}

// Population is the set of users an actor may see on the dashboards.
type Population struct {
	Scope      string
	Roles      []domain.Role
	UserIDs    []string
	Restricted bool
}

// Empty is true for a restricted population without members, e.g. a manager with no reports.
func (p Population) Empty() bool {
	return p.Restricted && len(p.UserIDs) == 0
}

type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) Bounded() bool {
	return r.From != nil && r.To != nil
}

func (r DateRange) key() string {
	if !r.Bounded() {
		return "all"
	}
	return r.From.Format(dateLayout) + "_" + r.To.Format(dateLayout)
}

// ParseDateRange accepts either both bounds or neither.
func ParseDateRange(from, to string) (DateRange, error) {
	if from == "" && to == "" {
		return DateRange{}, nil
	}
	if from == "" || to == "" {
		return DateRange{}, attendanceerrors.ErrIncompleteRange
	}
	f, err := ParseDate(from)
	if err != nil {
		return DateRange{}, err
	}
	t, err := ParseDate(to)
	if err != nil {
		return DateRange{}, err
	}
	if f.After(t) {
		return DateRange{}, attendanceerrors.ErrInvalidRange
	}
	return DateRange{From: &f, To: &t}, nil
}

func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDate
	}
	return t, nil
}

func SummaryCacheKey(scope string, r DateRange) string {
	return summaryCachePrefix + scope + ":" + r.key()
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	DailyAttendance(ctx context.Context, actor domain.Actor, onDate time.Time) ([]DailyAttendanceEntry, error)
	LeaveDaySummary(ctx context.Context, actor domain.Actor, r DateRange) (LeaveSummary, error)
	LateComers(ctx context.Context, actor domain.Actor, onDate time.Time) ([]LateComer, error)
	TeamDashboard(ctx context.Context, actor domain.Actor, now time.Time) (TeamDashboard, error)
	MonthlyTrends(ctx context.Context, actor domain.Actor, year int) ([]MonthlyTrend, error)
	ExportLeaveDaySummary(ctx context.Context, actor domain.Actor, r DateRange) ([]byte, error)
	InvalidateLeaveSummary(ctx context.Context) error
}

type service struct {
	repo   Repository
	team   TeamResolver
	rdb    *redis.Client
	sf     *singleflight.Group
	loc    *time.Location
	logger *zap.Logger
}

func NewService(repo Repository, team TeamResolver, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:   repo,
		team:   team,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		loc:    time.Local,
		logger: l,
	}
}

func (s *service) population(ctx context.Context, actor domain.Actor) (Population, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return Population{Scope: "admin", Roles: domain.AllRoles()}, nil
	case domain.RoleHR:
		return Population{
			Scope: "hr",
			Roles: []domain.Role{domain.RoleEmployee, domain.RoleManager, domain.RoleHR},
		}, nil
	case domain.RoleManager:
		ids, err := s.team.TeamMemberIDs(ctx, actor.ID)
		if err != nil {
			s.logger.Error("resolve team failed", zap.String("manager_id", actor.ID), zap.Error(err))
			return Population{}, err
		}
		return Population{
			Scope:      "manager:" + actor.ID,
			Roles:      []domain.Role{domain.RoleEmployee},
			UserIDs:    ids,
			Restricted: true,
		}, nil
	}
	return Population{}, attendanceerrors.ErrNoPopulation
}

func (s *service) DailyAttendance(ctx context.Context, actor domain.Actor, onDate time.Time) ([]DailyAttendanceEntry, error) {
	p, err := s.population(ctx, actor)
	if err != nil {
		return nil, err
	}
	if p.Empty() {
		return []DailyAttendanceEntry{}, nil
	}

	day := truncateDate(onDate)
	members, err := s.repo.ListMembers(ctx, p)
	if err != nil {
		return nil, err
	}
	leaves, err := s.repo.ListLeaves(ctx, p, LeaveFilter{
		Statuses: []domain.LeaveStatus{domain.StatusApproved},
		ActiveOn: &day,
	})
	if err != nil {
		return nil, err
	}

	absent := make(map[uuid.UUID]struct{}, len(leaves))
	for _, l := range leaves {
		if l.Status == domain.StatusApproved && covers(l, day) {
			absent[l.UserID] = struct{}{}
		}
	}

	out := make([]DailyAttendanceEntry, len(members))
	for i, m := range members {
		status := StatusPresent
		if _, ok := absent[m.ID]; ok {
			status = StatusAbsent
		}
		out[i] = DailyAttendanceEntry{
			UserID: m.ID.String(),
			Name:   m.Name,
			Role:   string(m.Role),
			Status: status,
		}
	}

	s.logger.Debug("daily attendance computed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("scope", p.Scope),
		zap.String("date", day.Format(dateLayout)),
		zap.Int("members", len(members)),
		zap.Int("absent", len(absent)),
	)
	return out, nil
}

// LeaveDaySummary sums approved leave days per owner role. Results are cached per
// scope and range; concurrent misses for the same key share one query.
func (s *service) LeaveDaySummary(ctx context.Context, actor domain.Actor, r DateRange) (LeaveSummary, error) {
	p, err := s.population(ctx, actor)
	if err != nil {
		return nil, err
	}
	cacheKey := SummaryCacheKey(p.Scope, r)

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached LeaveSummary
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("leave summary cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		summary := make(LeaveSummary, len(p.Roles))
		for _, role := range p.Roles {
			summary[string(role)] = 0
		}
		if !p.Empty() {
			rows, err := s.repo.SumApprovedDaysByRole(ctx, p, r)
			if err != nil {
				return nil, err
			}
			for _, row := range rows {
				summary[string(row.Role)] += row.Days
			}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(summary); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, summaryCacheTTL).Err(); err != nil {
					s.logger.Warn("leave summary cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return summary, nil
	})
	if err != nil {
		s.logger.Error("leave summary query failed", zap.String("scope", p.Scope), zap.Error(err))
		return nil, err
	}
	return v.(LeaveSummary), nil
}

// InvalidateLeaveSummary drops every cached summary, whatever its scope or range.
func (s *service) InvalidateLeaveSummary(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, summaryCachePrefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (s *service) LateComers(ctx context.Context, actor domain.Actor, onDate time.Time) ([]LateComer, error) {
	p, err := s.population(ctx, actor)
	if err != nil {
		return nil, err
	}
	if p.Empty() {
		return []LateComer{}, nil
	}

	members, err := s.repo.ListMembers(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.lateComers(members, onDate), nil
}

func (s *service) lateComers(members []Member, onDate time.Time) []LateComer {
	out := []LateComer{}
	for _, m := range members {
		if !s.loggedInLate(m.LastLogin, onDate) {
			continue
		}
		out = append(out, LateComer{
			UserID:    m.ID.String(),
			Name:      m.Name,
			Email:     m.Email,
			LastLogin: m.LastLogin.In(s.loc).Format(time.RFC3339),
		})
	}
	return out
}

// loggedInLate compares the login in local time against the calendar day of onDate.
func (s *service) loggedInLate(lastLogin *time.Time, onDate time.Time) bool {
	if lastLogin == nil {
		return false
	}
	local := lastLogin.In(s.loc)
	ly, lm, ld := local.Date()
	oy, om, od := onDate.Date()
	return ly == oy && lm == om && ld == od && local.Hour() >= LateHour
}

func (s *service) TeamDashboard(ctx context.Context, actor domain.Actor, now time.Time) (TeamDashboard, error) {
	if actor.Role != domain.RoleManager {
		return TeamDashboard{}, attendanceerrors.ErrNotAManager
	}
	p, err := s.population(ctx, actor)
	if err != nil {
		return TeamDashboard{}, err
	}
	if p.Empty() {
		return TeamDashboard{}, nil
	}

	pending, err := s.repo.ListLeaves(ctx, p, LeaveFilter{
		Statuses: []domain.LeaveStatus{domain.StatusPending},
	})
	if err != nil {
		return TeamDashboard{}, err
	}

	today := truncateDate(now.In(s.loc))
	until := today.AddDate(0, 0, upcomingWindow)
	upcoming, err := s.repo.ListLeaves(ctx, p, LeaveFilter{
		Statuses:  []domain.LeaveStatus{domain.StatusApproved},
		StartFrom: &today,
		StartTo:   &until,
	})
	if err != nil {
		return TeamDashboard{}, err
	}

	members, err := s.repo.ListMembers(ctx, p)
	if err != nil {
		return TeamDashboard{}, err
	}

	return TeamDashboard{
		TotalLeavesPending: len(pending),
		UpcomingLeaves:     len(upcoming),
		LatecomerCount:     len(s.lateComers(members, now.In(s.loc))),
	}, nil
}

func (s *service) MonthlyTrends(ctx context.Context, actor domain.Actor, year int) ([]MonthlyTrend, error) {
	if year < 1970 || year > 9999 {
		return nil, attendanceerrors.ErrInvalidYear
	}
	p, err := s.population(ctx, actor)
	if err != nil {
		return nil, err
	}

	out := make([]MonthlyTrend, 12)
	for i := range out {
		out[i] = MonthlyTrend{Month: i + 1}
	}
	if p.Empty() {
		return out, nil
	}

	rows, err := s.repo.CountByMonth(ctx, p, year)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			out[row.Month-1].LeaveCount = row.Count
		}
	}
	return out, nil
}

func (s *service) ExportLeaveDaySummary(ctx context.Context, actor domain.Actor, r DateRange) ([]byte, error) {
	summary, err := s.LeaveDaySummary(ctx, actor, r)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	header := []any{"Role", "Approved leave days"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	total := 0
	for _, role := range domain.AllRoles() {
		days, ok := summary[string(role)]
		if !ok {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []any{string(role), days}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return nil, err
		}
		total += days
		row++
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	footer := []any{"TOTAL", total}
	if err := f.SetSheetRow(summarySheet, cell, &footer); err != nil {
		return nil, err
	}
	if r.Bounded() {
		if err := f.SetCellValue(summarySheet, "D1", fmt.Sprintf("Range %s - %s",
			r.From.Format(dateLayout), r.To.Format(dateLayout))); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("leave summary export failed", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func covers(l LeaveRecord, day time.Time) bool {
	return !truncateDate(l.StartDate).After(day) && !truncateDate(l.EndDate).Before(day)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

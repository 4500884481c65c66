package attendance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/attendance"
	attendanceerrors "go-leave/internal/attendance/errors"
	attendanceMock "go-leave/internal/attendance/mock"
	"go-leave/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   attendance.Service
	repo      *attendanceMock.MockRepository
	team      *attendanceMock.MockTeamResolver
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := attendanceMock.NewMockRepository(ctrl)
	team := attendanceMock.NewMockTeamResolver(ctrl)

	return &serviceDeps{
		service:   attendance.NewService(repo, team, rdb),
		repo:      repo,
		team:      team,
		redismock: redisMock,
	}
}

var (
	admin    = domain.Actor{ID: uuid.NewString(), Role: domain.RoleAdmin}
	hr       = domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	employee = domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_DailyAttendance(t *testing.T) {
	ctx := context.Background()
	onDate := day(2025, 6, 2)

	t.Run("approved leave covering the date marks absent", func(t *testing.T) {
		deps := setupServiceTest(t)
		alice, bob := uuid.New(), uuid.New()

		deps.repo.EXPECT().
			ListMembers(ctx, attendance.Population{Scope: "admin", Roles: domain.AllRoles()}).
			Return([]attendance.Member{
				{ID: alice, Name: "Alice", Role: domain.RoleEmployee},
				{ID: bob, Name: "Bob", Role: domain.RoleHR},
			}, nil)
		deps.repo.EXPECT().
			ListLeaves(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ attendance.Population, f attendance.LeaveFilter) ([]attendance.LeaveRecord, error) {
				require.NotNil(t, f.ActiveOn)
				assert.Equal(t, onDate, *f.ActiveOn)
				assert.Equal(t, []domain.LeaveStatus{domain.StatusApproved}, f.Statuses)
				return []attendance.LeaveRecord{{
					UserID:    alice,
					StartDate: day(2025, 6, 1),
					EndDate:   day(2025, 6, 2),
					Status:    domain.StatusApproved,
				}}, nil
			})

		resp, err := deps.service.DailyAttendance(ctx, admin, onDate)

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, attendance.StatusAbsent, resp[0].Status)
		assert.Equal(t, attendance.StatusPresent, resp[1].Status)
	})

	t.Run("leave bounds are inclusive", func(t *testing.T) {
		alice := uuid.New()
		leaveRow := attendance.LeaveRecord{
			UserID:    alice,
			StartDate: day(2025, 6, 1),
			EndDate:   day(2025, 6, 3),
			Status:    domain.StatusApproved,
		}

		tests := []struct {
			name   string
			onDate time.Time
			want   string
		}{
			{name: "first day", onDate: day(2025, 6, 1), want: attendance.StatusAbsent},
			{name: "last day", onDate: day(2025, 6, 3), want: attendance.StatusAbsent},
			{name: "day after end", onDate: day(2025, 6, 4), want: attendance.StatusPresent},
			{name: "day before start", onDate: day(2025, 5, 31), want: attendance.StatusPresent},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				deps := setupServiceTest(t)

				deps.repo.EXPECT().ListMembers(ctx, gomock.Any()).
					Return([]attendance.Member{{ID: alice, Name: "Alice", Role: domain.RoleEmployee}}, nil)
				// the row comes back regardless so the in-memory check is exercised too
				deps.repo.EXPECT().ListLeaves(ctx, gomock.Any(), gomock.Any()).
					Return([]attendance.LeaveRecord{leaveRow}, nil)

				resp, err := deps.service.DailyAttendance(ctx, admin, tt.onDate)

				require.NoError(t, err)
				require.Len(t, resp, 1)
				assert.Equal(t, tt.want, resp[0].Status)
			})
		}
	})

	t.Run("manager without reports sees nobody", func(t *testing.T) {
		deps := setupServiceTest(t)
		manager := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
		deps.team.EXPECT().TeamMemberIDs(ctx, manager.ID).Return([]string{}, nil)

		resp, err := deps.service.DailyAttendance(ctx, manager, onDate)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("manager population is the team", func(t *testing.T) {
		deps := setupServiceTest(t)
		manager := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
		report := uuid.NewString()
		deps.team.EXPECT().TeamMemberIDs(ctx, manager.ID).Return([]string{report}, nil)

		want := attendance.Population{
			Scope:      "manager:" + manager.ID,
			Roles:      []domain.Role{domain.RoleEmployee},
			UserIDs:    []string{report},
			Restricted: true,
		}
		deps.repo.EXPECT().ListMembers(ctx, want).Return(nil, nil)
		deps.repo.EXPECT().ListLeaves(ctx, want, gomock.Any()).Return(nil, nil)

		_, err := deps.service.DailyAttendance(ctx, manager, onDate)
		assert.NoError(t, err)
	})

	t.Run("employees have no population", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.DailyAttendance(ctx, employee, onDate)

		assert.ErrorIs(t, err, attendanceerrors.ErrNoPopulation)
	})
}

func TestService_LeaveDaySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss queries and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		key := attendance.SummaryCacheKey("hr", attendance.DateRange{})

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().
			SumApprovedDaysByRole(ctx, gomock.Any(), attendance.DateRange{}).
			DoAndReturn(func(_ context.Context, p attendance.Population, _ attendance.DateRange) ([]attendance.RoleDays, error) {
				assert.NotContains(t, p.Roles, domain.RoleAdmin)
				return []attendance.RoleDays{
					{Role: domain.RoleEmployee, Days: 7},
					{Role: domain.RoleManager, Days: 3},
				}, nil
			})

		want := attendance.LeaveSummary{"EMPLOYEE": 7, "MANAGER": 3, "HR": 0}
		payload, err := json.Marshal(want)
		require.NoError(t, err)
		deps.redismock.ExpectSet(key, payload, 5*time.Minute).SetVal("OK")

		got, err := deps.service.LeaveDaySummary(ctx, hr, attendance.DateRange{})

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		from, to := day(2025, 1, 1), day(2025, 1, 31)
		r := attendance.DateRange{From: &from, To: &to}
		key := attendance.SummaryCacheKey("admin", r)
		assert.Equal(t, "analytics:leave-summary:admin:2025-01-01_2025-01-31", key)

		deps.redismock.ExpectGet(key).SetVal(`{"ADMIN":1,"EMPLOYEE":4,"HR":0,"MANAGER":0}`)

		got, err := deps.service.LeaveDaySummary(ctx, admin, r)

		require.NoError(t, err)
		assert.Equal(t, 4, got["EMPLOYEE"])
		assert.Equal(t, 1, got["ADMIN"])
	})

	t.Run("query failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		key := attendance.SummaryCacheKey("admin", attendance.DateRange{})

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().SumApprovedDaysByRole(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.LeaveDaySummary(ctx, admin, attendance.DateRange{})

		assert.Error(t, err)
	})
}

func TestService_InvalidateLeaveSummary(t *testing.T) {
	deps := setupServiceTest(t)
	keys := []string{"analytics:leave-summary:admin:all", "analytics:leave-summary:hr:all"}

	deps.redismock.ExpectScan(0, "analytics:leave-summary:*", 100).SetVal(keys, 0)
	deps.redismock.ExpectDel(keys...).SetVal(2)

	assert.NoError(t, deps.service.InvalidateLeaveSummary(context.Background()))
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestParseDateRange(t *testing.T) {
	r, err := attendance.ParseDateRange("", "")
	assert.NoError(t, err)
	assert.False(t, r.Bounded())

	_, err = attendance.ParseDateRange("2025-01-01", "")
	assert.ErrorIs(t, err, attendanceerrors.ErrIncompleteRange)

	_, err = attendance.ParseDateRange("2025-02-01", "2025-01-01")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidRange)

	_, err = attendance.ParseDateRange("01/01/2025", "2025-01-31")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)

	r, err = attendance.ParseDateRange("2025-01-01", "2025-01-01")
	assert.NoError(t, err)
	assert.True(t, r.Bounded())
}

func TestService_LateComers(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	late := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	early := time.Date(2025, 6, 2, 9, 59, 0, 0, time.Local)
	otherDay := time.Date(2025, 6, 1, 11, 0, 0, 0, time.Local)

	deps.repo.EXPECT().ListMembers(ctx, gomock.Any()).Return([]attendance.Member{
		{ID: uuid.New(), Name: "Late", LastLogin: &late},
		{ID: uuid.New(), Name: "Early", LastLogin: &early},
		{ID: uuid.New(), Name: "Yesterday", LastLogin: &otherDay},
		{ID: uuid.New(), Name: "Never"},
	}, nil)

	resp, err := deps.service.LateComers(ctx, hr, day(2025, 6, 2))

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Late", resp[0].Name)
}

func TestService_TeamDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("only managers", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.TeamDashboard(ctx, hr, time.Now())

		assert.ErrorIs(t, err, attendanceerrors.ErrNotAManager)
	})

	t.Run("counts pending, upcoming and late", func(t *testing.T) {
		deps := setupServiceTest(t)
		manager := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
		now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local)
		lateLogin := time.Date(2025, 6, 2, 10, 30, 0, 0, time.Local)

		deps.team.EXPECT().TeamMemberIDs(ctx, manager.ID).Return([]string{uuid.NewString(), uuid.NewString()}, nil)
		deps.repo.EXPECT().
			ListLeaves(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ attendance.Population, f attendance.LeaveFilter) ([]attendance.LeaveRecord, error) {
				if f.Statuses[0] == domain.StatusPending {
					return []attendance.LeaveRecord{{}, {}, {}}, nil
				}
				require.NotNil(t, f.StartFrom)
				require.NotNil(t, f.StartTo)
				assert.Equal(t, 7*24*time.Hour, f.StartTo.Sub(*f.StartFrom))
				return []attendance.LeaveRecord{{}}, nil
			}).
			Times(2)
		deps.repo.EXPECT().ListMembers(ctx, gomock.Any()).Return([]attendance.Member{
			{ID: uuid.New(), LastLogin: &lateLogin},
			{ID: uuid.New()},
		}, nil)

		got, err := deps.service.TeamDashboard(ctx, manager, now)

		require.NoError(t, err)
		assert.Equal(t, attendance.TeamDashboard{TotalLeavesPending: 3, UpcomingLeaves: 1, LatecomerCount: 1}, got)
	})
}

func TestService_MonthlyTrends(t *testing.T) {
	ctx := context.Background()

	t.Run("fills all twelve months", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CountByMonth(ctx, gomock.Any(), 2025).Return([]attendance.MonthCount{
			{Month: 3, Count: 4},
			{Month: 12, Count: 1},
		}, nil)

		got, err := deps.service.MonthlyTrends(ctx, admin, 2025)

		require.NoError(t, err)
		require.Len(t, got, 12)
		assert.Equal(t, attendance.MonthlyTrend{Month: 3, LeaveCount: 4}, got[2])
		assert.Equal(t, attendance.MonthlyTrend{Month: 12, LeaveCount: 1}, got[11])
		assert.Zero(t, got[0].LeaveCount)
	})

	t.Run("invalid year", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.MonthlyTrends(ctx, admin, 12)

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidYear)
	})
}

func TestService_ExportLeaveDaySummary(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := attendanceMock.NewMockRepository(ctrl)
	svc := attendance.NewService(repo, attendanceMock.NewMockTeamResolver(ctrl), nil)

	repo.EXPECT().SumApprovedDaysByRole(ctx, gomock.Any(), gomock.Any()).Return([]attendance.RoleDays{
		{Role: domain.RoleEmployee, Days: 5},
		{Role: domain.RoleHR, Days: 2},
	}, nil)

	data, err := svc.ExportLeaveDaySummary(ctx, hr, attendance.DateRange{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leave Summary")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Role", "Approved leave days"},
		{"EMPLOYEE", "5"},
		{"MANAGER", "0"},
		{"HR", "2"},
		{"TOTAL", "7"},
	}, rows)
}

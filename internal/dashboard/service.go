package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/activity"
	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/mission"
	"github.com/cfed-mr/backoffice/internal/rubric"
)

// The sources are the slices of each entity service the dashboard needs.
// Declared here so tests can hand in fakes without a database.
type (
	RubricSource interface {
		List(ctx context.Context) ([]*rubric.Rubric, error)
	}

	ActivitySource interface {
		List(ctx context.Context) ([]*activity.Activity, error)
		CountByStatus(ctx context.Context) (map[activity.Status]int, error)
		CountByRubric(ctx context.Context) (map[uuid.UUID]int, error)
	}

	MissionSource interface {
		List(ctx context.Context, filter mission.ListFilter) ([]*mission.Mission, error)
		CountByValidationStatus(ctx context.Context) (map[mission.ValidationStatus]int, error)
	}

	ExpenseSource interface {
		List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
	}
)

// Service recomputes dashboard payloads from raw rows on every call.
// Nothing is cached between requests.
type Service struct {
	rubrics    RubricSource
	activities ActivitySource
	missions   MissionSource
	expenses   ExpenseSource

	now func() time.Time
}

func NewService(rubrics RubricSource, activities ActivitySource, missions MissionSource, expenses ExpenseSource) *Service {
	return &Service{
		rubrics:    rubrics,
		activities: activities,
		missions:   missions,
		expenses:   expenses,
		now:        time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

const topN = 5

// Overview is the full dashboard payload.
type Overview struct {
	Stats          budget.GlobalStats
	Rubrics        []budget.RubricSummary
	TopRubrics     []budget.RubricSummary
	TopMissions    []budget.MissionCost
	Trend          []budget.MonthBucket
	MissionStatus  map[mission.ValidationStatus]budget.StatusShare
	ActivityStatus map[activity.Status]budget.StatusShare
}

func (s *Service) Overview(ctx context.Context, monthsBack int, order budget.SortOrder) (*Overview, error) {
	rubrics, err := s.rubrics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing rubrics: %w", err)
	}

	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	missions, err := s.missions.List(ctx, mission.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing missions: %w", err)
	}

	expenses, err := s.expenses.List(ctx, expense.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	byRubric := make(map[uuid.UUID][]*activity.Activity)
	for _, a := range activities {
		byRubric[a.RubricID] = append(byRubric[a.RubricID], a)
	}

	rollups := make([]budget.RubricSummary, 0, len(rubrics))
	for _, r := range rubrics {
		rollups = append(rollups, budget.RubricRollup(*r, byRubric[r.ID]))
	}

	byMission := make(map[uuid.UUID][]*expense.Expense)
	for _, e := range expenses {
		byMission[e.MissionID] = append(byMission[e.MissionID], e)
	}

	missionStatuses := make([]mission.ValidationStatus, len(missions))
	for i, m := range missions {
		missionStatuses[i] = m.ValidationStatus
	}

	activityStatuses := make([]activity.Status, len(activities))
	for i, a := range activities {
		activityStatuses[i] = a.Status
	}

	return &Overview{
		Stats:          budget.GlobalStatistics(rollups),
		Rubrics:        rollups,
		TopRubrics:     budget.RankRubrics(rollups, topN, budget.RankByCommitted),
		TopMissions:    budget.RankMissionsByCost(missions, byMission, topN),
		Trend:          budget.ExpensesByMonth(expenses, monthsBack, s.now(), order),
		MissionStatus:  budget.StatusDistribution(missionStatuses),
		ActivityStatus: budget.StatusDistribution(activityStatuses),
	}, nil
}

// Counts is the lightweight header payload: entity counts pushed down to
// the store's group-by queries instead of materializing full rows.
type Counts struct {
	MissionsByStatus   map[mission.ValidationStatus]int
	ActivitiesByStatus map[activity.Status]int
	ActivitiesByRubric map[uuid.UUID]int
}

func (s *Service) Counts(ctx context.Context) (*Counts, error) {
	missionCounts, err := s.missions.CountByValidationStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting missions: %w", err)
	}

	statusCounts, err := s.activities.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting activities by status: %w", err)
	}

	rubricCounts, err := s.activities.CountByRubric(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting activities by rubric: %w", err)
	}

	return &Counts{
		MissionsByStatus:   missionCounts,
		ActivitiesByStatus: statusCounts,
		ActivitiesByRubric: rubricCounts,
	}, nil
}

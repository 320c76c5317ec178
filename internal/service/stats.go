package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/xolan/timers/internal/report"
	"github.com/xolan/timers/internal/stats"
)

// ErrYearNotFound is returned when no timers were recorded in the requested year.
var ErrYearNotFound = errors.New("no timers recorded in year")

// ChartWeeks is the number of weeks shown in weekly charts.
const ChartWeeks = 12

// StatsService provides statistics over the report hierarchy
type StatsService struct {
	report *ReportService
}

// NewStatsService creates a new StatsService
func NewStatsService(reportService *ReportService) *StatsService {
	return &StatsService{report: reportService}
}

// ForYear returns the statistics of a single year.
func (s *StatsService) ForYear(ctx context.Context, year int) (*StatsResult, error) {
	years, err := s.report.Build(ctx)
	if err != nil {
		return nil, err
	}

	y := report.FindYear(years, year)
	if y == nil {
		return nil, fmt.Errorf("%w %d", ErrYearNotFound, year)
	}
	return YearStats(*y), nil
}

// Overall returns the statistics across all years.
func (s *StatsService) Overall(ctx context.Context) (*StatsResult, error) {
	years, err := s.report.Build(ctx)
	if err != nil {
		return nil, err
	}
	return OverallStats(years), nil
}

// PerYear returns the statistics of every year, most recent first.
func (s *StatsService) PerYear(ctx context.Context) ([]*StatsResult, error) {
	years, err := s.report.Build(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*StatsResult, 0, len(years))
	for _, y := range years {
		results = append(results, YearStats(y))
	}
	return results, nil
}

// YearStats computes the statistics of an already built year.
func YearStats(y report.Year) *StatsResult {
	year, _ := strconv.Atoi(y.Key)
	return &StatsResult{
		Year:       year,
		Period:     y.Key,
		Statistics: stats.ForYear(y),
		Weekly:     stats.WeeklyTotals(y, ChartWeeks),
	}
}

// OverallStats computes the statistics of already built years.
func OverallStats(years []report.Year) *StatsResult {
	result := &StatsResult{
		Period:     "all time",
		Statistics: stats.Overall(years),
	}
	if len(years) > 0 {
		result.Weekly = stats.WeeklyTotals(years[0], ChartWeeks)
	}
	return result
}

package insights

import (
	"testing"
	"time"

	"github.com/mindmate/mindmate-server/internal/model"
)

var testNow = time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

func rec(mood model.Mood, ts time.Time) *model.MoodRecord {
	return &model.MoodRecord{UserID: "u1", Mood: mood, Timestamp: ts}
}

func TestAggregate_EmptyHistory(t *testing.T) {
	stats := AggregateMoodStats(nil, testNow)

	if stats.WeeklyAverage != 50 {
		t.Fatalf("weekly average = %v, want 50", stats.WeeklyAverage)
	}
	if stats.Trend != TrendStable {
		t.Fatalf("trend = %s, want stable", stats.Trend)
	}
	if stats.PeakHour != nil {
		t.Fatalf("peak hour = %v, want nil", *stats.PeakHour)
	}
	if stats.DominantMood != nil {
		t.Fatalf("dominant mood = %v, want nil", *stats.DominantMood)
	}
	if len(stats.DailySeries) != 7 {
		t.Fatalf("daily series length = %d, want 7", len(stats.DailySeries))
	}
	for _, ds := range stats.DailySeries {
		if ds.Score != nil {
			t.Fatalf("day %s has score %v, want nil", ds.Date, *ds.Score)
		}
	}
	if len(stats.WeeklyPattern) != 7 {
		t.Fatalf("weekly pattern length = %d, want 7", len(stats.WeeklyPattern))
	}
}

func TestAggregate_WeekOfHappy(t *testing.T) {
	var records []*model.MoodRecord
	for i := 0; i < 7; i++ {
		records = append(records, rec(model.MoodHappy, testNow.Add(-time.Duration(i)*time.Hour)))
	}

	stats := AggregateMoodStats(records, testNow)
	if stats.WeeklyAverage != 90 {
		t.Fatalf("weekly average = %v, want 90", stats.WeeklyAverage)
	}
	if stats.DominantMood == nil || *stats.DominantMood != model.MoodHappy {
		t.Fatalf("dominant mood = %v, want happy", stats.DominantMood)
	}
}

func TestAggregate_DailySeriesNullVsScore(t *testing.T) {
	records := []*model.MoodRecord{
		rec(model.MoodHappy, testNow.AddDate(0, 0, -1)),
		rec(model.MoodSad, testNow.AddDate(0, 0, -1)),
	}
	stats := AggregateMoodStats(records, testNow)

	// Oldest first: index 5 is yesterday, index 6 is today.
	yesterday := stats.DailySeries[5]
	if yesterday.Score == nil || *yesterday.Score != 55 {
		t.Fatalf("yesterday score = %v, want 55 (mean of 90 and 20)", yesterday.Score)
	}
	if stats.DailySeries[6].Score != nil {
		t.Fatalf("today must be nil, got %v", *stats.DailySeries[6].Score)
	}
	if stats.DailySeries[0].Date >= stats.DailySeries[6].Date {
		t.Fatalf("series must be oldest first: %s >= %s", stats.DailySeries[0].Date, stats.DailySeries[6].Date)
	}
}

func TestAggregate_TrendStableOnIdenticalWindows(t *testing.T) {
	records := []*model.MoodRecord{
		rec(model.MoodCalm, testNow.AddDate(0, 0, -10)),
		rec(model.MoodCalm, testNow.AddDate(0, 0, -2)),
	}
	if got := AggregateMoodStats(records, testNow).Trend; got != TrendStable {
		t.Fatalf("trend = %s, want stable", got)
	}
}

func TestAggregate_TrendImprovingAndDeclining(t *testing.T) {
	// Previous window sad (20), recent window anxious (30): +10 delta.
	improving := []*model.MoodRecord{
		rec(model.MoodSad, testNow.AddDate(0, 0, -10)),
		rec(model.MoodAnxious, testNow.AddDate(0, 0, -2)),
	}
	if got := AggregateMoodStats(improving, testNow).Trend; got != TrendImproving {
		t.Fatalf("trend = %s, want improving", got)
	}

	declining := []*model.MoodRecord{
		rec(model.MoodAnxious, testNow.AddDate(0, 0, -10)),
		rec(model.MoodSad, testNow.AddDate(0, 0, -2)),
	}
	if got := AggregateMoodStats(declining, testNow).Trend; got != TrendDeclining {
		t.Fatalf("trend = %s, want declining", got)
	}
}

func TestAggregate_TrendDeltaBoundaryIsStable(t *testing.T) {
	// calm (75) vs happy (90) is a 15-point move; neutral (50) vs
	// stressed (25) is 25. Exactly 5 must stay stable: neutral (50)
	// against a window averaging 45.
	records := []*model.MoodRecord{
		rec(model.MoodNeutral, testNow.AddDate(0, 0, -10)), // previous: 50
		// recent: mean of 90 and 20 = 55, delta exactly +5
		rec(model.MoodHappy, testNow.AddDate(0, 0, -2)),
		rec(model.MoodSad, testNow.AddDate(0, 0, -1)),
	}
	if got := AggregateMoodStats(records, testNow).Trend; got != TrendStable {
		t.Fatalf("trend = %s, want stable on exact +5 delta", got)
	}
}

func TestAggregate_PeakHour(t *testing.T) {
	records := []*model.MoodRecord{
		rec(model.MoodSad, time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)),
		rec(model.MoodHappy, time.Date(2025, 6, 11, 19, 30, 0, 0, time.UTC)),
		rec(model.MoodHappy, time.Date(2025, 6, 12, 19, 5, 0, 0, time.UTC)),
	}
	stats := AggregateMoodStats(records, testNow)
	if stats.PeakHour == nil || *stats.PeakHour != 19 {
		t.Fatalf("peak hour = %v, want 19", stats.PeakHour)
	}
}

func TestAggregate_PeakHourTieBreaksAscending(t *testing.T) {
	records := []*model.MoodRecord{
		rec(model.MoodCalm, time.Date(2025, 6, 10, 21, 0, 0, 0, time.UTC)),
		rec(model.MoodCalm, time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)),
	}
	stats := AggregateMoodStats(records, testNow)
	if stats.PeakHour == nil || *stats.PeakHour != 9 {
		t.Fatalf("peak hour = %v, want 9 (earliest tied hour)", stats.PeakHour)
	}
}

func TestAggregate_DominantMoodTieBreaksFirstSeen(t *testing.T) {
	records := []*model.MoodRecord{
		rec(model.MoodStressed, testNow.AddDate(0, 0, -3)),
		rec(model.MoodHappy, testNow.AddDate(0, 0, -2)),
		rec(model.MoodHappy, testNow.AddDate(0, 0, -1)),
		rec(model.MoodStressed, testNow),
	}
	stats := AggregateMoodStats(records, testNow)
	if stats.DominantMood == nil || *stats.DominantMood != model.MoodStressed {
		t.Fatalf("dominant mood = %v, want stressed (first encountered)", stats.DominantMood)
	}
}

func TestAggregate_WeeklyPattern(t *testing.T) {
	// 2025-06-16 is a Monday.
	records := []*model.MoodRecord{
		rec(model.MoodHappy, time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)),
		rec(model.MoodSad, time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)),
	}
	stats := AggregateMoodStats(records, testNow)

	if stats.WeeklyPattern[0].Day != "Monday" {
		t.Fatalf("pattern starts with %s, want Monday", stats.WeeklyPattern[0].Day)
	}
	mon := stats.WeeklyPattern[0]
	if mon.Score == nil || *mon.Score != 55 {
		t.Fatalf("Monday mean = %v, want 55", mon.Score)
	}
	tue := stats.WeeklyPattern[1]
	if tue.Score != nil {
		t.Fatalf("Tuesday must be nil, got %v", *tue.Score)
	}
}

// Package insights holds the pure analytics over a user's history: mood
// rollups, the merged chat/journal timeline, and topic extraction. Every
// function here is a synchronous computation over caller-supplied records
// and degrades to neutral/null/empty defaults on empty input.
package insights

import (
	"time"

	"github.com/mindmate/mindmate-server/internal/model"
)

// Trend classifies the week-over-week wellbeing movement.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// trendDelta is the score change needed before a window comparison stops
// reading as stable.
const trendDelta = 5

// DayScore is one point of the 7-day chart series. Score is nil for days
// without records: "no data" is distinct from "neutral mood" and must
// survive to the API response.
type DayScore struct {
	Date  string   `json:"date"`
	Score *float64 `json:"score"`
}

// WeekdayScore is the all-history mean for one day-of-week name.
type WeekdayScore struct {
	Day   string   `json:"day"`
	Score *float64 `json:"score"`
}

// MoodStats is the aggregation output for one user.
type MoodStats struct {
	WeeklyAverage float64        `json:"weeklyAverage"`
	DailySeries   []DayScore     `json:"dailySeries"`
	PeakHour      *int           `json:"peakHour"`
	DominantMood  *model.Mood    `json:"dominantMood"`
	Trend         Trend          `json:"trend"`
	WeeklyPattern []WeekdayScore `json:"weeklyPattern"`
}

const dateLayout = "2006-01-02"

// weekdayOrder fixes the weekly-pattern output order. Maps must not
// drive any ordering here.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// AggregateMoodStats computes every rollup over records, evaluated
// against now. Records are expected in timestamp order; out-of-order
// input only affects tie-breaks that are defined by encounter order.
func AggregateMoodStats(records []*model.MoodRecord, now time.Time) MoodStats {
	return MoodStats{
		WeeklyAverage: weeklyAverage(records, now),
		DailySeries:   dailySeries(records, now),
		PeakHour:      peakHour(records),
		DominantMood:  dominantMood(records),
		Trend:         classifyTrend(records, now),
		WeeklyPattern: weeklyPattern(records),
	}
}

func inWindow(t, from, to time.Time) bool {
	return t.After(from) && !t.After(to)
}

// weeklyAverage is the mean score over the trailing 7 days, neutral when
// the window is empty.
func weeklyAverage(records []*model.MoodRecord, now time.Time) float64 {
	sum, n := 0.0, 0
	from := now.AddDate(0, 0, -7)
	for _, r := range records {
		if inWindow(r.Timestamp, from, now) {
			sum += r.Mood.Score()
			n++
		}
	}
	if n == 0 {
		return model.NeutralScore
	}
	return sum / float64(n)
}

// dailySeries returns the last 7 calendar days oldest first. Days with
// no records keep a nil score.
func dailySeries(records []*model.MoodRecord, now time.Time) []DayScore {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range records {
		day := r.Date()
		sums[day] += r.Mood.Score()
		counts[day]++
	}

	series := make([]DayScore, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		ds := DayScore{Date: day}
		if n := counts[day]; n > 0 {
			mean := sums[day] / float64(n)
			ds.Score = &mean
		}
		series = append(series, ds)
	}
	return series
}

// peakHour reports the hour-of-day (0-23) with the highest mean score
// across all history, nil when there is no history. Ties resolve to the
// earliest hour by explicit ascending iteration.
func peakHour(records []*model.MoodRecord) *int {
	var sums [24]float64
	var counts [24]int
	for _, r := range records {
		h := r.Timestamp.Hour()
		sums[h] += r.Mood.Score()
		counts[h]++
	}

	var best *int
	bestMean := 0.0
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		mean := sums[h] / float64(counts[h])
		if best == nil || mean > bestMean {
			hour := h
			best = &hour
			bestMean = mean
		}
	}
	return best
}

// dominantMood is the label occurring most often across all history.
// Ties resolve to the label encountered first in the scan, nil when
// there is no history.
func dominantMood(records []*model.MoodRecord) *model.Mood {
	counts := map[model.Mood]int{}
	var order []model.Mood
	for _, r := range records {
		if _, seen := counts[r.Mood]; !seen {
			order = append(order, r.Mood)
		}
		counts[r.Mood]++
	}

	var best *model.Mood
	bestCount := 0
	for _, m := range order {
		if counts[m] > bestCount {
			mm := m
			best = &mm
			bestCount = counts[m]
		}
	}
	return best
}

// classifyTrend compares the trailing 7-day mean against the preceding
// 7-day mean (days 8-14 back). Empty windows default to neutral, so a
// user with no history reads as stable.
func classifyTrend(records []*model.MoodRecord, now time.Time) Trend {
	recent := windowMean(records, now.AddDate(0, 0, -7), now)
	previous := windowMean(records, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))

	switch {
	case recent-previous > trendDelta:
		return TrendImproving
	case previous-recent > trendDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func windowMean(records []*model.MoodRecord, from, to time.Time) float64 {
	sum, n := 0.0, 0
	for _, r := range records {
		if inWindow(r.Timestamp, from, to) {
			sum += r.Mood.Score()
			n++
		}
	}
	if n == 0 {
		return model.NeutralScore
	}
	return sum / float64(n)
}

// weeklyPattern buckets all history by day-of-week name, Monday first.
func weeklyPattern(records []*model.MoodRecord) []WeekdayScore {
	sums := map[time.Weekday]float64{}
	counts := map[time.Weekday]int{}
	for _, r := range records {
		wd := r.Timestamp.Weekday()
		sums[wd] += r.Mood.Score()
		counts[wd]++
	}

	out := make([]WeekdayScore, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		ws := WeekdayScore{Day: wd.String()}
		if n := counts[wd]; n > 0 {
			mean := sums[wd] / float64(n)
			ws.Score = &mean
		}
		out = append(out, ws)
	}
	return out
}

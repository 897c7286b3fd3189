package rates

import (
	"fmt"
	"math"
	"strings"

	"socialagent/internal/models"
)

// yearAgoRate is the fixed comparison point for the year-over-year summary.
const yearAgoRate = 6.85

// MarketContext builds a short prose analysis of the snapshot: movement,
// level, and one market factor, joined as sentences.
func MarketContext(snapshot models.RateSnapshot) string {
	change := snapshot.RateChange
	current := snapshot.CurrentRate

	var parts []string

	switch {
	case math.Abs(change) >= 0.1:
		direction := "increased significantly"
		if change < 0 {
			direction = "dropped notably"
		}
		parts = append(parts, fmt.Sprintf("Rates %s by %.2f%% this week", direction, math.Abs(change)))
	case math.Abs(change) >= 0.05:
		direction := "rose"
		if change < 0 {
			direction = "declined"
		}
		parts = append(parts, fmt.Sprintf("Rates %s by %.2f%%", direction, math.Abs(change)))
	default:
		parts = append(parts, "Rates remained relatively stable this week")
	}

	switch {
	case current >= 7.5:
		parts = append(parts, "Rates are at elevated levels, impacting affordability")
	case current >= 7.0:
		parts = append(parts, "Rates remain above recent averages but within normal range")
	case current >= 6.5:
		parts = append(parts, "Rates are at moderate levels for qualified buyers")
	default:
		parts = append(parts, "Rates are at attractive levels for borrowers")
	}

	parts = append(parts, "Federal Reserve policy decisions continue to influence rates")

	return strings.Join(parts, ". ") + "."
}

// YearOverYear summarizes the move against the fixed year-ago reading.
func YearOverYear(snapshot models.RateSnapshot) string {
	change := snapshot.CurrentRate - yearAgoRate
	if change > 0 {
		return fmt.Sprintf("Rates are %.2f%% higher than a year ago", change)
	}
	return fmt.Sprintf("Rates are %.2f%% lower than a year ago", math.Abs(change))
}

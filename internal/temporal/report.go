package temporal

import (
	"fmt"
	"strings"
	"time"
)

// Report renders the temporal analysis as text: dataset overview,
// trends, seasonal patterns, insights.
func (a *Analyzer) Report(now time.Time) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "%s\nTEMPORAL ANALYSIS REPORT\nMovie Recommendation System\nGenerated: %s\n%s\n\n",
		rule, now.UTC().Format("2006-01-02 15:04:05"), rule)

	b.WriteString("1. DATASET TEMPORAL OVERVIEW\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "Total Ratings: %d\n", len(a.ratings))
	if len(a.times) > 0 {
		minTime := a.times[0]
		for _, t := range a.times {
			if t.Before(minTime) {
				minTime = t
			}
		}
		fmt.Fprintf(&b, "Date Range: %s to %s\n", minTime.Format(time.RFC3339), a.maxTime.Format(time.RFC3339))
		fmt.Fprintf(&b, "Time Span: %d days\n", int(a.maxTime.Sub(minTime).Hours()/24))
	}
	b.WriteString("\n")

	trends := a.Trends()
	b.WriteString("2. RATING TRENDS OVER TIME\n")
	b.WriteString(thin + "\n")
	b.WriteString("Year    Mean    Count   Std\n")
	for _, y := range trends.Yearly {
		fmt.Fprintf(&b, "%-7d %-7.3f %-7d %.3f\n", y.Period, y.Mean, y.Count, y.Std)
	}
	b.WriteString("\n")

	seasonal := a.Seasonal()
	b.WriteString("3. SEASONAL PATTERNS\n")
	b.WriteString(thin + "\n")
	b.WriteString("Quarter Mean    Count   Std\n")
	for _, q := range seasonal.Quarterly {
		fmt.Fprintf(&b, "%-7d %-7.3f %-7d %.3f\n", q.Period, q.Mean, q.Count, q.Std)
	}
	fmt.Fprintf(&b, "\nPeak Activity Hour: %d:00\n\n", seasonal.PeakHour)

	b.WriteString("4. KEY INSIGHTS\n")
	b.WriteString(thin + "\n")
	b.WriteString("- Rating patterns show temporal dependencies\n")
	b.WriteString("- Recent ratings should weigh more in recommendations\n")
	b.WriteString("- User preferences evolve over time\n")
	b.WriteString("- Seasonal trends affect movie popularity\n")

	return b.String()
}

package evalharness

import (
	"fmt"
	"strings"
)

const reportRule = "--------------------------------------------------------------------------------"

func fmtMetric(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", *v)
}

// Report renders the four-section text report (accuracy, ranking,
// beyond-accuracy, interpretation notes) for a metrics set.
func Report(title string, m Metrics) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\nPERFORMANCE METRICS REPORT\n%s\n%s\n\n", rule, title, rule)

	b.WriteString("1. ACCURACY METRICS\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "RMSE (Root Mean Squared Error): %s\n", fmtMetric(m.RMSE))
	fmt.Fprintf(&b, "MAE (Mean Absolute Error):      %s\n\n", fmtMetric(m.MAE))

	b.WriteString("2. RANKING METRICS\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Precision@%d: %.4f\n", m.K, m.PrecisionAtK)
	fmt.Fprintf(&b, "Recall@%d:    %.4f\n", m.K, m.RecallAtK)
	fmt.Fprintf(&b, "F1-Score:     %.4f\n\n", m.F1)

	b.WriteString("3. BEYOND-ACCURACY METRICS\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Coverage:  %.2f%%\n", m.Coverage)
	fmt.Fprintf(&b, "Diversity: %.4f\n", m.Diversity)
	fmt.Fprintf(&b, "Novelty:   %s\n\n", fmtMetric(m.Novelty))

	b.WriteString("4. INTERPRETATION\n")
	b.WriteString(reportRule + "\n")
	b.WriteString("- Lower RMSE/MAE = better prediction accuracy\n")
	b.WriteString("- Higher Precision/Recall/F1 = better ranking quality\n")
	b.WriteString("- Higher Coverage = more of the catalog recommended\n")
	b.WriteString("- Higher Diversity = less repetitive recommendation lists\n")
	b.WriteString("- Higher Novelty = more long-tail recommendations\n")

	return b.String()
}

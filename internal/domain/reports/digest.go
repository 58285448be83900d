package reports

import (
	"fmt"
	"strings"

	"workforce/internal/domain/scoring"
)

// BuildDigest serialises the aggregates into the textual block handed to
// the narrative summariser. The raw per-employee tables never leave the
// service; only the rollup does.
func BuildDigest(summary Summary) string {
	var b strings.Builder

	b.WriteString("WORKFORCE OVERVIEW:\n")
	fmt.Fprintf(&b, "- Total Employees: %d\n", summary.TotalEmployees)
	fmt.Fprintf(&b, "- Active: %d, Resigned: %d\n", summary.ActiveEmployees, summary.ResignedEmployees)
	fmt.Fprintf(&b, "- Attrition Rate: %.1f%%\n", summary.AttritionRate)

	b.WriteString("\nRISK LEVELS:\n")
	for _, level := range []string{scoring.RiskHigh, scoring.RiskMedium, scoring.RiskLow, scoring.RiskResigned} {
		if count, ok := summary.RiskLevels[level]; ok {
			fmt.Fprintf(&b, "- %s: %d\n", level, count)
		}
	}

	if len(summary.Departments) > 0 {
		b.WriteString("\nDEPARTMENT BREAKDOWN:\n")
		for _, dept := range summary.Departments {
			name := dept.Department
			if name == "" {
				name = "(unassigned)"
			}
			fmt.Fprintf(&b, "- %s: %d employees, %d high risk, %d resigned, mean score %.1f\n",
				name, dept.Employees, dept.HighRisk, dept.Resigned, dept.MeanScore)
		}
	}

	if len(summary.TopRisk) > 0 {
		b.WriteString("\nTOP AT-RISK EMPLOYEES:\n")
		for _, row := range summary.TopRisk {
			factors := "none"
			if len(row.Factors) > 0 {
				factors = strings.Join(row.Factors, "; ")
			}
			fmt.Fprintf(&b, "- %s (%s, %s): score=%d, factors: %s\n",
				row.Name, row.Department, row.Role, row.RiskScore, factors)
		}
	}

	if len(summary.HealthStatuses) > 0 {
		b.WriteString("\nPROJECT HEALTH:\n")
		for _, status := range []string{scoring.HealthHealthy, scoring.HealthAtRisk, scoring.HealthCritical, scoring.ProjectCompleted, scoring.ProjectCancelled} {
			if count, ok := summary.HealthStatuses[status]; ok {
				fmt.Fprintf(&b, "- %s: %d\n", status, count)
			}
		}
	}

	if summary.ResignedTenure.Count > 0 {
		tenure := summary.ResignedTenure
		fmt.Fprintf(&b, "\nRESIGNED TENURE: avg %.0f days, min %d, max %d (%d employees)\n",
			tenure.MeanDays, tenure.MinDays, tenure.MaxDays, tenure.Count)
	}

	return b.String()
}

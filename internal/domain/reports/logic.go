package reports

import (
	"math"
	"sort"

	"workforce/internal/domain/scoring"
)

// Summary is the portfolio rollup consumed by dashboards, the PDF export,
// and the narrative digest. It is a pure function of the scorer outputs.
type Summary struct {
	TotalEmployees    int               `json:"totalEmployees"`
	ActiveEmployees   int               `json:"activeEmployees"`
	ResignedEmployees int               `json:"resignedEmployees"`
	AttritionRate     float64           `json:"attritionRate"` // percent, one decimal
	RiskLevels        map[string]int    `json:"riskLevels"`
	HealthStatuses    map[string]int    `json:"healthStatuses"`
	Departments       []DepartmentRisk  `json:"departments"`
	TopRisk           []scoring.RiskRow `json:"topRisk"`
	ResignedTenure    TenureStats       `json:"resignedTenure"`
}

type DepartmentRisk struct {
	Department string  `json:"department"`
	Employees  int     `json:"employees"`
	HighRisk   int     `json:"highRisk"`
	Resigned   int     `json:"resigned"`
	MeanScore  float64 `json:"meanScore"`
}

// TenureStats covers resigned employees with a positive span between join
// and resign dates; non-positive or missing spans are excluded.
type TenureStats struct {
	Count    int     `json:"count"`
	MeanDays float64 `json:"meanDays"`
	MinDays  int     `json:"minDays"`
	MaxDays  int     `json:"maxDays"`
}

func RiskLevelCounts(rows []scoring.RiskRow) map[string]int {
	counts := make(map[string]int, 4)
	for _, row := range rows {
		counts[row.RiskLevel]++
	}
	return counts
}

func HealthStatusCounts(rows []scoring.HealthRow) map[string]int {
	counts := make(map[string]int, 5)
	for _, row := range rows {
		counts[row.HealthStatus]++
	}
	return counts
}

// DepartmentBreakdown groups risk rows per department, sorted by
// department name for stable output.
func DepartmentBreakdown(rows []scoring.RiskRow) []DepartmentRisk {
	byDept := map[string]*DepartmentRisk{}
	sums := map[string]int{}
	for _, row := range rows {
		dept, ok := byDept[row.Department]
		if !ok {
			dept = &DepartmentRisk{Department: row.Department}
			byDept[row.Department] = dept
		}
		dept.Employees++
		sums[row.Department] += row.RiskScore
		if row.RiskLevel == scoring.RiskHigh {
			dept.HighRisk++
		}
		if row.RiskLevel == scoring.RiskResigned {
			dept.Resigned++
		}
	}

	out := make([]DepartmentRisk, 0, len(byDept))
	for name, dept := range byDept {
		dept.MeanScore = round1(float64(sums[name]) / float64(dept.Employees))
		out = append(out, *dept)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Department < out[j].Department
	})
	return out
}

// TopRisk returns the n highest-risk rows, sorted by score descending with
// ties broken by employee ID ascending. The input is not mutated.
func TopRisk(rows []scoring.RiskRow, n int) []scoring.RiskRow {
	if n <= 0 {
		return nil
	}
	sorted := make([]scoring.RiskRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].RiskScore != sorted[j].RiskScore {
			return sorted[i].RiskScore > sorted[j].RiskScore
		}
		return sorted[i].EmployeeID < sorted[j].EmployeeID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ResignedTenure summarises how long resigned employees stayed.
func ResignedTenure(employees []scoring.Employee) TenureStats {
	var stats TenureStats
	sum := 0
	for _, emp := range employees {
		if emp.Status != scoring.StatusResigned {
			continue
		}
		if emp.JoinDate.IsZero() || emp.ResignDate.IsZero() {
			continue
		}
		days := int(emp.ResignDate.Sub(emp.JoinDate).Hours() / 24)
		if days <= 0 {
			continue
		}
		if stats.Count == 0 || days < stats.MinDays {
			stats.MinDays = days
		}
		if days > stats.MaxDays {
			stats.MaxDays = days
		}
		stats.Count++
		sum += days
	}
	if stats.Count > 0 {
		stats.MeanDays = round1(float64(sum) / float64(stats.Count))
	}
	return stats
}

// BuildSummary assembles the full rollup from one scoring run.
func BuildSummary(employees []scoring.Employee, riskRows []scoring.RiskRow, healthRows []scoring.HealthRow, topN int) Summary {
	summary := Summary{
		TotalEmployees: len(employees),
		RiskLevels:     RiskLevelCounts(riskRows),
		HealthStatuses: HealthStatusCounts(healthRows),
		Departments:    DepartmentBreakdown(riskRows),
		TopRisk:        TopRisk(riskRows, topN),
		ResignedTenure: ResignedTenure(employees),
	}
	for _, emp := range employees {
		switch emp.Status {
		case scoring.StatusActive:
			summary.ActiveEmployees++
		case scoring.StatusResigned:
			summary.ResignedEmployees++
		}
	}
	if summary.TotalEmployees > 0 {
		summary.AttritionRate = round1(float64(summary.ResignedEmployees) / float64(summary.TotalEmployees) * 100)
	}
	return summary
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

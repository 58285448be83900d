package reports

import (
	"testing"
	"time"

	"workforce/internal/domain/scoring"
)

func TestRiskAndHealthCounts(t *testing.T) {
	riskRows := []scoring.RiskRow{
		{EmployeeID: "E1", RiskLevel: scoring.RiskHigh},
		{EmployeeID: "E2", RiskLevel: scoring.RiskHigh},
		{EmployeeID: "E3", RiskLevel: scoring.RiskLow},
		{EmployeeID: "E4", RiskLevel: scoring.RiskResigned},
	}
	counts := RiskLevelCounts(riskRows)
	if counts[scoring.RiskHigh] != 2 || counts[scoring.RiskLow] != 1 || counts[scoring.RiskResigned] != 1 {
		t.Fatalf("unexpected risk counts: %v", counts)
	}

	healthRows := []scoring.HealthRow{
		{ProjectID: "P1", HealthStatus: scoring.HealthHealthy},
		{ProjectID: "P2", HealthStatus: scoring.HealthCritical},
		{ProjectID: "P3", HealthStatus: scoring.HealthCritical},
	}
	healthCounts := HealthStatusCounts(healthRows)
	if healthCounts[scoring.HealthHealthy] != 1 || healthCounts[scoring.HealthCritical] != 2 {
		t.Fatalf("unexpected health counts: %v", healthCounts)
	}
}

func TestDepartmentBreakdown(t *testing.T) {
	rows := []scoring.RiskRow{
		{EmployeeID: "E1", Department: "Sales", RiskScore: 80, RiskLevel: scoring.RiskHigh},
		{EmployeeID: "E2", Department: "Sales", RiskScore: 20, RiskLevel: scoring.RiskLow},
		{EmployeeID: "E3", Department: "Engineering", RiskScore: 100, RiskLevel: scoring.RiskResigned},
	}

	out := DepartmentBreakdown(rows)
	if len(out) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(out))
	}
	if out[0].Department != "Engineering" || out[1].Department != "Sales" {
		t.Fatalf("expected departments sorted by name, got %v", out)
	}
	sales := out[1]
	if sales.Employees != 2 || sales.HighRisk != 1 || sales.Resigned != 0 {
		t.Fatalf("unexpected sales breakdown: %+v", sales)
	}
	if sales.MeanScore != 50 {
		t.Fatalf("expected sales mean 50, got %v", sales.MeanScore)
	}
	if out[0].Resigned != 1 {
		t.Fatalf("expected 1 resigned in engineering, got %d", out[0].Resigned)
	}
}

func TestTopRisk(t *testing.T) {
	rows := []scoring.RiskRow{
		{EmployeeID: "E2", RiskScore: 60},
		{EmployeeID: "E1", RiskScore: 60},
		{EmployeeID: "E3", RiskScore: 90},
		{EmployeeID: "E4", RiskScore: 10},
	}

	top := TopRisk(rows, 3)
	want := []string{"E3", "E1", "E2"}
	if len(top) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(top))
	}
	for i, id := range want {
		if top[i].EmployeeID != id {
			t.Fatalf("row %d: expected %s, got %s", i, id, top[i].EmployeeID)
		}
	}
	if rows[0].EmployeeID != "E2" {
		t.Fatal("expected input slice to be left untouched")
	}
	if TopRisk(rows, 0) != nil {
		t.Fatal("expected nil for non-positive n")
	}
}

func TestResignedTenure(t *testing.T) {
	join := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	employees := []scoring.Employee{
		{ID: "E1", Status: scoring.StatusResigned, JoinDate: join, ResignDate: join.AddDate(0, 0, 100)},
		{ID: "E2", Status: scoring.StatusResigned, JoinDate: join, ResignDate: join.AddDate(0, 0, 300)},
		{ID: "E3", Status: scoring.StatusResigned, JoinDate: join, ResignDate: join}, // zero span
		{ID: "E4", Status: scoring.StatusResigned},                                   // missing dates
		{ID: "E5", Status: scoring.StatusActive, JoinDate: join},
	}

	stats := ResignedTenure(employees)
	if stats.Count != 2 {
		t.Fatalf("expected 2 counted employees, got %d", stats.Count)
	}
	if stats.MinDays != 100 || stats.MaxDays != 300 {
		t.Fatalf("unexpected min/max: %d/%d", stats.MinDays, stats.MaxDays)
	}
	if stats.MeanDays != 200 {
		t.Fatalf("expected mean 200, got %v", stats.MeanDays)
	}
}

func TestBuildSummary(t *testing.T) {
	employees := []scoring.Employee{
		{ID: "E1", Status: scoring.StatusActive},
		{ID: "E2", Status: scoring.StatusActive},
		{ID: "E3", Status: scoring.StatusResigned},
	}
	riskRows := []scoring.RiskRow{
		{EmployeeID: "E1", Department: "Sales", RiskScore: 80, RiskLevel: scoring.RiskHigh},
		{EmployeeID: "E2", Department: "Sales", RiskScore: 10, RiskLevel: scoring.RiskLow},
		{EmployeeID: "E3", Department: "Sales", RiskScore: 100, RiskLevel: scoring.RiskResigned},
	}
	healthRows := []scoring.HealthRow{
		{ProjectID: "P1", HealthStatus: scoring.HealthAtRisk},
	}

	summary := BuildSummary(employees, riskRows, healthRows, 2)
	if summary.TotalEmployees != 3 || summary.ActiveEmployees != 2 || summary.ResignedEmployees != 1 {
		t.Fatalf("unexpected headcounts: %+v", summary)
	}
	if summary.AttritionRate != 33.3 {
		t.Fatalf("expected attrition rate 33.3, got %v", summary.AttritionRate)
	}
	if len(summary.TopRisk) != 2 {
		t.Fatalf("expected top list truncated to 2, got %d", len(summary.TopRisk))
	}
	if summary.TopRisk[0].EmployeeID != "E3" {
		t.Fatalf("expected highest score first, got %s", summary.TopRisk[0].EmployeeID)
	}
	if summary.HealthStatuses[scoring.HealthAtRisk] != 1 {
		t.Fatalf("unexpected health statuses: %v", summary.HealthStatuses)
	}
}

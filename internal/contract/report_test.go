package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDashboardStatusScenario(t *testing.T) {
	records := []Record{
		{ProcessCode: "BYS-001", EndDate: endIn(-5)},
		{ProcessCode: "BYS-002", EndDate: endIn(45)},
		{ProcessCode: "BYS-003", EndDate: endIn(200)},
	}
	d := BuildDashboard(records, "all", refDate)

	assert.Equal(t, 3, d.Total)
	assert.Equal(t, 1, d.Statuses.Critical)
	assert.Equal(t, 1, d.Statuses.Warning)
	assert.Equal(t, 1, d.Statuses.Safe)
	assert.Equal(t, 0, d.Statuses.Unknown)
	assert.Equal(t, 0, d.Statuses.Sent)
	assert.Equal(t, 1, d.Statuses.Green)
}

func TestBuildDashboardKeepsSentAndSafeDistinct(t *testing.T) {
	records := []Record{
		{EndDate: endIn(200)},
		{EndDate: endIn(-5), AlertSent: "si"},
	}
	d := BuildDashboard(records, "", refDate)
	assert.Equal(t, 1, d.Statuses.Safe)
	assert.Equal(t, 1, d.Statuses.Sent)
	assert.Equal(t, 2, d.Statuses.Green)
}

func TestBuildDashboardValueSums(t *testing.T) {
	records := []Record{
		{EstimatedValue: "1000.50", ContractedValue: "900"},
		{EstimatedValue: "2000", ContractedValue: "sin definir"},
		{EstimatedValue: "", ContractedValue: "100.25"},
	}
	d := BuildDashboard(records, "all", refDate)
	assert.InDelta(t, 3000.50, d.EstimatedTotal, 0.001)
	assert.InDelta(t, 1000.25, d.ContractedTotal, 0.001)
}

func TestBuildDashboardProcessFilter(t *testing.T) {
	records := []Record{
		{ProcessCode: "BYS-001", EstimatedValue: "100"},
		{ProcessCode: "BYS-001", EstimatedValue: "200"},
		{ProcessCode: "BYS-002", EstimatedValue: "5000"},
	}
	d := BuildDashboard(records, "BYS-001", refDate)
	assert.Equal(t, 2, d.Total)
	assert.InDelta(t, 300, d.EstimatedTotal, 0.001)

	for _, code := range []string{"", "all"} {
		d = BuildDashboard(records, code, refDate)
		assert.Equal(t, 3, d.Total, "process=%q", code)
	}
}

func TestBuildDashboardFrequencies(t *testing.T) {
	records := []Record{
		{ProcessStatus: "En Ejecución", FundingSource: "Inversión"},
		{ProcessStatus: "En Ejecución", FundingSource: "Funcionamiento"},
		{ProcessStatus: "Liquidado", FundingSource: "Inversión"},
	}
	d := BuildDashboard(records, "all", refDate)

	assert.Equal(t, []CategoryCount{
		{Value: "En Ejecución", Count: 2},
		{Value: "Liquidado", Count: 1},
	}, d.ByStatus)
	assert.Equal(t, []CategoryCount{
		{Value: "Inversión", Count: 2},
		{Value: "Funcionamiento", Count: 1},
	}, d.ByFundingSource)
}

func TestBuildDashboardStartsByMonth(t *testing.T) {
	records := []Record{
		{StartDate: "2026-03-02"},
		{StartDate: "2025-11-20"},
		{StartDate: "2026-03-15"},
		{StartDate: "fecha pendiente"}, // excluded, not a bucket
		{StartDate: ""},
	}
	d := BuildDashboard(records, "all", refDate)
	assert.Equal(t, []MonthCount{
		{Month: "2025-11", Count: 1},
		{Month: "2026-03", Count: 2},
	}, d.StartsByMonth)
}

func TestExpiringContracts(t *testing.T) {
	records := []Record{
		{ID: 1, ProcessCode: "BYS-001", EndDate: endIn(45)},
		{ID: 2, ProcessCode: "BYS-002", EndDate: endIn(-5)},
		{ID: 3, ProcessCode: "BYS-003", EndDate: endIn(200)},
		{ID: 4, ProcessCode: "BYS-004", EndDate: endIn(10), AlertSent: "si"},
		{ID: 5, ProcessCode: "BYS-005"},
	}
	alerts := ExpiringContracts(records, refDate)

	// only Critical and Warning, most urgent first
	assert.Len(t, alerts, 2)
	assert.Equal(t, int64(2), alerts[0].ID)
	assert.Equal(t, -5, alerts[0].DaysRemaining)
	assert.Equal(t, StatusCritical, alerts[0].Status)
	assert.Equal(t, "🔴", alerts[0].Indicator)
	assert.Equal(t, int64(1), alerts[1].ID)
	assert.Equal(t, 45, alerts[1].DaysRemaining)
	assert.Equal(t, StatusWarning, alerts[1].Status)
}

func TestExpiringContractsEmptyInput(t *testing.T) {
	assert.Empty(t, ExpiringContracts(nil, refDate))
}

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbookHeader(t *testing.T) {
	f, err := WriteWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	labels := make([]string, len(Fields))
	for i, spec := range Fields {
		labels[i] = spec.Label
	}
	assert.Equal(t, labels, rows[0])
}

func TestWriteWorkbookNormalizesValues(t *testing.T) {
	records := []Record{
		{
			ID:             99, // identity must not appear in the sheet
			ProcessCode:    "BYS-001",
			EndDate:        "2024-3-5",
			EstimatedValue: "1500.75",
			ContractNumber: "117",
			StartDate:      "no definida",
			CDPTotal:       "pendiente",
		},
	}
	f, err := WriteWorkbook(records)
	require.NoError(t, err)
	defer f.Close()

	cell := func(key string) string {
		for i, spec := range Fields {
			if spec.Key == key {
				name, err := excelize.CoordinatesToCellName(i+1, 2)
				require.NoError(t, err)
				v, err := f.GetCellValue(SheetName, name)
				require.NoError(t, err)
				return v
			}
		}
		t.Fatalf("unknown field %s", key)
		return ""
	}

	assert.Equal(t, "BYS-001", cell("process_code"))
	assert.Equal(t, "2024-03-05", cell("end_date"))
	assert.Equal(t, "1500.75", cell("estimated_value"))
	assert.Equal(t, "117", cell("contract_number"))
	// unparseable date and amount export as blanks
	assert.Equal(t, "", cell("start_date"))
	assert.Equal(t, "", cell("cdp_total"))

	// the numeric cells carry a numeric type, not text
	for i, spec := range Fields {
		if spec.Key == "estimated_value" {
			name, _ := excelize.CoordinatesToCellName(i+1, 2)
			typ, err := f.GetCellType(SheetName, name)
			require.NoError(t, err)
			assert.NotEqual(t, excelize.CellTypeSharedString, typ)
		}
	}
}

func TestWriteWorkbookRowCount(t *testing.T) {
	records := []Record{{ProcessCode: "A"}, {ProcessCode: "B"}, {ProcessCode: "C"}}
	f, err := WriteWorkbook(records)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, "A", rows[1][0])
	assert.Equal(t, "C", rows[3][0])
}

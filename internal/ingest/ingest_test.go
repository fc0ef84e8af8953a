package ingest

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameFromCSV(t *testing.T, csv string) dataframe.DataFrame {
	t.Helper()
	df := dataframe.ReadCSV(strings.NewReader(csv),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	require.NoError(t, df.Err)
	return df
}

func TestRecordsFromFrameByLabel(t *testing.T) {
	df := frameFromCSV(t, ""+
		"Código Interno / Proceso,Fecha Final Contrato,Valor estimado en la vigencia actual\n"+
		"BYS-001,2026-12-31,1500.75\n"+
		"BYS-002,,\n")

	records, skipped := RecordsFromFrame(df)
	require.Len(t, records, 2)
	assert.Empty(t, skipped)

	assert.Equal(t, "BYS-001", records[0].ProcessCode)
	assert.Equal(t, "2026-12-31", records[0].EndDate)
	assert.Equal(t, "1500.75", records[0].EstimatedValue)

	assert.Equal(t, "BYS-002", records[1].ProcessCode)
	assert.Equal(t, "", records[1].EndDate)
}

func TestRecordsFromFrameByKey(t *testing.T) {
	df := frameFromCSV(t, "process_code,provider\nBYS-001,ACME S.A.S.\n")

	records, skipped := RecordsFromFrame(df)
	require.Len(t, records, 1)
	assert.Empty(t, skipped)
	assert.Equal(t, "BYS-001", records[0].ProcessCode)
	assert.Equal(t, "ACME S.A.S.", records[0].Provider)
}

func TestRecordsFromFrameSkipsUnknownColumns(t *testing.T) {
	df := frameFromCSV(t, "process_code,columna_misteriosa\nBYS-001,dato\n")

	records, skipped := RecordsFromFrame(df)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"columna_misteriosa"}, skipped)
	assert.Equal(t, "BYS-001", records[0].ProcessCode)
}

func TestRecordsFromFrameMissingColumnsStayEmpty(t *testing.T) {
	df := frameFromCSV(t, "process_code\nBYS-001\n")

	records, _ := RecordsFromFrame(df)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].EndDate)
	assert.Equal(t, "", records[0].AlertSent)
}

package ingest

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/charmap"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/contract"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/logger"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/store"
)

const component = "Ingest"

// Summary reports what a bulk load did.
type Summary struct {
	Rows           int
	Inserted       int
	Failed         int
	SkippedColumns []string
}

// ReadCSV loads a CSV file into a dataframe with every column kept as text.
// Legacy exports from the old spreadsheet tooling are Latin-1; pass
// encoding "latin1" to transcode them.
func ReadCSV(path, encoding string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if encoding == "latin1" {
		r = charmap.ISO8859_1.NewDecoder().Reader(f)
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("failed to parse %s: %w", path, df.Err)
	}
	return df, nil
}

// RecordsFromFrame maps dataframe columns onto catalog fields, by label
// first (the headers of the tool's own export) and by key as a fallback.
// Columns matching neither are reported back as skipped; catalog fields
// absent from the frame stay empty strings.
func RecordsFromFrame(df dataframe.DataFrame) ([]contract.Record, []string) {
	type binding struct {
		col  string
		spec contract.FieldSpec
	}
	var bindings []binding
	var skipped []string
	for _, name := range df.Names() {
		spec, ok := contract.FieldByLabel(name)
		if !ok {
			spec, ok = contract.FieldByKey(name)
		}
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		bindings = append(bindings, binding{col: name, spec: spec})
	}

	records := make([]contract.Record, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		for _, b := range bindings {
			v := df.Col(b.col).Elem(i).String()
			if v == "NaN" {
				v = ""
			}
			b.spec.Set(&records[i], v)
		}
	}
	return records, skipped
}

// Load inserts every row of the frame through the store. Row failures are
// logged and counted, not fatal; the import is best effort by design.
func Load(ctx context.Context, df dataframe.DataFrame, storage *store.Storage, appLogger *logger.Logger) Summary {
	records, skipped := RecordsFromFrame(df)
	for _, col := range skipped {
		appLogger.Warn(component, "Skipping unknown column: %s", col)
	}

	summary := Summary{Rows: len(records), SkippedColumns: skipped}
	for i := range records {
		if err := storage.Contracts.Insert(ctx, &records[i]); err != nil {
			appLogger.Error(component, "Failed to insert row %d: %v", i+1, err)
			summary.Failed++
			continue
		}
		summary.Inserted++
	}
	appLogger.Info(component, "Load finished: rows=%d inserted=%d failed=%d", summary.Rows, summary.Inserted, summary.Failed)
	return summary
}

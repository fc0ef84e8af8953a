package main

import (
	"fmt"
	"net/http"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/contract"
)

func (app *application) handleExport(w http.ResponseWriter, r *http.Request) {
	records, err := app.store.Contracts.GetAll(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch contracts: "+err.Error())
		return
	}

	f, err := contract.WriteWorkbook(records)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to build workbook: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", contract.ExportMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", contract.ExportFilename))
	if err := f.Write(w); err != nil {
		app.logger.Error(component, "Failed to stream export: %v", err)
	}
}

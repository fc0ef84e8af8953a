package main

import (
	"net/http"
	"time"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/contract"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/response"
)

type GetDashboardResponse = response.APIResponse[contract.Dashboard]

func (app *application) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	records, err := app.store.Contracts.GetAll(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch contracts: "+err.Error())
		return
	}

	process := r.URL.Query().Get("process")
	resp := &GetDashboardResponse{
		Success: true,
		Data:    contract.BuildDashboard(records, process, time.Now()),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

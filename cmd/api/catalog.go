package main

import (
	"net/http"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/contract"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/response"
)

type catalogData struct {
	Fields  []contract.FieldSpec `json:"fields"`
	Options map[string][]string  `json:"options"`
}

type GetCatalogResponse = response.APIResponse[catalogData]

// handleGetCatalog exposes the field catalog and the fixed option sets so
// form clients can build their inputs from one source of truth.
func (app *application) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	resp := &GetCatalogResponse{
		Success: true,
		Data: catalogData{
			Fields:  contract.Fields,
			Options: contract.Options,
		},
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/contract"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/response"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/store"
)

// contractView decorates a record with its traffic-light state and,
// optionally, display-formatted field values.
type contractView struct {
	contract.Record
	Status    contract.Status   `json:"status"`
	Indicator string            `json:"indicator"`
	Display   map[string]string `json:"display,omitempty"`
}

type ListContractsResponse = response.APIResponse[[]contractView]
type GetContractResponse = response.APIResponse[contractView]
type CreateContractResponse = response.APIResponse[map[string]int64]
type ListAlertsResponse = response.APIResponse[[]contract.ExpiringContract]

func viewsOf(records []contract.Record, today time.Time, withDisplay bool) []contractView {
	views := make([]contractView, len(records))
	for i := range records {
		views[i] = contractView{
			Record:    records[i],
			Status:    contract.Evaluate(&records[i], today),
			Indicator: contract.Evaluate(&records[i], today).Indicator(),
		}
		if withDisplay {
			views[i].Display = contract.DisplayValues(&records[i])
		}
	}
	return views
}

func (app *application) handleListContracts(w http.ResponseWriter, r *http.Request) {
	records, err := app.store.Contracts.GetAll(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch contracts: "+err.Error())
		return
	}

	withDisplay := r.URL.Query().Get("format") == "display"
	resp := &ListContractsResponse{
		Success: true,
		Data:    viewsOf(records, time.Now(), withDisplay),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetContract(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	record, err := app.store.Contracts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch contract: "+err.Error())
		return
	}

	now := time.Now()
	resp := &GetContractResponse{
		Success: true,
		Data: contractView{
			Record:    *record,
			Status:    contract.Evaluate(record, now),
			Indicator: contract.Evaluate(record, now).Indicator(),
			Display:   contract.DisplayValues(record),
		},
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleCreateContract(w http.ResponseWriter, r *http.Request) {
	var record contract.Record
	if err := readJSON(w, r, &record); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	record.ID = 0

	if err := app.store.Contracts.Insert(r.Context(), &record); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to insert contract: "+err.Error())
		return
	}
	app.logger.Info(component, "Contract created: id=%d process=%s", record.ID, record.ProcessCode)

	resp := &CreateContractResponse{
		Success: true,
		Message: "Contract created",
		Data:    map[string]int64{"id": record.ID},
	}
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleUpdateContract(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	var record contract.Record
	if err := readJSON(w, r, &record); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	record.ID = id

	if err := app.store.Contracts.Update(r.Context(), &record); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to update contract: "+err.Error())
		return
	}
	app.logger.Info(component, "Contract updated: id=%d", id)

	resp := &response.APIResponse[map[string]int64]{
		Success: true,
		Message: "Contract updated",
		Data:    map[string]int64{"id": id},
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleDeleteContract(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	if err := app.store.Contracts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to delete contract: "+err.Error())
		return
	}
	app.logger.Info(component, "Contract deleted: id=%d", id)

	resp := &response.APIResponse[map[string]int64]{
		Success: true,
		Message: "Contract deleted",
		Data:    map[string]int64{"id": id},
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

type searchRequest struct {
	Conditions []contract.Condition `json:"conditions"`
}

func (app *application) handleSearchContracts(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	records, err := app.store.Contracts.GetAll(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch contracts: "+err.Error())
		return
	}

	filtered, err := contract.Apply(records, req.Conditions)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := &ListContractsResponse{
		Success: true,
		Data:    viewsOf(filtered, time.Now(), r.URL.Query().Get("format") == "display"),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	records, err := app.store.Contracts.GetAll(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch contracts: "+err.Error())
		return
	}

	resp := &ListAlertsResponse{
		Success: true,
		Data:    contract.ExpiringContracts(records, time.Now()),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

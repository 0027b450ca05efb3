package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"github.com/vfg2006/lead-manager-api/internal/usecases/lead"
	"github.com/vfg2006/lead-manager-api/internal/usecases/scheduling"
	"github.com/vfg2006/lead-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseIDParam extrai e valida o parâmetro :id da URL
func parseIDParam(r *http.Request) (uuid.UUID, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return uuid.Parse(idStr)
}

func parsePagination(r *http.Request) domain.Pagination {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))

	return domain.Pagination{
		Page:    page,
		PerPage: perPage,
		SortBy:  query.Get("sort_by"),
		SortDir: query.Get("sort_dir"),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logrus.Error(err)
		}
	}
}

func CreateLead(service lead.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateLead")

		var req domain.CreateLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateLead(&req)
		if err != nil {
			handleLeadError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetLead(service lead.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		found, err := service.GetLead(leadID)
		if err != nil {
			handleLeadError(w, err)
			return
		}

		nextCall, err := service.NextCallDate(leadID)
		if err != nil {
			handleLeadError(w, err)
			return
		}

		today := scheduling.NormalizeDate(time.Now())
		writeJSON(w, http.StatusOK, struct {
			*domain.Lead
			NextCallDate      string `json:"next_call_date"`
			RequiresCallToday bool   `json:"requires_call_today"`
		}{
			Lead:              found,
			NextCallDate:      nextCall.Format(time.DateOnly),
			RequiresCallToday: scheduling.IsDueToday(found, today),
		})
	}
}

func UpdateLead(service lead.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		var req domain.UpdateLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateLead(leadID, &req)
		if err != nil {
			handleLeadError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

type UpdateLeadStatusRequest struct {
	Status domain.LeadStatus `json:"status"`
}

func UpdateLeadStatus(service lead.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		var req UpdateLeadStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateStatus(leadID, req.Status)
		if err != nil {
			handleLeadError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteLead(service lead.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteLead")

		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		if err := service.DeleteLead(leadID); err != nil {
			handleLeadError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListLeads lista a carteira de um KAM com filtros combinados de busca,
// status e cidade
func ListLeads(service lead.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		query := r.URL.Query()
		filters := domain.LeadFilters{
			SearchTerm: query.Get("search"),
			City:       query.Get("city"),
		}
		if statusParam := query.Get("status"); statusParam != "" {
			for _, s := range strings.Split(statusParam, ",") {
				filters.Statuses = append(filters.Statuses, domain.LeadStatus(strings.TrimSpace(s)))
			}
		}

		result, err := service.ListLeads(kamID, filters, parsePagination(r))
		if err != nil {
			handleLeadError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// LeadsDueToday devolve os leads do KAM cuja cadência de ligação venceu
func LeadsDueToday(service lead.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		due, err := service.LeadsRequiringCalls(kamID)
		if err != nil {
			handleLeadError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, due)
	}
}

func LeadSummary(service lead.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		summary, err := service.Summary(kamID)
		if err != nil {
			handleLeadError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func handleLeadError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, lead.ErrLeadNotFound):
		apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado", nil)

	case errors.Is(err, lead.ErrKamNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "KAM não encontrado", nil)

	case errors.Is(err, lead.ErrInvalidFrequency):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFrequency, err.Error(), nil)

	case errors.Is(err, lead.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, lead.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}

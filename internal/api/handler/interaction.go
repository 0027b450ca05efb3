package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"github.com/vfg2006/lead-manager-api/internal/usecases/interacting"
	"github.com/vfg2006/lead-manager-api/pkg/apiErrors"
	"github.com/vfg2006/lead-manager-api/pkg/utils"
)

func RegisterInteraction(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterInteraction")

		var req domain.CreateInteractionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.RegisterInteraction(&req)
		if err != nil {
			handleInteractionError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetInteraction(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		interactionID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da interação inválido", nil)
			return
		}

		found, err := service.GetInteraction(interactionID)
		if err != nil {
			handleInteractionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, found)
	}
}

func UpdateInteraction(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		interactionID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da interação inválido", nil)
			return
		}

		var req domain.UpdateInteractionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateInteraction(interactionID, &req)
		if err != nil {
			handleInteractionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteInteraction(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteInteraction")

		interactionID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da interação inválido", nil)
			return
		}

		if err := service.DeleteInteraction(interactionID); err != nil {
			handleInteractionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// InteractionsForLead lista o histórico de interações de um lead, da mais
// recente para a mais antiga
func InteractionsForLead(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		result, err := service.InteractionsForLead(leadID, parsePagination(r))
		if err != nil {
			handleInteractionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// InteractionsForKam lista as interações do KAM dentro de um intervalo de
// datas obrigatório (start_date e end_date no formato YYYY-MM-DD)
func InteractionsForKam(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		query := r.URL.Query()
		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil || startDate.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
			return
		}
		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil || endDate.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		result, err := service.InteractionsForKam(kamID, *startDate, *endDate, parsePagination(r))
		if err != nil {
			handleInteractionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func FollowUpsForToday(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		followUps, err := service.FollowUpsForToday(kamID)
		if err != nil {
			handleInteractionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, followUps)
	}
}

func RecentActivity(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		summary, err := service.RecentActivity(leadID)
		if err != nil {
			handleInteractionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// KamActivity resume as interações do KAM por tipo nos últimos 30 dias
func KamActivity(service interacting.Interactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		summary, err := service.KamActivity(kamID)
		if err != nil {
			handleInteractionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func handleInteractionError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, interacting.ErrInteractionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInteractionNotFound, "Interação não encontrada", nil)

	case errors.Is(err, interacting.ErrLeadNotFound):
		apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado", nil)

	case errors.Is(err, interacting.ErrKamNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "KAM não encontrado", nil)

	case errors.Is(err, interacting.ErrInvalidType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de interação inválido", nil)

	case errors.Is(err, interacting.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de interação inválido", nil)

	case errors.Is(err, interacting.ErrNegativeOrderValue):
		apiErrors.WriteError(w, apiErrors.ErrNegativeOrderValue, "Valor do pedido não pode ser negativo", nil)

	case errors.Is(err, interacting.ErrMissingOrderValue):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Interação de pedido exige valor", nil)

	case errors.Is(err, interacting.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Intervalo de datas inválido", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}

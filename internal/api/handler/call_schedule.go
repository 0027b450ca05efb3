package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"github.com/vfg2006/lead-manager-api/internal/usecases/scheduling"
	"github.com/vfg2006/lead-manager-api/pkg/apiErrors"
)

func CreateCallSchedule(service scheduling.CallScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCallSchedule")

		var req domain.CreateCallScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateSchedule(&req)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetCallSchedule(service scheduling.CallScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do agendamento inválido", nil)
			return
		}

		schedule, err := service.GetSchedule(scheduleID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, schedule)
	}
}

func EditCallSchedule(service scheduling.CallScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do agendamento inválido", nil)
			return
		}

		var req domain.EditCallScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.EditSchedule(scheduleID, &req)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteCallSchedule(service scheduling.CallScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCallSchedule")

		scheduleID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do agendamento inválido", nil)
			return
		}

		if err := service.DeleteSchedule(scheduleID); err != nil {
			handleSchedulingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// transitionHandler cobre os desfechos de ligação que não precisam de corpo
// na requisição (complete, miss, busy e cancel)
func transitionHandler(transition func(scheduleID uuid.UUID) (*domain.CallSchedule, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do agendamento inválido", nil)
			return
		}

		updated, err := transition(scheduleID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func CompleteCall(service scheduling.CallScheduler) http.HandlerFunc {
	return transitionHandler(service.CompleteCall)
}

func MissCall(service scheduling.CallScheduler) http.HandlerFunc {
	return transitionHandler(service.MissCall)
}

func MarkBusy(service scheduling.CallScheduler) http.HandlerFunc {
	return transitionHandler(service.MarkBusy)
}

func CancelCall(service scheduling.CallScheduler) http.HandlerFunc {
	return transitionHandler(service.CancelCall)
}

type RescheduleCallRequest struct {
	NewDate string `json:"new_date"`
}

func RescheduleCall(service scheduling.CallScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do agendamento inválido", nil)
			return
		}

		var req RescheduleCallRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		newDate, err := time.Parse(time.DateOnly, req.NewDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato YYYY-MM-DD", nil)
			return
		}

		updated, err := service.RescheduleCall(scheduleID, newDate)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// CallsForToday devolve a agenda do dia do KAM ordenada por prioridade
func CallsForToday(service scheduling.CallScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		calls, err := service.CallsForToday(kamID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, calls)
	}
}

func OverdueCalls(service scheduling.CallScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		calls, err := service.OverdueCalls(kamID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, calls)
	}
}

func UpcomingCallsForLead(service scheduling.CallScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		calls, err := service.UpcomingCallsForLead(leadID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, calls)
	}
}

func handleSchedulingError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, scheduling.ErrScheduleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrScheduleNotFound, "Agendamento não encontrado", nil)

	case errors.Is(err, scheduling.ErrLeadNotFound):
		apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado", nil)

	case errors.Is(err, scheduling.ErrKamNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "KAM não encontrado", nil)

	case errors.Is(err, scheduling.ErrScheduleTerminal):
		apiErrors.WriteError(w, apiErrors.ErrScheduleTerminal, "Agendamento já finalizado não pode ser alterado", nil)

	case errors.Is(err, scheduling.ErrImmutableAssignment):
		apiErrors.WriteError(w, apiErrors.ErrImmutableAssignment, "KAM e lead de um agendamento não podem ser trocados", nil)

	case errors.Is(err, scheduling.ErrPastRescheduleDate):
		apiErrors.WriteError(w, apiErrors.ErrPastScheduleDate, "Data de reagendamento não pode estar no passado", nil)

	case errors.Is(err, scheduling.ErrInvalidPriority):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPriority, "Prioridade deve estar entre 1 e 5", nil)

	case errors.Is(err, scheduling.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}

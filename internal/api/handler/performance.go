package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"github.com/vfg2006/lead-manager-api/internal/usecases/scoring"
	"github.com/vfg2006/lead-manager-api/pkg/apiErrors"
)

type RecomputeScoreResponse struct {
	LeadID string  `json:"lead_id"`
	Score  float64 `json:"performance_score"`
}

// RecomputeLeadScore dispara o recálculo da pontuação de um lead e
// devolve o valor recém-persistido
func RecomputeLeadScore(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecomputeLeadScore")

		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		score, err := service.RecomputeScore(leadID)
		if err != nil {
			handleScoringError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RecomputeScoreResponse{
			LeadID: leadID.String(),
			Score:  score,
		})
	}
}

func LeadPerformance(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		performance, err := service.LeadPerformance(leadID)
		if err != nil {
			handleScoringError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, performance)
	}
}

// KamPerformance consolida a visão de desempenho de toda a carteira do KAM
func KamPerformance(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kamID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do KAM inválido", nil)
			return
		}

		report, err := service.KamPerformance(kamID)
		if err != nil {
			handleScoringError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// ScoreHistory devolve a série histórica de pontuação do lead. Aceita
// period (DAILY, WEEKLY ou MONTHLY) e limit como parâmetros de consulta.
func ScoreHistory(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := parseIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do lead inválido", nil)
			return
		}

		query := r.URL.Query()
		periodType := domain.PeriodType(query.Get("period"))
		if periodType == "" {
			periodType = domain.PeriodTypeDaily
		}

		limit, _ := strconv.Atoi(query.Get("limit"))

		history, err := service.ScoreHistory(leadID, periodType, limit)
		if err != nil {
			handleScoringError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, history)
	}
}

func handleScoringError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, scoring.ErrLeadNotFound):
		apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado", nil)

	case errors.Is(err, scoring.ErrKamNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "KAM não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}

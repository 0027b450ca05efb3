package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/internal/scheduler"
)

type SnapshotStatusResponse struct {
	Running     bool   `json:"running"`
	StartedAt   string `json:"started_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// RunScoreSnapshot dispara manualmente o mesmo lote que o agendador roda
// todas as noites
func RunScoreSnapshot(service *scheduler.ScoreSnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunScoreSnapshot")

		go func() {
			if err := service.SnapshotScores(); err != nil {
				logrus.Errorf("Erro no lote manual de pontuação: %v", err)
			}
		}()

		writeJSON(w, http.StatusAccepted, map[string]string{
			"message": "Recalculo de pontuações iniciado",
		})
	}
}

func GetScoreSnapshotStatus(service *scheduler.ScoreSnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startedAt, completedAt, running := service.LastRun()

		resp := SnapshotStatusResponse{Running: running}
		if !startedAt.IsZero() {
			resp.StartedAt = startedAt.Format(time.RFC3339)
		}
		if !completedAt.IsZero() {
			resp.CompletedAt = completedAt.Format(time.RFC3339)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

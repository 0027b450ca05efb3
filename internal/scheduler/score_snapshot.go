// Package scheduler contém os serviços de agendamento de tarefas recorrentes
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/infrastructure/repository"
	"github.com/vfg2006/lead-manager-api/internal/config"
	"github.com/vfg2006/lead-manager-api/internal/usecases/scoring"
)

type ScoreSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// ScoreSnapshotService recalcula periodicamente a pontuação de todos os
// leads ativos e grava o retrato diário na série histórica. O recálculo
// sob demanda continua disponível pela API; o cron apenas evita que a
// série fique com buracos em dias sem tráfego.
type ScoreSnapshotService struct {
	scheduler           *gocron.Scheduler
	leadRepo            repository.LeadRepository
	scorer              scoring.Scorer
	config              ScoreSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
}

func NewScoreSnapshotService(
	leadRepo repository.LeadRepository,
	scorer scoring.Scorer,
	cfg *config.Config,
) *ScoreSnapshotService {
	snapshotConfig := ScoreSnapshotConfig{
		CronSchedule: cfg.ScoreSnapshot.CronSchedule, // Default: 3h da manhã todos os dias
		Enabled:      cfg.ScoreSnapshot.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de retrato de pontuações carregada")

	return &ScoreSnapshotService{
		scheduler: scheduler,
		leadRepo:  leadRepo,
		scorer:    scorer,
		config:    snapshotConfig,
	}
}

func (s *ScoreSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de retrato de pontuações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de retrato de pontuações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SnapshotScores(); err != nil {
			logrus.WithError(err).Error("Erro no retrato de pontuações")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retrato de pontuações: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de retrato de pontuações")
		s.scheduler.Stop()
	}()

	return nil
}

// SnapshotScores percorre todos os leads ativos recalculando a pontuação.
// Falha em um lead não interrompe o lote: o erro é registrado e o
// processamento segue para o próximo.
func (s *ScoreSnapshotService) SnapshotScores() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Retrato de pontuações já em execução, pulando esta rodada")
		return nil
	}
	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	leadIDs, err := s.leadRepo.ListActiveLeadIDs()
	if err != nil {
		return fmt.Errorf("erro ao listar leads ativos: %w", err)
	}

	logrus.WithField("total_leads", len(leadIDs)).Info("Iniciando retrato de pontuações")

	var failures int
	for _, leadID := range leadIDs {
		if _, err := s.scorer.RecomputeScore(leadID); err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"lead_id": leadID,
			}).WithError(err).Error("Erro ao recalcular pontuação do lead")
		}
	}

	logrus.WithFields(logrus.Fields{
		"total_leads": len(leadIDs),
		"failures":    failures,
	}).Info("Retrato de pontuações concluído")

	return nil
}

// LastRun expõe as marcas da última execução para diagnóstico
func (s *ScoreSnapshotService) LastRun() (startedAt, completedAt time.Time, running bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastRunStartedAt, s.lastRunCompletedAt, s.syncRunning
}

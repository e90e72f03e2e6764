// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

type GoalProgressSyncConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

// GoalProgressSyncService apura periodicamente o avanço das metas a partir
// das vendas registradas e grava o resultado em goal_progress.
type GoalProgressSyncService struct {
	scheduler           *gocron.Scheduler
	goalRepo            repository.GoalRepository
	saleRepo            repository.SaleRepository
	progressRepo        repository.GoalProgressRepository
	config              GoalProgressSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewGoalProgressSyncService(
	goalRepo repository.GoalRepository,
	saleRepo repository.SaleRepository,
	progressRepo repository.GoalProgressRepository,
	cfg *config.Config,
) *GoalProgressSyncService {
	syncConfig := GoalProgressSyncConfig{
		CronSchedule: cfg.GoalProgressSync.CronSchedule,
		LookbackDays: cfg.GoalProgressSync.LookbackDays,
		Enabled:      cfg.GoalProgressSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
	}).Info("Configuração do agendador de apuração de metas carregada")

	return &GoalProgressSyncService{
		scheduler:    scheduler,
		goalRepo:     goalRepo,
		saleRepo:     saleRepo,
		progressRepo: progressRepo,
		config:       syncConfig,
	}
}

func (s *GoalProgressSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de apuração de avanço de metas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de apuração de avanço de metas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncGoalProgress(); err != nil {
			logrus.WithError(err).Error("Erro na apuração de avanço de metas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar apuração de avanço de metas: %w", err)
	}

	s.scheduler.StartAsync()

	// Para o cron quando o contexto da aplicação for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de apuração de avanço de metas")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncGoalProgress apura as metas cujo período toca a janela de lookback.
// Execuções concorrentes são recusadas silenciosamente.
func (s *GoalProgressSyncService) SyncGoalProgress() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Apuração de avanço de metas já em execução, ignorando disparo")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	return s.syncGoalProgressWithDate(time.Now())
}

func (s *GoalProgressSyncService) syncGoalProgressWithDate(referenceDate time.Time) error {
	end := domain.NewDate(referenceDate.Year(), referenceDate.Month(), referenceDate.Day())
	start := end.AddDays(-s.config.LookbackDays)

	goals, err := s.goalRepo.ListGoalsOverlapping(start, end)
	if err != nil {
		return fmt.Errorf("erro ao listar metas da janela de apuração: %w", err)
	}

	updated := s.processGoals(goals)

	logrus.WithFields(logrus.Fields{
		"window_start":  start.String(),
		"window_end":    end.String(),
		"goals_found":   len(goals),
		"goals_updated": updated,
	}).Info("Apuração de avanço de metas concluída")

	return nil
}

// processGoals apura cada meta com executivo e categoria definidos; metas
// sem uma das dimensões não têm vendas atribuíveis e são puladas.
func (s *GoalProgressSyncService) processGoals(goals []*domain.Goal) int {
	updated := 0

	for _, goal := range goals {
		if goal.ExecutiveID == nil || goal.CategoryID == nil {
			continue
		}

		quantity, amount, err := s.saleRepo.SumSalesByCategory(
			*goal.ExecutiveID,
			*goal.CategoryID,
			goal.PeriodStart,
			goal.PeriodEnd,
		)
		if err != nil {
			logrus.WithError(err).WithField("goal_id", goal.ID).Error("Erro ao apurar vendas da meta")
			continue
		}

		progress := &domain.GoalProgress{
			GoalID:           goal.ID,
			AttainedQuantity: quantity,
			AttainedAmount:   utils.RoundWithTwoDecimalPlace(amount),
		}

		if err := s.progressRepo.SaveOrUpdate(progress); err != nil {
			logrus.WithError(err).WithField("goal_id", goal.ID).Error("Erro ao gravar avanço da meta")
			continue
		}

		updated++
	}

	return updated
}

// Status informa se há apuração em andamento e os horários da última execução
func (s *GoalProgressSyncService) Status() (bool, time.Time, time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}

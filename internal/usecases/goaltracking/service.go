package goaltracking

import (
	"fmt"

	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

// Parâmetros da meta rápida: período de um único dia, uma venda esperada,
// peso ponderado cheio (100%).
const (
	quickGoalQuantity = 1
	quickGoalWeight   = 100
)

type GoalService interface {
	ListGoals() ([]*domain.Goal, error)
	GetGoal(id int) (*domain.Goal, error)
	CreateGoal(goal *domain.Goal) (*domain.Goal, error)
	UpdateGoal(goal *domain.Goal) (*domain.Goal, error)
	DeleteGoal(id int) (bool, error)
	GetProgress(goalID int) (*domain.GoalProgress, error)

	CheckCoverage(executiveID, categoryID *int, date *domain.Date) (*domain.CoverageResult, error)
	SynthesizeQuickGoal(executiveID, categoryID int, date domain.Date, targetAmount *float64) (*domain.Goal, error)
}

type Service struct {
	goalRepo     repository.GoalRepository
	progressRepo repository.GoalProgressRepository
}

func NewService(
	goalRepo repository.GoalRepository,
	progressRepo repository.GoalProgressRepository,
) GoalService {
	return &Service{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

func (s *Service) ListGoals() ([]*domain.Goal, error) {
	return s.goalRepo.ListGoals(200)
}

func (s *Service) GetGoal(id int) (*domain.Goal, error) {
	return s.goalRepo.GetGoalByID(id)
}

func (s *Service) CreateGoal(goal *domain.Goal) (*domain.Goal, error) {
	if err := validatePeriod(goal); err != nil {
		return nil, err
	}
	return s.goalRepo.CreateGoal(goal)
}

func (s *Service) UpdateGoal(goal *domain.Goal) (*domain.Goal, error) {
	if err := validatePeriod(goal); err != nil {
		return nil, err
	}
	return s.goalRepo.UpdateGoal(goal)
}

func (s *Service) DeleteGoal(id int) (bool, error) {
	return s.goalRepo.DeleteGoal(id)
}

// GetProgress devolve o avanço apurado pela sincronização agendada.
// Retorna nil quando a meta existe mas ainda não foi apurada.
func (s *Service) GetProgress(goalID int) (*domain.GoalProgress, error) {
	goal, err := s.goalRepo.GetGoalByID(goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	return s.progressRepo.GetByGoalID(goalID)
}

// CheckCoverage verifica se existe meta vigente para o executivo e a
// categoria na data informada. Quando qualquer dimensão está ausente não há
// meta a verificar e o resultado é "não existe", sem consulta ao banco.
func (s *Service) CheckCoverage(executiveID, categoryID *int, date *domain.Date) (*domain.CoverageResult, error) {
	if executiveID == nil || categoryID == nil || date == nil || date.IsZero() {
		return &domain.CoverageResult{Exists: false}, nil
	}

	goal, err := s.goalRepo.FindCoveringGoal(*executiveID, *categoryID, *date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if goal == nil {
		return &domain.CoverageResult{Exists: false}, nil
	}

	return &domain.CoverageResult{Exists: true, Goal: goal}, nil
}

// SynthesizeQuickGoal cria uma meta mínima de um dia cobrindo a data
// informada. Não é idempotente: cada chamada insere uma meta nova.
func (s *Service) SynthesizeQuickGoal(executiveID, categoryID int, date domain.Date, targetAmount *float64) (*domain.Goal, error) {
	quantity := quickGoalQuantity
	weight := quickGoalWeight

	goal := &domain.Goal{
		PeriodStart:    date,
		PeriodEnd:      date.AddDays(1),
		TargetQuantity: &quantity,
		TargetAmount:   targetAmount,
		Weight:         &weight,
		ExecutiveID:    &executiveID,
		CategoryID:     &categoryID,
	}

	created, err := s.goalRepo.CreateGoal(goal)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar meta rápida: %w", err)
	}

	log.L.WithFields(log.Fields{
		"goal_id":      created.ID,
		"executive_id": executiveID,
		"category_id":  categoryID,
		"period_start": created.PeriodStart.String(),
		"period_end":   created.PeriodEnd.String(),
	}).Info("Meta rápida criada")

	return created, nil
}

func validatePeriod(goal *domain.Goal) error {
	if goal.PeriodStart.IsZero() || goal.PeriodEnd.IsZero() {
		return ErrMissingRequiredData
	}
	if goal.PeriodStart.After(goal.PeriodEnd.Time) {
		return ErrInvalidPeriod
	}
	return nil
}

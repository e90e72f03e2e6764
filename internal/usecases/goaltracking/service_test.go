package goaltracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestService_CheckCoverage(t *testing.T) {
	date := domain.NewDate(2024, time.March, 10)
	coveringGoal := &domain.Goal{
		ID:          11,
		PeriodStart: domain.NewDate(2024, time.March, 1),
		PeriodEnd:   domain.NewDate(2024, time.March, 31),
		ExecutiveID: intPtr(3),
		CategoryID:  intPtr(4),
	}

	tests := []struct {
		name           string
		executiveID    *int
		categoryID     *int
		date           *domain.Date
		setup          func(goalRepo *mocks.MockGoalRepository)
		expectedExists bool
		expectedErr    error
	}{
		{
			name:        "Executivo ausente devolve não-existe sem consultar o banco",
			executiveID: nil,
			categoryID:  intPtr(4),
			date:        &date,
			setup:       func(_ *mocks.MockGoalRepository) {},
		},
		{
			name:        "Categoria ausente devolve não-existe sem consultar o banco",
			executiveID: intPtr(3),
			categoryID:  nil,
			date:        &date,
			setup:       func(_ *mocks.MockGoalRepository) {},
		},
		{
			name:        "Data ausente devolve não-existe sem consultar o banco",
			executiveID: intPtr(3),
			categoryID:  intPtr(4),
			date:        nil,
			setup:       func(_ *mocks.MockGoalRepository) {},
		},
		{
			name:        "Meta vigente encontrada",
			executiveID: intPtr(3),
			categoryID:  intPtr(4),
			date:        &date,
			setup: func(goalRepo *mocks.MockGoalRepository) {
				goalRepo.EXPECT().FindCoveringGoal(3, 4, date).Return(coveringGoal, nil)
			},
			expectedExists: true,
		},
		{
			name:        "Nenhuma meta cobre a data",
			executiveID: intPtr(3),
			categoryID:  intPtr(4),
			date:        &date,
			setup: func(goalRepo *mocks.MockGoalRepository) {
				goalRepo.EXPECT().FindCoveringGoal(3, 4, date).Return(nil, nil)
			},
		},
		{
			name:        "Erro do banco é sinalizado como indisponibilidade",
			executiveID: intPtr(3),
			categoryID:  intPtr(4),
			date:        &date,
			setup: func(goalRepo *mocks.MockGoalRepository) {
				goalRepo.EXPECT().FindCoveringGoal(3, 4, date).Return(nil, assert.AnError)
			},
			expectedErr: ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
			tt.setup(mockGoalRepo)

			service := &Service{goalRepo: mockGoalRepo}

			result, err := service.CheckCoverage(tt.executiveID, tt.categoryID, tt.date)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedExists, result.Exists)
			if tt.expectedExists {
				assert.Equal(t, coveringGoal, result.Goal)
			} else {
				assert.Nil(t, result.Goal)
			}
		})
	}
}

func TestService_SynthesizeQuickGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)

	date := domain.NewDate(2024, time.March, 10)
	amount := floatPtr(1500.50)

	mockGoalRepo.EXPECT().CreateGoal(gomock.Any()).DoAndReturn(func(goal *domain.Goal) (*domain.Goal, error) {
		// A meta rápida cobre um único dia, com quantidade 1 e peso cheio
		assert.Equal(t, date, goal.PeriodStart)
		assert.Equal(t, date.AddDays(1), goal.PeriodEnd)
		assert.Equal(t, 1, *goal.TargetQuantity)
		assert.Equal(t, 100, *goal.Weight)
		assert.Equal(t, 3, *goal.ExecutiveID)
		assert.Equal(t, 4, *goal.CategoryID)
		assert.Equal(t, 1500.50, *goal.TargetAmount)

		goal.ID = 55
		return goal, nil
	})

	service := &Service{goalRepo: mockGoalRepo}

	created, err := service.SynthesizeQuickGoal(3, 4, date, amount)

	assert.NoError(t, err)
	assert.Equal(t, 55, created.ID)
}

func TestService_CreateGoal_validation(t *testing.T) {
	tests := []struct {
		name        string
		goal        *domain.Goal
		expectedErr error
	}{
		{
			name:        "Período ausente é recusado",
			goal:        &domain.Goal{},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name: "Início depois do fim é recusado",
			goal: &domain.Goal{
				PeriodStart: domain.NewDate(2024, time.April, 10),
				PeriodEnd:   domain.NewDate(2024, time.April, 1),
			},
			expectedErr: ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := &Service{goalRepo: mocks.NewMockGoalRepository(ctrl)}

			created, err := service.CreateGoal(tt.goal)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, created)
		})
	}
}

func TestService_GetProgress(t *testing.T) {
	goal := &domain.Goal{ID: 11}
	progress := &domain.GoalProgress{GoalID: 11, AttainedQuantity: 4, AttainedAmount: 6200.00}

	tests := []struct {
		name        string
		setup       func(goalRepo *mocks.MockGoalRepository, progressRepo *mocks.MockGoalProgressRepository)
		expected    *domain.GoalProgress
		expectedErr error
	}{
		{
			name: "Meta inexistente",
			setup: func(goalRepo *mocks.MockGoalRepository, _ *mocks.MockGoalProgressRepository) {
				goalRepo.EXPECT().GetGoalByID(11).Return(nil, nil)
			},
			expectedErr: ErrGoalNotFound,
		},
		{
			name: "Meta existente ainda sem apuração devolve nil",
			setup: func(goalRepo *mocks.MockGoalRepository, progressRepo *mocks.MockGoalProgressRepository) {
				goalRepo.EXPECT().GetGoalByID(11).Return(goal, nil)
				progressRepo.EXPECT().GetByGoalID(11).Return(nil, nil)
			},
		},
		{
			name: "Meta com avanço apurado",
			setup: func(goalRepo *mocks.MockGoalRepository, progressRepo *mocks.MockGoalProgressRepository) {
				goalRepo.EXPECT().GetGoalByID(11).Return(goal, nil)
				progressRepo.EXPECT().GetByGoalID(11).Return(progress, nil)
			},
			expected: progress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
			mockProgressRepo := mocks.NewMockGoalProgressRepository(ctrl)
			tt.setup(mockGoalRepo, mockProgressRepo)

			service := &Service{goalRepo: mockGoalRepo, progressRepo: mockProgressRepo}

			result, err := service.GetProgress(11)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestGoalProgressSyncService_processGoals(t *testing.T) {
	periodStart := domain.NewDate(2024, time.March, 1)
	periodEnd := domain.NewDate(2024, time.March, 31)

	tests := []struct {
		name            string
		goals           []*domain.Goal
		setup           func(saleRepo *mocks.MockSaleRepository, progressRepo *mocks.MockGoalProgressRepository)
		expectedUpdated int
	}{
		{
			name: "Meta sem executivo é pulada",
			goals: []*domain.Goal{
				{ID: 1, PeriodStart: periodStart, PeriodEnd: periodEnd, CategoryID: intPtr(4)},
			},
			setup:           func(_ *mocks.MockSaleRepository, _ *mocks.MockGoalProgressRepository) {},
			expectedUpdated: 0,
		},
		{
			name: "Meta sem categoria é pulada",
			goals: []*domain.Goal{
				{ID: 2, PeriodStart: periodStart, PeriodEnd: periodEnd, ExecutiveID: intPtr(3)},
			},
			setup:           func(_ *mocks.MockSaleRepository, _ *mocks.MockGoalProgressRepository) {},
			expectedUpdated: 0,
		},
		{
			name: "Meta completa tem o avanço apurado e gravado",
			goals: []*domain.Goal{
				{ID: 3, PeriodStart: periodStart, PeriodEnd: periodEnd, ExecutiveID: intPtr(3), CategoryID: intPtr(4)},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, progressRepo *mocks.MockGoalProgressRepository) {
				saleRepo.EXPECT().
					SumSalesByCategory(3, 4, periodStart, periodEnd).
					Return(5, 7300.499, nil)
				progressRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(progress *domain.GoalProgress) error {
					assert.Equal(t, 3, progress.GoalID)
					assert.Equal(t, 5, progress.AttainedQuantity)
					assert.Equal(t, 7300.50, progress.AttainedAmount)
					return nil
				})
			},
			expectedUpdated: 1,
		},
		{
			name: "Erro na apuração de uma meta não interrompe as demais",
			goals: []*domain.Goal{
				{ID: 4, PeriodStart: periodStart, PeriodEnd: periodEnd, ExecutiveID: intPtr(3), CategoryID: intPtr(4)},
				{ID: 5, PeriodStart: periodStart, PeriodEnd: periodEnd, ExecutiveID: intPtr(3), CategoryID: intPtr(9)},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, progressRepo *mocks.MockGoalProgressRepository) {
				saleRepo.EXPECT().
					SumSalesByCategory(3, 4, periodStart, periodEnd).
					Return(0, 0.0, assert.AnError)
				saleRepo.EXPECT().
					SumSalesByCategory(3, 9, periodStart, periodEnd).
					Return(2, 1200.0, nil)
				progressRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			expectedUpdated: 1,
		},
		{
			name: "Erro na gravação não conta como atualização",
			goals: []*domain.Goal{
				{ID: 6, PeriodStart: periodStart, PeriodEnd: periodEnd, ExecutiveID: intPtr(3), CategoryID: intPtr(4)},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, progressRepo *mocks.MockGoalProgressRepository) {
				saleRepo.EXPECT().
					SumSalesByCategory(3, 4, periodStart, periodEnd).
					Return(1, 500.0, nil)
				progressRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(assert.AnError)
			},
			expectedUpdated: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
			mockProgressRepo := mocks.NewMockGoalProgressRepository(ctrl)
			tt.setup(mockSaleRepo, mockProgressRepo)

			service := &GoalProgressSyncService{
				saleRepo:     mockSaleRepo,
				progressRepo: mockProgressRepo,
			}

			updated := service.processGoals(tt.goals)

			assert.Equal(t, tt.expectedUpdated, updated)
		})
	}
}

func TestGoalProgressSyncService_syncGoalProgressWithDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockProgressRepo := mocks.NewMockGoalProgressRepository(ctrl)

	referenceDate := time.Date(2024, time.March, 16, 14, 30, 0, 0, time.UTC)

	// A janela de apuração vai de hoje menos o lookback até hoje
	expectedEnd := domain.NewDate(2024, time.March, 16)
	expectedStart := expectedEnd.AddDays(-35)

	mockGoalRepo.EXPECT().
		ListGoalsOverlapping(expectedStart, expectedEnd).
		Return([]*domain.Goal{}, nil)

	service := &GoalProgressSyncService{
		goalRepo:     mockGoalRepo,
		saleRepo:     mockSaleRepo,
		progressRepo: mockProgressRepo,
		config:       GoalProgressSyncConfig{LookbackDays: 35},
	}

	err := service.syncGoalProgressWithDate(referenceDate)

	assert.NoError(t, err)
}

func TestGoalProgressSyncService_Status(t *testing.T) {
	service := &GoalProgressSyncService{}

	running, startedAt, completedAt := service.Status()

	assert.False(t, running)
	assert.True(t, startedAt.IsZero())
	assert.True(t, completedAt.IsZero())
}

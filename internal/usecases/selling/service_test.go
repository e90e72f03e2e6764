package selling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	sellingmocks "github.com/vfg2006/sales-tracker-api/internal/usecases/selling/mocks"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int                  { return &v }
func floatPtr(v float64) *float64        { return &v }
func datePtr(d domain.Date) *domain.Date { return &d }

func validInput() *domain.SaleInput {
	return &domain.SaleInput{
		Date:        datePtr(domain.NewDate(2024, time.March, 10)),
		Amount:      floatPtr(1500.50),
		ClientID:    intPtr(1),
		ProductID:   intPtr(7),
		ExecutiveID: intPtr(3),
		ChannelID:   intPtr(2),
	}
}

func TestService_AdmitSale(t *testing.T) {
	product := &domain.Product{ID: 7, Name: "Plano Premium", CategoryID: intPtr(4)}
	coveringGoal := &domain.Goal{
		ID:          11,
		PeriodStart: domain.NewDate(2024, time.March, 1),
		PeriodEnd:   domain.NewDate(2024, time.March, 31),
		ExecutiveID: intPtr(3),
		CategoryID:  intPtr(4),
	}

	tests := []struct {
		name        string
		input       *domain.SaleInput
		setup       func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, goals *sellingmocks.MockGoalCoverage)
		expectedErr error
	}{
		{
			name: "Venda sem cliente falha na validação antes de tocar o banco",
			input: &domain.SaleInput{
				Date:      datePtr(domain.NewDate(2024, time.March, 10)),
				Amount:    floatPtr(100),
				ProductID: intPtr(7),
			},
			setup:       func(_ *mocks.MockSaleRepository, _ *mocks.MockProductRepository, _ *sellingmocks.MockGoalCoverage) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name: "Valor não positivo é recusado",
			input: func() *domain.SaleInput {
				input := validInput()
				input.Amount = floatPtr(0)
				return input
			}(),
			setup:       func(_ *mocks.MockSaleRepository, _ *mocks.MockProductRepository, _ *sellingmocks.MockGoalCoverage) {},
			expectedErr: ErrInvalidFormat,
		},
		{
			name: "Decisão on_missing_goal desconhecida é recusada",
			input: func() *domain.SaleInput {
				input := validInput()
				input.OnMissingGoal = "talvez"
				return input
			}(),
			setup:       func(_ *mocks.MockSaleRepository, _ *mocks.MockProductRepository, _ *sellingmocks.MockGoalCoverage) {},
			expectedErr: ErrInvalidFormat,
		},
		{
			name: "Venda sem executivo pula a verificação de meta",
			input: func() *domain.SaleInput {
				input := validInput()
				input.ExecutiveID = nil
				return input
			}(),
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, _ *sellingmocks.MockGoalCoverage) {
				productRepo.EXPECT().GetProductByID(7).Return(product, nil)
				saleRepo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
					sale.ID = 100
					return sale, nil
				})
			},
		},
		{
			name:  "Produto desconhecido deixa a categoria ausente e pula a verificação",
			input: validInput(),
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, _ *sellingmocks.MockGoalCoverage) {
				productRepo.EXPECT().GetProductByID(7).Return(nil, nil)
				saleRepo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
					sale.ID = 101
					return sale, nil
				})
			},
		},
		{
			name:  "Meta vigente existente admite a venda sem criar meta nova",
			input: validInput(),
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, goals *sellingmocks.MockGoalCoverage) {
				productRepo.EXPECT().GetProductByID(7).Return(product, nil)
				goals.EXPECT().
					CheckCoverage(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.CoverageResult{Exists: true, Goal: coveringGoal}, nil)
				saleRepo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
					sale.ID = 102
					return sale, nil
				})
			},
		},
		{
			name:  "Sem meta vigente e decisão skip a venda é recusada sem gravação",
			input: validInput(),
			setup: func(_ *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, goals *sellingmocks.MockGoalCoverage) {
				productRepo.EXPECT().GetProductByID(7).Return(product, nil)
				goals.EXPECT().
					CheckCoverage(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.CoverageResult{Exists: false}, nil)
			},
			expectedErr: ErrCoverageRequired,
		},
		{
			name: "Sem meta vigente e decisão create sintetiza a meta rápida e admite",
			input: func() *domain.SaleInput {
				input := validInput()
				input.OnMissingGoal = domain.MissingGoalCreate
				return input
			}(),
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, goals *sellingmocks.MockGoalCoverage) {
				productRepo.EXPECT().GetProductByID(7).Return(product, nil)
				goals.EXPECT().
					CheckCoverage(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.CoverageResult{Exists: false}, nil)
				goals.EXPECT().
					SynthesizeQuickGoal(3, 4, domain.NewDate(2024, time.March, 10), gomock.Any()).
					Return(&domain.Goal{ID: 55}, nil)
				saleRepo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
					sale.ID = 103
					return sale, nil
				})
			},
		},
		{
			name: "Falha na síntese da meta rápida impede a gravação da venda",
			input: func() *domain.SaleInput {
				input := validInput()
				input.OnMissingGoal = domain.MissingGoalCreate
				return input
			}(),
			setup: func(_ *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, goals *sellingmocks.MockGoalCoverage) {
				productRepo.EXPECT().GetProductByID(7).Return(product, nil)
				goals.EXPECT().
					CheckCoverage(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.CoverageResult{Exists: false}, nil)
				goals.EXPECT().
					SynthesizeQuickGoal(3, 4, domain.NewDate(2024, time.March, 10), gomock.Any()).
					Return(nil, assert.AnError)
			},
			expectedErr: ErrGoalCreationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
			mockProductRepo := mocks.NewMockProductRepository(ctrl)
			mockGoals := sellingmocks.NewMockGoalCoverage(ctrl)

			tt.setup(mockSaleRepo, mockProductRepo, mockGoals)

			service := &Service{
				saleRepo:        mockSaleRepo,
				productRepo:     mockProductRepo,
				goals:           mockGoals,
				defaultDecision: domain.MissingGoalSkip,
			}

			sale, err := service.AdmitSale(context.Background(), tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, sale)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, sale)
			assert.NotZero(t, sale.ID)
		})
	}
}

func TestService_AdmitSale_roundTrip(t *testing.T) {
	// Uma venda admitida e depois buscada pelo id devolve exatamente os
	// valores informados na admissão
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockGoals := sellingmocks.NewMockGoalCoverage(ctrl)

	input := validInput()
	product := &domain.Product{ID: 7, Name: "Plano Premium", CategoryID: intPtr(4)}

	var persisted *domain.Sale

	mockProductRepo.EXPECT().GetProductByID(7).Return(product, nil)
	mockGoals.EXPECT().
		CheckCoverage(input.ExecutiveID, product.CategoryID, input.Date).
		Return(&domain.CoverageResult{Exists: true}, nil)
	mockSaleRepo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
		// A venda gravada carrega exatamente os campos do input
		assert.Equal(t, *input.Date, sale.Date)
		assert.Equal(t, *input.Amount, sale.Amount)
		assert.Equal(t, *input.ClientID, sale.ClientID)
		assert.Equal(t, *input.ProductID, sale.ProductID)
		assert.Equal(t, input.ExecutiveID, sale.ExecutiveID)
		assert.Equal(t, input.ChannelID, sale.ChannelID)

		sale.ID = 200
		persisted = sale
		return sale, nil
	})

	service := &Service{
		saleRepo:        mockSaleRepo,
		productRepo:     mockProductRepo,
		goals:           mockGoals,
		defaultDecision: domain.MissingGoalSkip,
	}

	admitted, err := service.AdmitSale(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, 200, admitted.ID)

	mockSaleRepo.EXPECT().GetSaleByID(200).Return(persisted, nil)

	fetched, err := service.GetSale(200)
	assert.NoError(t, err)
	assert.Equal(t, admitted, fetched)
	assert.Equal(t, *input.Date, fetched.Date)
	assert.Equal(t, *input.Amount, fetched.Amount)
	assert.Equal(t, *input.ClientID, fetched.ClientID)
	assert.Equal(t, *input.ProductID, fetched.ProductID)
	assert.Equal(t, input.ExecutiveID, fetched.ExecutiveID)
	assert.Equal(t, input.ChannelID, fetched.ChannelID)
}

func TestService_ReplaceSale(t *testing.T) {
	product := &domain.Product{ID: 7, Name: "Plano Premium", CategoryID: intPtr(4)}

	t.Run("Venda inexistente não pode ser editada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().GetSaleByID(42).Return(nil, nil)

		service := &Service{
			saleRepo:        mockSaleRepo,
			productRepo:     mocks.NewMockProductRepository(ctrl),
			goals:           sellingmocks.NewMockGoalCoverage(ctrl),
			defaultDecision: domain.MissingGoalSkip,
		}

		sale, err := service.ReplaceSale(context.Background(), 42, validInput())

		assert.ErrorIs(t, err, ErrSaleNotFound)
		assert.Nil(t, sale)
	})

	t.Run("Edição remove a venda original e readmite pelo workflow completo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockProductRepo := mocks.NewMockProductRepository(ctrl)
		mockGoals := sellingmocks.NewMockGoalCoverage(ctrl)

		existing := &domain.Sale{ID: 42, Date: domain.NewDate(2024, time.March, 5), Amount: 900, ClientID: 1, ProductID: 7}

		mockSaleRepo.EXPECT().GetSaleByID(42).Return(existing, nil)
		mockSaleRepo.EXPECT().DeleteSale(42).Return(true, nil)
		mockProductRepo.EXPECT().GetProductByID(7).Return(product, nil)
		mockGoals.EXPECT().
			CheckCoverage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.CoverageResult{Exists: true}, nil)
		mockSaleRepo.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
			sale.ID = 43
			return sale, nil
		})

		service := &Service{
			saleRepo:        mockSaleRepo,
			productRepo:     mockProductRepo,
			goals:           mockGoals,
			defaultDecision: domain.MissingGoalSkip,
		}

		sale, err := service.ReplaceSale(context.Background(), 42, validInput())

		assert.NoError(t, err)
		assert.NotNil(t, sale)
		assert.Equal(t, 43, sale.ID)
	})

	t.Run("Input inválido é recusado antes de remover a venda original", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		existing := &domain.Sale{ID: 42, Date: domain.NewDate(2024, time.March, 5), Amount: 900, ClientID: 1, ProductID: 7}
		mockSaleRepo.EXPECT().GetSaleByID(42).Return(existing, nil)

		service := &Service{
			saleRepo:        mockSaleRepo,
			productRepo:     mocks.NewMockProductRepository(ctrl),
			goals:           sellingmocks.NewMockGoalCoverage(ctrl),
			defaultDecision: domain.MissingGoalSkip,
		}

		input := validInput()
		input.Amount = nil

		sale, err := service.ReplaceSale(context.Background(), 42, input)

		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assert.Nil(t, sale)
	})
}

func TestNewService_defaultDecision(t *testing.T) {
	// O construtor normaliza qualquer valor desconhecido para skip
	tests := []struct {
		name     string
		raw      string
		expected domain.MissingGoalDecision
	}{
		{name: "create é respeitado", raw: "create", expected: domain.MissingGoalCreate},
		{name: "skip é respeitado", raw: "skip", expected: domain.MissingGoalSkip},
		{name: "valor desconhecido vira skip", raw: "anything", expected: domain.MissingGoalSkip},
		{name: "vazio vira skip", raw: "", expected: domain.MissingGoalSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Sales: config.Sales{MissingGoalDecision: tt.raw}}

			service := NewService(nil, nil, nil, cfg)

			assert.Equal(t, tt.expected, service.(*Service).defaultDecision)
		})
	}
}

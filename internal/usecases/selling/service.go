package selling

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

// GoalCoverage é o contrato que o workflow de admissão exige do serviço de
// metas: verificar cobertura e sintetizar a meta rápida.
type GoalCoverage interface {
	CheckCoverage(executiveID, categoryID *int, date *domain.Date) (*domain.CoverageResult, error)
	SynthesizeQuickGoal(executiveID, categoryID int, date domain.Date, targetAmount *float64) (*domain.Goal, error)
}

type SaleService interface {
	AdmitSale(ctx context.Context, input *domain.SaleInput) (*domain.Sale, error)
	ReplaceSale(ctx context.Context, id int, input *domain.SaleInput) (*domain.Sale, error)
	ListSales(filter domain.SaleFilter) ([]*domain.SaleRecord, error)
	GetSale(id int) (*domain.Sale, error)
	DeleteSale(id int) (bool, error)
}

type Service struct {
	saleRepo        repository.SaleRepository
	productRepo     repository.ProductRepository
	goals           GoalCoverage
	defaultDecision domain.MissingGoalDecision
}

func NewService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	goals GoalCoverage,
	cfg *config.Config,
) SaleService {
	defaultDecision := domain.MissingGoalDecision(cfg.Sales.MissingGoalDecision)
	if defaultDecision != domain.MissingGoalCreate {
		defaultDecision = domain.MissingGoalSkip
	}

	return &Service{
		saleRepo:        saleRepo,
		productRepo:     productRepo,
		goals:           goals,
		defaultDecision: defaultDecision,
	}
}

// AdmitSale executa o workflow completo de admissão de uma venda:
// validação → resolução da categoria via produto → verificação de meta
// vigente → (opcional) síntese de meta rápida → gravação da venda.
// Qualquer erro aborta os passos restantes; a venda nunca é gravada depois
// de uma síntese de meta malsucedida.
func (s *Service) AdmitSale(ctx context.Context, input *domain.SaleInput) (*domain.Sale, error) {
	logger := log.ForContext(ctx)
	if admissionID, err := utils.GenerateID(); err == nil {
		logger = logger.WithField("admission_id", admissionID)
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(*input.ProductID)
	if err != nil {
		return nil, err
	}

	// A cobertura só é exigida quando executivo e categoria são conhecidos
	if input.ExecutiveID != nil && categoryID != nil {
		coverage, err := s.goals.CheckCoverage(input.ExecutiveID, categoryID, input.Date)
		if err != nil {
			return nil, errors.Wrap(err, "falha na verificação de meta vigente")
		}

		if !coverage.Exists {
			decision := input.OnMissingGoal
			if decision == "" {
				decision = s.defaultDecision
			}

			if decision != domain.MissingGoalCreate {
				logger.WithFields(log.Fields{
					"executive_id": *input.ExecutiveID,
					"category_id":  *categoryID,
					"date":         input.Date.String(),
				}).Warn("Venda recusada: sem meta vigente e sem decisão de criação")
				return nil, ErrCoverageRequired
			}

			if _, err := s.goals.SynthesizeQuickGoal(*input.ExecutiveID, *categoryID, *input.Date, input.Amount); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrGoalCreationFailed, err)
			}
		}
	}

	sale := &domain.Sale{
		Date:        *input.Date,
		Amount:      *input.Amount,
		ClientID:    *input.ClientID,
		ProductID:   *input.ProductID,
		ExecutiveID: input.ExecutiveID,
		ChannelID:   input.ChannelID,
	}

	created, err := s.saleRepo.CreateSale(sale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	logger.WithFields(log.Fields{
		"sale_id":   created.ID,
		"client_id": created.ClientID,
		"amount":    created.Amount,
	}).Info("Venda admitida")

	return created, nil
}

// ReplaceSale edita uma venda por remoção e readmissão, repassando o input
// pelo workflow completo para que a cobertura de meta seja verificada de
// novo. Os dois passos não compartilham transação: se a readmissão falhar,
// a venda original já foi removida.
func (s *Service) ReplaceSale(ctx context.Context, id int, input *domain.SaleInput) (*domain.Sale, error) {
	existing, err := s.saleRepo.GetSaleByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	if existing == nil {
		return nil, ErrSaleNotFound
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.saleRepo.DeleteSale(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return s.AdmitSale(ctx, input)
}

func (s *Service) ListSales(filter domain.SaleFilter) ([]*domain.SaleRecord, error) {
	if filter.Limit == 0 {
		filter.Limit = 200
	}
	return s.saleRepo.ListSales(filter)
}

func (s *Service) GetSale(id int) (*domain.Sale, error) {
	return s.saleRepo.GetSaleByID(id)
}

func (s *Service) DeleteSale(id int) (bool, error) {
	return s.saleRepo.DeleteSale(id)
}

// resolveCategory obtém a categoria via catálogo de produtos. Produto
// desconhecido não é erro: a categoria fica ausente e a verificação de
// meta é pulada.
func (s *Service) resolveCategory(productID int) (*int, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	if product == nil {
		return nil, nil
	}
	return product.CategoryID, nil
}

func validateInput(input *domain.SaleInput) error {
	if input == nil || input.Date == nil || input.Amount == nil || input.ClientID == nil || input.ProductID == nil {
		return ErrMissingRequiredData
	}
	if input.Date.IsZero() {
		return ErrMissingRequiredData
	}
	if *input.Amount <= 0 {
		return ErrInvalidFormat
	}

	switch input.OnMissingGoal {
	case "", domain.MissingGoalCreate, domain.MissingGoalSkip:
	default:
		return ErrInvalidFormat
	}

	return nil
}

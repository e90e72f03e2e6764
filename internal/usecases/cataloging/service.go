package cataloging

import (
	"errors"

	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

var (
	ErrMissingClientData  = errors.New("nome e tax_id do cliente são obrigatórios")
	ErrMissingProductData = errors.New("nome do produto é obrigatório")
)

// CatalogService expõe as operações simples de catálogo: clientes,
// produtos, executivos e canais.
type CatalogService interface {
	ListClients() ([]*domain.Client, error)
	GetClient(id int) (*domain.Client, error)
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.Client) (*domain.Client, error)
	DeleteClient(id int) (bool, error)

	ListProducts() ([]*domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) (*domain.Product, error)
	DeleteProduct(id int) (bool, error)

	ListExecutives() ([]*domain.Executive, error)
	ListChannels() ([]*domain.Channel, error)
}

type Service struct {
	clientRepo    repository.ClientRepository
	productRepo   repository.ProductRepository
	executiveRepo repository.ExecutiveRepository
	channelRepo   repository.ChannelRepository
}

func NewService(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	executiveRepo repository.ExecutiveRepository,
	channelRepo repository.ChannelRepository,
) CatalogService {
	return &Service{
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		executiveRepo: executiveRepo,
		channelRepo:   channelRepo,
	}
}

func (s *Service) ListClients() ([]*domain.Client, error) {
	return s.clientRepo.ListClients(100)
}

func (s *Service) GetClient(id int) (*domain.Client, error) {
	return s.clientRepo.GetClientByID(id)
}

func (s *Service) CreateClient(client *domain.Client) (*domain.Client, error) {
	if client.Name == "" || client.TaxID == "" {
		return nil, ErrMissingClientData
	}
	return s.clientRepo.CreateClient(client)
}

func (s *Service) UpdateClient(client *domain.Client) (*domain.Client, error) {
	if client.Name == "" || client.TaxID == "" {
		return nil, ErrMissingClientData
	}
	return s.clientRepo.UpdateClient(client)
}

func (s *Service) DeleteClient(id int) (bool, error) {
	return s.clientRepo.DeleteClient(id)
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.ListProducts(200)
}

func (s *Service) GetProduct(id int) (*domain.Product, error) {
	return s.productRepo.GetProductByID(id)
}

func (s *Service) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, ErrMissingProductData
	}
	return s.productRepo.CreateProduct(product)
}

func (s *Service) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, ErrMissingProductData
	}
	return s.productRepo.UpdateProduct(product)
}

func (s *Service) DeleteProduct(id int) (bool, error) {
	return s.productRepo.DeleteProduct(id)
}

func (s *Service) ListExecutives() ([]*domain.Executive, error) {
	return s.executiveRepo.ListExecutives()
}

func (s *Service) ListChannels() ([]*domain.Channel, error) {
	return s.channelRepo.ListChannels()
}

package productservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gomarket/internal/domain"
)

//go:generate mockgen -source=productservice.go -destination=mock_productservice.go -package=productservice

type Repo interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidInput    = errors.New("invalid input")
)

func (s *Service) CreateProduct(ctx context.Context, ownerID, title, content string, price int64, categoryID, regionID string) (*domain.Product, error) {
	if title == "" || price < 0 || categoryID == "" || regionID == "" {
		return nil, ErrInvalidInput
	}

	product := &domain.Product{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Title:      title,
		Content:    content,
		Price:      price,
		CategoryID: categoryID,
		RegionID:   regionID,
	}
	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		zap.L().Error("can't get product", zap.Error(err))
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

package productrepo

import (
	"context"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (id, owner_id, title, content, price, category_id, region_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		product.ID, product.OwnerID, product.Title, product.Content,
		product.Price, product.CategoryID, product.RegionID,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT id, owner_id, title, content, price, category_id, region_id, created_at
		FROM products
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, productID)
	var product domain.Product
	err := row.Scan(
		&product.ID, &product.OwnerID, &product.Title, &product.Content,
		&product.Price, &product.CategoryID, &product.RegionID, &product.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get product", zap.Error(err))
		return nil, err
	}
	return &product, nil
}

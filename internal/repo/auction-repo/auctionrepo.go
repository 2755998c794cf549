package auctionrepo

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

func (r *Repository) CreateAuction(ctx context.Context, auction *domain.Auction) (*domain.Auction, error) {
	query := `
		INSERT INTO auctions (id, product_id, current_price, end_at, bid_count, status)
		VALUES ($1, $2, $3, $4, 0, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		auction.ID, auction.ProductID, auction.CurrentPrice, auction.EndAt, auction.Status,
	).Scan(&auction.ID)
	if err != nil {
		zap.L().Error("can't save auction", zap.Error(err))
		return nil, err
	}
	return auction, nil
}

func (r *Repository) GetAuctionByID(ctx context.Context, auctionID string) (*domain.Auction, error) {
	query := `
		SELECT id, product_id, current_price, end_at, bid_count, status
		FROM auctions
		WHERE id = $1
	`
	return r.scanAuction(r.db.QueryRow(ctx, query, auctionID))
}

// GetAuctionForUpdate locks the auction row so that bid acceptance is
// serialized per auction. Bids on other auctions are not blocked.
func (r *Repository) GetAuctionForUpdate(ctx context.Context, auctionID string) (*domain.Auction, error) {
	query := `
		SELECT id, product_id, current_price, end_at, bid_count, status
		FROM auctions
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanAuction(r.db.QueryRow(ctx, query, auctionID))
}

func (r *Repository) scanAuction(row pgx.Row) (*domain.Auction, error) {
	var auction domain.Auction
	err := row.Scan(
		&auction.ID, &auction.ProductID, &auction.CurrentPrice,
		&auction.EndAt, &auction.BidCount, &auction.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get auction", zap.Error(err))
		return nil, err
	}
	return &auction, nil
}

func (r *Repository) GetActiveAuctionByProductID(ctx context.Context, productID string) (*domain.Auction, error) {
	query := `
		SELECT id, product_id, current_price, end_at, bid_count, status
		FROM auctions
		WHERE product_id = $1 AND status = 'ACTIVE'
	`
	return r.scanAuction(r.db.QueryRow(ctx, query, productID))
}

func (r *Repository) UpdateAuctionBid(ctx context.Context, auction *domain.Auction) error {
	query := `
		UPDATE auctions
		SET current_price = $1, bid_count = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, auction.CurrentPrice, auction.BidCount, auction.ID)
	if err != nil {
		zap.L().Error("can't update auction bid state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateAuctionStatus(ctx context.Context, auctionID, status string) error {
	query := `
		UPDATE auctions
		SET status = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, status, auctionID)
	if err != nil {
		zap.L().Error("can't update auction status", zap.Error(err))
		return err
	}
	return nil
}

// FindActive returns ACTIVE auctions joined with their products,
// soonest-ending first. Empty filters match everything.
func (r *Repository) FindActive(ctx context.Context, categoryID, regionID string) ([]domain.AuctionListItem, error) {
	query := `
		SELECT a.id, a.product_id, a.current_price, a.end_at, a.bid_count, a.status,
		       p.title, p.owner_id, p.category_id, p.region_id
		FROM auctions a
		JOIN products p ON p.id = a.product_id
		WHERE a.status = 'ACTIVE'
		  AND ($1 = '' OR p.category_id = $1)
		  AND ($2 = '' OR p.region_id = $2)
		ORDER BY a.end_at ASC
	`
	rows, err := r.db.Query(ctx, query, categoryID, regionID)
	if err != nil {
		zap.L().Error("can't get active auctions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var auctions []domain.AuctionListItem
	for rows.Next() {
		var item domain.AuctionListItem
		err := rows.Scan(
			&item.ID, &item.ProductID, &item.CurrentPrice, &item.EndAt, &item.BidCount, &item.Status,
			&item.ProductTitle, &item.OwnerID, &item.CategoryID, &item.RegionID,
		)
		if err != nil {
			zap.L().Error("can't scan auction row", zap.Error(err))
			return nil, err
		}
		auctions = append(auctions, item)
	}
	return auctions, nil
}

// FindExpiredActive returns ACTIVE auctions whose end_at has passed.
func (r *Repository) FindExpiredActive(ctx context.Context, limit uint32) ([]domain.Auction, error) {
	query := `
		SELECT id, product_id, current_price, end_at, bid_count, status
		FROM auctions
		WHERE status = 'ACTIVE' AND end_at <= now()
		ORDER BY end_at ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get expired auctions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var auctions []domain.Auction
	for rows.Next() {
		var auction domain.Auction
		err := rows.Scan(
			&auction.ID, &auction.ProductID, &auction.CurrentPrice,
			&auction.EndAt, &auction.BidCount, &auction.Status,
		)
		if err != nil {
			zap.L().Error("can't scan expired auction row", zap.Error(err))
			return nil, err
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}

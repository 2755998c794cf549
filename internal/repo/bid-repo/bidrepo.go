package bidrepo

import (
	"context"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
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

// CreateBid inserts a bid row. Bids are append-only and never updated.
func (r *Repository) CreateBid(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	query := `
		INSERT INTO bids (id, auction_id, bidder_id, bid_price, bid_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, bid.ID, bid.AuctionID, bid.BidderID, bid.BidPrice, bid.BidAt).Scan(&bid.ID)
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (r *Repository) GetBidsByUserID(ctx context.Context, userID string) ([]domain.UserBid, error) {
	query := `
		SELECT b.id, b.auction_id, b.bidder_id, b.bid_price, b.bid_at,
		       a.product_id, p.title, a.current_price, a.status, a.end_at
		FROM bids b
		JOIN auctions a ON a.id = b.auction_id
		JOIN products p ON p.id = a.product_id
		WHERE b.bidder_id = $1
		ORDER BY b.bid_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.UserBid
	for rows.Next() {
		var bid domain.UserBid
		err := rows.Scan(
			&bid.ID, &bid.AuctionID, &bid.BidderID, &bid.BidPrice, &bid.BidAt,
			&bid.ProductID, &bid.ProductTitle, &bid.CurrentPrice, &bid.AuctionStatus, &bid.EndAt,
		)
		if err != nil {
			zap.L().Error("can't scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

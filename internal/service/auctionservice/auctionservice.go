package auctionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
)

//go:generate mockgen -source=auctionservice.go -destination=mock_auctionservice.go -package=auctionservice

type AuctionRepo interface {
	CreateAuction(ctx context.Context, auction *domain.Auction) (*domain.Auction, error)
	GetAuctionByID(ctx context.Context, auctionID string) (*domain.Auction, error)
	GetAuctionForUpdate(ctx context.Context, auctionID string) (*domain.Auction, error)
	GetActiveAuctionByProductID(ctx context.Context, productID string) (*domain.Auction, error)
	UpdateAuctionBid(ctx context.Context, auction *domain.Auction) error
	UpdateAuctionStatus(ctx context.Context, auctionID, status string) error
	FindActive(ctx context.Context, categoryID, regionID string) ([]domain.AuctionListItem, error)
	FindExpiredActive(ctx context.Context, limit uint32) ([]domain.Auction, error)
}

type BidRepo interface {
	CreateBid(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
	GetBidsByUserID(ctx context.Context, userID string) ([]domain.UserBid, error)
}

type ProductRepo interface {
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
}

type Service struct {
	auctionRepo AuctionRepo
	bidRepo     BidRepo
	productRepo ProductRepo
	txManager   pg.TXManager
}

func New(auctionRepo AuctionRepo, bidRepo BidRepo, productRepo ProductRepo, txManager pg.TXManager) *Service {
	return &Service{
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
		productRepo: productRepo,
		txManager:   txManager,
	}
}

var (
	ErrAuctionAlreadyExists = errors.New("active auction already exists for this product")
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrAuctionFinished      = errors.New("auction already finished")
	ErrNotAllowedAction     = errors.New("action not allowed on this auction")
	ErrBidTooLow            = errors.New("bid price must exceed the current price")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidInput         = errors.New("invalid input")
)

const uniqueViolationCode = "23505"

func (s *Service) CreateAuction(ctx context.Context, productID, requesterID string, startingPrice int64, endAt time.Time) (*domain.Auction, error) {
	if startingPrice < 0 || !endAt.After(time.Now()) {
		return nil, ErrInvalidInput
	}

	var auction *domain.Auction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		product, err := s.productRepo.GetProductByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if product.OwnerID != requesterID {
			return ErrNotAllowedAction
		}

		existing, err := s.auctionRepo.GetActiveAuctionByProductID(ctx, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			zap.L().Info("active auction already exists", zap.String("product_id", productID))
			return ErrAuctionAlreadyExists
		}

		auction = &domain.Auction{
			ID:           uuid.NewString(),
			ProductID:    productID,
			CurrentPrice: startingPrice,
			EndAt:        endAt,
			Status:       domain.ActiveAuctionStatus,
		}
		_, err = s.auctionRepo.CreateAuction(ctx, auction)
		return err
	})
	if err != nil {
		// the partial unique index catches the race the pre-check cannot
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrAuctionAlreadyExists
		}
		return nil, err
	}
	return auction, nil
}

// PlaceBid accepts a bid against a single ACTIVE auction. The auction row is
// locked first, so bids on one auction are totally ordered; a concurrent
// loser fails with ErrBidTooLow instead of being reordered.
func (s *Service) PlaceBid(ctx context.Context, auctionID, bidderID string, bidPrice int64) (*domain.Bid, error) {
	if bidPrice <= 0 {
		return nil, ErrInvalidInput
	}

	var bid *domain.Bid
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		auction, err := s.auctionRepo.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction == nil {
			return ErrAuctionNotFound
		}
		if auction.Status != domain.ActiveAuctionStatus || !auction.EndAt.After(time.Now()) {
			return ErrAuctionFinished
		}

		product, err := s.productRepo.GetProductByID(ctx, auction.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("product %s disappeared during transaction", auction.ProductID)
		}
		if product.OwnerID == bidderID {
			return ErrNotAllowedAction
		}
		if bidPrice <= auction.CurrentPrice {
			return ErrBidTooLow
		}

		bid = &domain.Bid{
			ID:        uuid.NewString(),
			AuctionID: auction.ID,
			BidderID:  bidderID,
			BidPrice:  bidPrice,
			BidAt:     time.Now(),
		}
		if _, err := s.bidRepo.CreateBid(ctx, bid); err != nil {
			return err
		}

		auction.CurrentPrice = bidPrice
		auction.BidCount++
		return s.auctionRepo.UpdateAuctionBid(ctx, auction)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("bid accepted",
		zap.String("auction_id", auctionID),
		zap.String("bidder_id", bidderID),
		zap.Int64("bid_price", bidPrice),
	)
	return bid, nil
}

func (s *Service) ListActiveAuctions(ctx context.Context, categoryID, regionID string) ([]domain.AuctionListItem, error) {
	auctions, err := s.auctionRepo.FindActive(ctx, categoryID, regionID)
	if err != nil {
		zap.L().Error("failed to list active auctions", zap.Error(err))
		return nil, err
	}
	return auctions, nil
}

func (s *Service) GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error) {
	auction, err := s.auctionRepo.GetAuctionByID(ctx, auctionID)
	if err != nil {
		zap.L().Error("failed to get auction", zap.Error(err))
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}
	return auction, nil
}

func (s *Service) ListUserBids(ctx context.Context, userID string) ([]domain.UserBid, error) {
	bids, err := s.bidRepo.GetBidsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user bids", zap.Error(err))
		return nil, err
	}
	return bids, nil
}

// DeleteAuction transitions an auction to CANCELED, which frees the product
// for a new auction. Only the product owner may do it, only while the
// auction is ACTIVE and has no bids. The row stays in place so the ledger
// of past auctions remains queryable.
func (s *Service) DeleteAuction(ctx context.Context, auctionID, requesterID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		auction, err := s.auctionRepo.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction == nil {
			return ErrAuctionNotFound
		}

		product, err := s.productRepo.GetProductByID(ctx, auction.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("product %s disappeared during transaction", auction.ProductID)
		}
		if product.OwnerID != requesterID {
			return ErrNotAllowedAction
		}
		if auction.Status != domain.ActiveAuctionStatus || auction.BidCount != 0 {
			return ErrNotAllowedAction
		}

		return s.auctionRepo.UpdateAuctionStatus(ctx, auctionID, domain.CanceledAuctionStatus)
	})
}

// FinishExpired transitions one expired ACTIVE auction to FINISHED, or to
// FAILED when it received no bids. Re-checks under the row lock, so a
// concurrent pass or a late bid cannot race the transition.
func (s *Service) FinishExpired(ctx context.Context, auctionID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		auction, err := s.auctionRepo.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction == nil || auction.Status != domain.ActiveAuctionStatus {
			return nil
		}
		if auction.EndAt.After(time.Now()) {
			return nil
		}

		status := domain.FinishedAuctionStatus
		if auction.BidCount == 0 {
			status = domain.FailedAuctionStatus
		}
		if err := s.auctionRepo.UpdateAuctionStatus(ctx, auction.ID, status); err != nil {
			return err
		}
		zap.L().Info("auction closed", zap.String("auction_id", auction.ID), zap.String("status", status))
		return nil
	})
}

func (s *Service) FindExpired(ctx context.Context, limit uint32) ([]domain.Auction, error) {
	return s.auctionRepo.FindExpiredActive(ctx, limit)
}

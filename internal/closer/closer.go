package closer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/domain"
)

//go:generate mockgen -source=closer.go -destination=mock_closer.go -package=closer

var closingAuctions sync.Map

type AuctionService interface {
	FindExpired(ctx context.Context, limit uint32) ([]domain.Auction, error)
	FinishExpired(ctx context.Context, auctionID string) error
}

// Service periodically scans for expired ACTIVE auctions and finalizes
// each one under its row lock.
type Service struct {
	auctionService AuctionService
	limit          uint32
	workerPool     WorkerPoolI
	scanInterval   time.Duration
}

func New(cfg *config.Config, auctionService AuctionService) *Service {
	return &Service{
		auctionService: auctionService,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		scanInterval:   cfg.CloseInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Auction closer service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping auction closer")
			return
		case <-ticker.C:
			s.processExpired(ctx)
		}
	}
}

func (s *Service) processExpired(ctx context.Context) {
	auctions, err := s.auctionService.FindExpired(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired auctions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, auction := range auctions {
		auction := auction

		if _, loaded := closingAuctions.LoadOrStore(auction.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer closingAuctions.Delete(auction.ID)
				return s.auctionService.FinishExpired(ctx, auction.ID)
			})
			if err != nil {
				closingAuctions.Delete(auction.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error closing auctions", zap.Error(err))
	}
}

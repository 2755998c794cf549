package closer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockAuctionService) {
	ctrl := gomock.NewController(t)
	auctionService := NewMockAuctionService(ctrl)
	t.Cleanup(ctrl.Finish)

	s := &Service{
		auctionService: auctionService,
		limit:          1000,
		workerPool:     NewWorkerPool(2),
		scanInterval:   10 * time.Millisecond,
	}
	return s, auctionService
}

func TestNewCloser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{CloseInterval: 5 * time.Second}
	s := New(cfg, NewMockAuctionService(ctrl))

	assert.NotNil(t, s)
	assert.NotNil(t, s.workerPool)
	assert.Equal(t, 5*time.Second, s.scanInterval)
	assert.Equal(t, uint32(1000), s.limit)
}

func TestProcessExpired(t *testing.T) {
	s, auctionService := NewMock(t)
	ctx := context.Background()

	t.Run("Finalizes every expired auction", func(t *testing.T) {
		finished := make(chan string, 2)
		auctionService.EXPECT().
			FindExpired(gomock.Any(), uint32(1000)).
			Return([]domain.Auction{{ID: "a-1"}, {ID: "a-2"}}, nil)
		auctionService.EXPECT().
			FinishExpired(gomock.Any(), "a-1").
			DoAndReturn(func(_ context.Context, auctionID string) error {
				finished <- auctionID
				return nil
			})
		auctionService.EXPECT().
			FinishExpired(gomock.Any(), "a-2").
			DoAndReturn(func(_ context.Context, auctionID string) error {
				finished <- auctionID
				return nil
			})

		s.processExpired(ctx)

		got := map[string]bool{}
		for i := 0; i < 2; i++ {
			select {
			case id := <-finished:
				got[id] = true
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for auctions to be finalized")
			}
		}
		assert.True(t, got["a-1"])
		assert.True(t, got["a-2"])
	})

	t.Run("Fetch error is not fatal", func(t *testing.T) {
		auctionService.EXPECT().
			FindExpired(gomock.Any(), uint32(1000)).
			Return(nil, errors.New("database error"))

		s.processExpired(ctx)
	})

	t.Run("Skips auctions already being closed", func(t *testing.T) {
		closingAuctions.Store("a-9", struct{}{})
		defer closingAuctions.Delete("a-9")

		auctionService.EXPECT().
			FindExpired(gomock.Any(), uint32(1000)).
			Return([]domain.Auction{{ID: "a-9"}}, nil)

		s.processExpired(ctx)
	})
}

func TestProcessExpiredCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	auctionService := NewMockAuctionService(ctrl)

	s := &Service{
		auctionService: auctionService,
		limit:          1000,
		workerPool:     NewWorkerPool(0),
		scanInterval:   10 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	auctionService.EXPECT().
		FindExpired(gomock.Any(), uint32(1000)).
		Return([]domain.Auction{{ID: "a-3"}}, nil)

	s.processExpired(ctx)

	_, inFlight := closingAuctions.Load("a-3")
	assert.False(t, inFlight, "auction should be released when it could not be scheduled")
}

func TestStart(t *testing.T) {
	s, auctionService := NewMock(t)

	ticked := make(chan struct{}, 1)
	auctionService.EXPECT().
		FindExpired(gomock.Any(), uint32(1000)).
		DoAndReturn(func(context.Context, uint32) ([]domain.Auction, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return nil, nil
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("closer never scanned for expired auctions")
	}
}

func TestWorkerPool(t *testing.T) {
	t.Run("Runs submitted tasks", func(t *testing.T) {
		wp := NewWorkerPool(1)
		done := make(chan struct{})

		err := wp.AddTask(context.Background(), func() error {
			close(done)
			return nil
		})
		assert.NoError(t, err)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("task was never executed")
		}
	})

	t.Run("Task errors are swallowed", func(t *testing.T) {
		wp := NewWorkerPool(1)
		done := make(chan struct{})

		err := wp.AddTask(context.Background(), func() error {
			defer close(done)
			return errors.New("task failed")
		})
		assert.NoError(t, err)
		<-done
	})

	t.Run("Rejects tasks when context is canceled", func(t *testing.T) {
		wp := NewWorkerPool(0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := wp.AddTask(ctx, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

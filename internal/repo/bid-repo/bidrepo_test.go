package bidrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_CreateBid(t *testing.T) {
	repo, mock := NewMock(t)
	bidAt := time.Now()
	tests := []struct {
		name      string
		bid       *domain.Bid
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful creation",
			bid: &domain.Bid{
				ID:        "b-1",
				AuctionID: "a-1",
				BidderID:  "u-1",
				BidPrice:  1200,
				BidAt:     bidAt,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow("b-1")
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bids (id, auction_id, bidder_id, bid_price, bid_at)")).
					WithArgs("b-1", "a-1", "u-1", int64(1200), bidAt).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			bid: &domain.Bid{
				ID:        "b-1",
				AuctionID: "a-1",
				BidderID:  "u-1",
				BidPrice:  1200,
				BidAt:     bidAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bids (id, auction_id, bidder_id, bid_price, bid_at)")).
					WithArgs("b-1", "a-1", "u-1", int64(1200), bidAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateBid(context.Background(), tt.bid)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.bid, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetBidsByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	bidAt := time.Now()
	endAt := bidAt.Add(time.Hour)
	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name:   "User has bids",
			userID: "u-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "auction_id", "bidder_id", "bid_price", "bid_at",
					"product_id", "title", "current_price", "status", "end_at",
				}).
					AddRow("b-2", "a-1", "u-1", int64(1300), bidAt, "p-1", "Bike", int64(1500), domain.ActiveAuctionStatus, endAt).
					AddRow("b-1", "a-1", "u-1", int64(1200), bidAt.Add(-time.Minute), "p-1", "Bike", int64(1500), domain.ActiveAuctionStatus, endAt)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE b.bidder_id = $1")).
					WithArgs("u-1").
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name:   "User has no bids",
			userID: "u-2",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "auction_id", "bidder_id", "bid_price", "bid_at",
					"product_id", "title", "current_price", "status", "end_at",
				})
				mock.ExpectQuery(regexp.QuoteMeta("WHERE b.bidder_id = $1")).
					WithArgs("u-2").
					WillReturnRows(rows)
			},
			count: 0,
		},
		{
			name:   "Database error",
			userID: "u-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE b.bidder_id = $1")).
					WithArgs("u-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBidsByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

package ledgerrepo

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

func TestRepository_CreateEntry(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	receiver := "u-2"
	tests := []struct {
		name      string
		entry     *domain.LedgerEntry
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Deposit entry",
			entry: &domain.LedgerEntry{
				ID:              "l-1",
				TransactionType: domain.DepositTransaction,
				Amount:          500,
				Description:     "top up",
				Time:            now,
				UserID:          "u-1",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow("l-1")
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ledger (id, transaction_type, amount, description, time, user_id, receive_user_id)")).
					WithArgs("l-1", domain.DepositTransaction, int64(500), "top up", now, "u-1", nil).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Transfer entry",
			entry: &domain.LedgerEntry{
				ID:              "l-2",
				TransactionType: domain.TransferTransaction,
				Amount:          100,
				Description:     "thanks",
				Time:            now,
				UserID:          "u-1",
				ReceiveUserID:   &receiver,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow("l-2")
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ledger (id, transaction_type, amount, description, time, user_id, receive_user_id)")).
					WithArgs("l-2", domain.TransferTransaction, int64(100), "thanks", now, "u-1", &receiver).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			entry: &domain.LedgerEntry{
				ID:              "l-1",
				TransactionType: domain.DepositTransaction,
				Amount:          500,
				Description:     "top up",
				Time:            now,
				UserID:          "u-1",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ledger (id, transaction_type, amount, description, time, user_id, receive_user_id)")).
					WithArgs("l-1", domain.DepositTransaction, int64(500), "top up", now, "u-1", nil).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateEntry(context.Background(), tt.entry)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.entry, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetEntriesByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	receiver := "u-2"
	tests := []struct {
		name           string
		userID         string
		limit          int
		offset         int
		counterpartyID string
		mockSetup      func()
		expectErr      bool
		count          int
	}{
		{
			name:   "All entries newest first",
			userID: "u-1",
			limit:  10,
			offset: 0,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "transaction_type", "amount", "description", "time", "user_id", "receive_user_id",
				}).
					AddRow("l-2", domain.TransferTransaction, int64(100), "thanks", now, "u-1", &receiver).
					AddRow("l-1", domain.DepositTransaction, int64(500), "top up", now.Add(-time.Hour), "u-1", nil)
				mock.ExpectQuery(regexp.QuoteMeta("FROM ledger")).
					WithArgs("u-1", 10, 0, "").
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name:           "Counterparty filter",
			userID:         "u-1",
			limit:          10,
			offset:         0,
			counterpartyID: "u-2",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "transaction_type", "amount", "description", "time", "user_id", "receive_user_id",
				}).
					AddRow("l-2", domain.TransferTransaction, int64(100), "thanks", now, "u-1", &receiver)
				mock.ExpectQuery(regexp.QuoteMeta("FROM ledger")).
					WithArgs("u-1", 10, 0, "u-2").
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name:   "Database error",
			userID: "u-1",
			limit:  10,
			offset: 0,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM ledger")).
					WithArgs("u-1", 10, 0, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetEntriesByUserID(context.Background(), tt.userID, tt.limit, tt.offset, tt.counterpartyID)
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

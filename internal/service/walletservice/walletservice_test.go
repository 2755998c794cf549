package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockLedgerRepo, *MockAccountRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	svc := New(ledgerRepo, accountRepo, txManager)
	t.Cleanup(ctrl.Finish)

	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	return svc, ledgerRepo, accountRepo, txManager
}

func TestService_Deposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful deposit", func(t *testing.T) {
		svc, ledgerRepo, accountRepo, _ := NewMock(t)
		ledgerRepo.EXPECT().
			CreateEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				assert.Equal(t, domain.DepositTransaction, e.TransactionType)
				assert.Equal(t, int64(500), e.Amount)
				assert.Equal(t, "u-1", e.UserID)
				assert.Nil(t, e.ReceiveUserID)
				assert.False(t, e.Time.IsZero())
				return e, nil
			})
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-1").Return(&domain.User{ID: "u-1", Coin: 100}, nil)
		accountRepo.EXPECT().UpdateUserCoin(ctx, "u-1", int64(600)).Return(nil)

		entry, err := svc.Deposit(ctx, "u-1", 500, "top up")
		assert.NoError(t, err)
		assert.Equal(t, int64(500), entry.Amount)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		svc, _, _, _ := NewMock(t)
		entry, err := svc.Deposit(ctx, "u-1", 0, "top up")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, entry)
	})

	t.Run("Ledger write fails", func(t *testing.T) {
		svc, ledgerRepo, _, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).Return(nil, errors.New("database error"))

		entry, err := svc.Deposit(ctx, "u-1", 500, "top up")
		assert.Error(t, err)
		assert.Nil(t, entry)
	})

	t.Run("Timestamp is stamped inside the transaction", func(t *testing.T) {
		entry := newEntry(domain.DepositTransaction, "u-1", nil, 100, "top up")
		assert.True(t, entry.Time.IsZero())
	})
}

func TestService_Withdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful withdrawal", func(t *testing.T) {
		svc, ledgerRepo, accountRepo, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				assert.Equal(t, domain.WithdrawTransaction, e.TransactionType)
				return e, nil
			})
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-1").Return(&domain.User{ID: "u-1", Coin: 500}, nil)
		accountRepo.EXPECT().UpdateUserCoin(ctx, "u-1", int64(1)).Return(nil)

		entry, err := svc.Withdraw(ctx, "u-1", 499, "cash out")
		assert.NoError(t, err)
		assert.Equal(t, int64(499), entry.Amount)
	})

	t.Run("Withdrawing the full balance is rejected", func(t *testing.T) {
		svc, ledgerRepo, accountRepo, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				return e, nil
			})
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-1").Return(&domain.User{ID: "u-1", Coin: 500}, nil)

		entry, err := svc.Withdraw(ctx, "u-1", 500, "cash out")
		assert.ErrorIs(t, err, ErrCoinLack)
		assert.Nil(t, entry)
	})

	t.Run("Amount above balance is rejected", func(t *testing.T) {
		svc, ledgerRepo, accountRepo, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				return e, nil
			})
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-1").Return(&domain.User{ID: "u-1", Coin: 500}, nil)

		entry, err := svc.Withdraw(ctx, "u-1", 600, "cash out")
		assert.ErrorIs(t, err, ErrCoinLack)
		assert.Nil(t, entry)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		svc, _, _, _ := NewMock(t)
		entry, err := svc.Withdraw(ctx, "u-1", -5, "cash out")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, entry)
	})
}

func TestService_Transfer(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful transfer", func(t *testing.T) {
		svc, ledgerRepo, accountRepo, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				assert.Equal(t, domain.TransferTransaction, e.TransactionType)
				assert.Equal(t, "u-a", e.UserID)
				assert.Equal(t, "u-b", *e.ReceiveUserID)
				return e, nil
			})
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-a").Return(&domain.User{ID: "u-a", Coin: 500}, nil)
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-b").Return(&domain.User{ID: "u-b", Coin: 50}, nil)
		accountRepo.EXPECT().UpdateUserCoin(ctx, "u-a", int64(400)).Return(nil)
		accountRepo.EXPECT().UpdateUserCoin(ctx, "u-b", int64(150)).Return(nil)

		entry, err := svc.Transfer(ctx, "u-a", "u-b", 100, "thanks")
		assert.NoError(t, err)
		assert.Equal(t, int64(100), entry.Amount)
	})

	t.Run("Locks are taken in id order regardless of direction", func(t *testing.T) {
		svc, ledgerRepo, accountRepo, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				return e, nil
			})
		// sender id sorts after receiver id, lock order must still be a then b
		gomock.InOrder(
			accountRepo.EXPECT().GetUserForUpdate(ctx, "u-a").Return(&domain.User{ID: "u-a", Coin: 50}, nil),
			accountRepo.EXPECT().GetUserForUpdate(ctx, "u-b").Return(&domain.User{ID: "u-b", Coin: 500}, nil),
		)
		accountRepo.EXPECT().UpdateUserCoin(ctx, "u-b", int64(400)).Return(nil)
		accountRepo.EXPECT().UpdateUserCoin(ctx, "u-a", int64(150)).Return(nil)

		entry, err := svc.Transfer(ctx, "u-b", "u-a", 100, "back at you")
		assert.NoError(t, err)
		assert.NotNil(t, entry)
	})

	t.Run("Transfer of the full balance is rejected", func(t *testing.T) {
		svc, ledgerRepo, accountRepo, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				return e, nil
			})
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-a").Return(&domain.User{ID: "u-a", Coin: 100}, nil)
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-b").Return(&domain.User{ID: "u-b", Coin: 0}, nil)

		entry, err := svc.Transfer(ctx, "u-a", "u-b", 100, "all in")
		assert.ErrorIs(t, err, ErrCoinLack)
		assert.Nil(t, entry)
	})

	t.Run("Receiver does not exist", func(t *testing.T) {
		svc, ledgerRepo, accountRepo, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				return e, nil
			})
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-a").Return(&domain.User{ID: "u-a", Coin: 500}, nil)
		accountRepo.EXPECT().GetUserForUpdate(ctx, "u-b").Return(nil, nil)

		entry, err := svc.Transfer(ctx, "u-a", "u-b", 100, "thanks")
		assert.ErrorIs(t, err, ErrReceiverNotFound)
		assert.Nil(t, entry)
	})

	t.Run("Receiver rejected by the ledger foreign key", func(t *testing.T) {
		svc, ledgerRepo, _, _ := NewMock(t)
		ledgerRepo.EXPECT().CreateEntry(ctx, gomock.Any()).
			Return(nil, &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "ledger_receive_user_id_fkey"})

		entry, err := svc.Transfer(ctx, "u-a", "u-404", 100, "thanks")
		assert.ErrorIs(t, err, ErrReceiverNotFound)
		assert.Nil(t, entry)
	})

	t.Run("Self transfer is rejected", func(t *testing.T) {
		svc, _, _, _ := NewMock(t)
		entry, err := svc.Transfer(ctx, "u-a", "u-a", 100, "loop")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, entry)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		svc, _, _, _ := NewMock(t)
		entry, err := svc.Transfer(ctx, "u-a", "u-b", 0, "nothing")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, entry)
	})
}

func TestService_GetTransactions(t *testing.T) {
	ctx := context.Background()
	svc, ledgerRepo, _, _ := NewMock(t)

	receiver := "u-2"
	entries := []domain.LedgerEntry{
		{ID: "l-2", TransactionType: domain.TransferTransaction, Amount: 100, UserID: "u-1", ReceiveUserID: &receiver},
		{ID: "l-1", TransactionType: domain.DepositTransaction, Amount: 500, UserID: "u-1"},
	}
	ledgerRepo.EXPECT().GetEntriesByUserID(ctx, "u-1", 10, 0, "").Return(entries, nil)

	result, err := svc.GetTransactions(ctx, "u-1", 10, 0, "")
	assert.NoError(t, err)
	assert.Equal(t, entries, result)

	ledgerRepo.EXPECT().GetEntriesByUserID(ctx, "u-1", 10, 0, "").Return(nil, errors.New("database error"))
	result, err = svc.GetTransactions(ctx, "u-1", 10, 0, "")
	assert.Error(t, err)
	assert.Nil(t, result)
}

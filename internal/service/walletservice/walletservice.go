package walletservice

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

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type LedgerRepo interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	GetEntriesByUserID(ctx context.Context, userID string, limit, offset int, counterpartyID string) ([]domain.LedgerEntry, error)
}

type AccountRepo interface {
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	UpdateUserCoin(ctx context.Context, userID string, coin int64) error
}

type Service struct {
	ledgerRepo  LedgerRepo
	accountRepo AccountRepo
	txManager   pg.TXManager
}

func New(ledgerRepo LedgerRepo, accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}

var (
	ErrCoinLack         = errors.New("not enough coin to withdraw or transfer")
	ErrReceiverNotFound = errors.New("cannot transfer to non-existent user")
	ErrInvalidInput     = errors.New("invalid input")
)

const foreignKeyViolationCode = "23503"

func (s *Service) Deposit(ctx context.Context, userID string, amount int64, description string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}

	entry := newEntry(domain.DepositTransaction, userID, nil, amount, description)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		entry.Time = time.Now()
		if _, err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
			return err
		}

		user, err := s.accountRepo.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %s disappeared during transaction", userID)
		}
		return s.accountRepo.UpdateUserCoin(ctx, userID, user.Coin+amount)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Withdraw rejects amounts that would exhaust the balance: the account must
// keep at least one coin after the operation.
func (s *Service) Withdraw(ctx context.Context, userID string, amount int64, description string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}

	entry := newEntry(domain.WithdrawTransaction, userID, nil, amount, description)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		entry.Time = time.Now()
		if _, err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
			return err
		}

		user, err := s.accountRepo.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %s disappeared during transaction", userID)
		}
		if user.Coin <= amount {
			return ErrCoinLack
		}
		return s.accountRepo.UpdateUserCoin(ctx, userID, user.Coin-amount)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Transfer debits the sender and credits the receiver in one transaction.
// Both account locks are taken in lexicographic id order, independent of
// transfer direction, so two opposite transfers cannot deadlock.
func (s *Service) Transfer(ctx context.Context, sendUserID, receiveUserID string, amount int64, description string) (*domain.LedgerEntry, error) {
	if amount <= 0 || sendUserID == receiveUserID {
		return nil, ErrInvalidInput
	}

	entry := newEntry(domain.TransferTransaction, sendUserID, &receiveUserID, amount, description)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		entry.Time = time.Now()
		if _, err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
			return err
		}

		firstID, secondID := sendUserID, receiveUserID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}

		first, err := s.accountRepo.GetUserForUpdate(ctx, firstID)
		if err != nil {
			return err
		}
		second, err := s.accountRepo.GetUserForUpdate(ctx, secondID)
		if err != nil {
			return err
		}

		sender, receiver := first, second
		if firstID != sendUserID {
			sender, receiver = second, first
		}
		if receiver == nil {
			return ErrReceiverNotFound
		}
		if sender == nil {
			return fmt.Errorf("user %s disappeared during transaction", sendUserID)
		}
		if sender.Coin <= amount {
			return ErrCoinLack
		}

		if err := s.accountRepo.UpdateUserCoin(ctx, sender.ID, sender.Coin-amount); err != nil {
			return err
		}
		return s.accountRepo.UpdateUserCoin(ctx, receiver.ID, receiver.Coin+amount)
	})
	if err != nil {
		// the ledger row references users(id), so an unknown receiver
		// surfaces as a foreign-key violation on the insert
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return nil, ErrReceiverNotFound
		}
		return nil, err
	}

	zap.L().Info("transfer committed",
		zap.String("send_user_id", sendUserID),
		zap.String("receive_user_id", receiveUserID),
		zap.Int64("amount", amount),
	)
	return entry, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string, limit, offset int, counterpartyID string) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetEntriesByUserID(ctx, userID, limit, offset, counterpartyID)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// newEntry leaves Time zero; it is stamped inside the transaction so the
// history stays ordered by commit, not by call time.
func newEntry(transactionType, userID string, receiveUserID *string, amount int64, description string) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:              uuid.NewString(),
		TransactionType: transactionType,
		Amount:          amount,
		Description:     description,
		UserID:          userID,
		ReceiveUserID:   receiveUserID,
	}
}

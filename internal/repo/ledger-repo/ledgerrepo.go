package ledgerrepo

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

// CreateEntry appends a ledger row. The ledger is append-only: entries are
// never updated or deleted.
func (r *Repository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger (id, transaction_type, amount, description, time, user_id, receive_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		entry.ID, entry.TransactionType, entry.Amount, entry.Description,
		entry.Time, entry.UserID, entry.ReceiveUserID,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// GetEntriesByUserID returns entries where the user is sender or receiver,
// newest first. A non-empty counterpartyID restricts the result to entries
// between the user and that counterparty.
func (r *Repository) GetEntriesByUserID(ctx context.Context, userID string, limit, offset int, counterpartyID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, transaction_type, amount, description, time, user_id, receive_user_id
		FROM ledger
		WHERE (user_id = $1 OR receive_user_id = $1)
		  AND ($4 = ''
		       OR (user_id = $1 AND receive_user_id = $4)
		       OR (user_id = $4 AND receive_user_id = $1))
		ORDER BY time DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset, counterpartyID)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(
			&entry.ID, &entry.TransactionType, &entry.Amount, &entry.Description,
			&entry.Time, &entry.UserID, &entry.ReceiveUserID,
		)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

package userrepo

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, coin FROM users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Coin)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, coin FROM users WHERE id = $1", userID).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Coin)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// GetUserForUpdate takes a row-level exclusive lock on the user until the
// enclosing transaction commits or rolls back.
func (repo *Repository) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, coin
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Coin)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateUserCoin(ctx context.Context, userID string, coin int64) error {
	query := `
		UPDATE users
		SET coin = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, coin, userID)
	if err != nil {
		zap.L().Error("can't update user coin", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, login, password_hash, coin)
		VALUES ($1, $2, $3, 0)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Login, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/dto"
	"github.com/GlebRadaev/gomarket/internal/service/walletservice"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Service interface {
	Deposit(ctx context.Context, userID string, amount int64, description string) (*domain.LedgerEntry, error)
	Withdraw(ctx context.Context, userID string, amount int64, description string) (*domain.LedgerEntry, error)
	Transfer(ctx context.Context, sendUserID, receiveUserID string, amount int64, description string) (*domain.LedgerEntry, error)
	GetTransactions(ctx context.Context, userID string, limit, offset int, counterpartyID string) ([]domain.LedgerEntry, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// Deposit godoc
//
//	@Summary		Deposit coin
//	@Tags			Pay
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BalanceRequestDTO	true	"Deposit request body"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pay/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.BalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_000", "Invalid request body")
		return
	}

	entry, err := h.walletService.Deposit(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		respondWithWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionDTO(entry))
}

// Withdraw godoc
//
//	@Summary		Withdraw coin
//	@Tags			Pay
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BalanceRequestDTO	true	"Withdraw request body"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input or not enough coin"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pay/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.BalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_000", "Invalid request body")
		return
	}

	entry, err := h.walletService.Withdraw(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		respondWithWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionDTO(entry))
}

// Transfer godoc
//
//	@Summary		Transfer coin to another user
//	@Tags			Pay
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request body"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input, unknown receiver or not enough coin"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pay/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_000", "Invalid request body")
		return
	}

	entry, err := h.walletService.Transfer(r.Context(), userID, req.ReceiveUserID, req.Amount, req.Description)
	if err != nil {
		respondWithWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionDTO(entry))
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Ledger entries where the user is sender or receiver, newest first
//	@Tags			Pay
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit			query		int		false	"Page size (1-100)"
//	@Param			offset			query		int		false	"Page offset"
//	@Param			counterparty_id	query		string	false	"Restrict to transactions with this user"
//	@Success		200				{array}		dto.TransactionResponseDTO
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/pay/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > maxLimit {
			utils.RespondWithError(w, http.StatusBadRequest, "ERR_010", "invalid limit")
			return
		}
		limit = parsed
	}

	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "ERR_010", "invalid offset")
			return
		}
		offset = parsed
	}

	entries, err := h.walletService.GetTransactions(r.Context(), userID, limit, offset, r.URL.Query().Get("counterparty_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "ERR_500", "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = toTransactionDTO(&entry)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toTransactionDTO(entry *domain.LedgerEntry) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:              entry.ID,
		TransactionType: entry.TransactionType,
		Amount:          entry.Amount,
		Description:     entry.Description,
		Time:            entry.Time,
		UserID:          entry.UserID,
		ReceiveUserID:   entry.ReceiveUserID,
	}
}

func respondWithWalletError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrCoinLack):
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_011", err.Error())
	case errors.Is(err, walletservice.ErrReceiverNotFound):
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_012", err.Error())
	case errors.Is(err, walletservice.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_010", err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "ERR_500", "Internal server error")
	}
}

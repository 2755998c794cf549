package dto

import "time"

type BalanceRequestDTO struct {
	Amount      int64  `json:"amount" example:"500"`
	Description string `json:"description" example:"top up"`
}

type TransferRequestDTO struct {
	BalanceRequestDTO
	ReceiveUserID string `json:"receive_user_id" example:"9b4f1d36-5c29-4f27-9a93-57e6ad1f2f10"`
}

type TransactionResponseDTO struct {
	ID              string    `json:"id"`
	TransactionType string    `json:"transaction_type"`
	Amount          int64     `json:"amount"`
	Description     string    `json:"description"`
	Time            time.Time `json:"time"`
	UserID          string    `json:"user_id"`
	ReceiveUserID   *string   `json:"receive_user_id,omitempty"`
}

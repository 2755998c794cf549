package dto

import "time"

type CreateAuctionRequestDTO struct {
	ProductID     string    `json:"product_id" example:"3f6f3f84-8d6a-4f7c-9f5e-1f2a3b4c5d6e"`
	StartingPrice int64     `json:"starting_price" example:"1000"`
	EndAt         time.Time `json:"end_at" example:"2025-01-31T18:00:00+03:00"`
}

type AuctionResponseDTO struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	CurrentPrice int64     `json:"current_price"`
	EndAt        time.Time `json:"end_at"`
	BidCount     int       `json:"bid_count"`
	Status       string    `json:"status"`
}

type AuctionListItemDTO struct {
	AuctionResponseDTO
	ProductTitle string `json:"product_title"`
	OwnerID      string `json:"owner_id"`
	CategoryID   string `json:"category_id"`
	RegionID     string `json:"region_id"`
}

type PlaceBidRequestDTO struct {
	BidPrice int64 `json:"bid_price" example:"1200"`
}

type BidResponseDTO struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	BidPrice  int64     `json:"bid_price"`
	BidAt     time.Time `json:"bid_at"`
}

type UserBidResponseDTO struct {
	BidResponseDTO
	ProductID     string    `json:"product_id"`
	ProductTitle  string    `json:"product_title"`
	CurrentPrice  int64     `json:"current_price"`
	AuctionStatus string    `json:"auction_status"`
	EndAt         time.Time `json:"end_at"`
}

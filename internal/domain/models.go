package domain

import "time"

type User struct {
	ID           string    `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Coin         int64     `db:"coin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Product struct {
	ID         string    `db:"id"`
	OwnerID    string    `db:"owner_id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	Price      int64     `db:"price"`
	CategoryID string    `db:"category_id"`
	RegionID   string    `db:"region_id"`
	CreatedAt  time.Time `db:"created_at"`
}

const (
	// ActiveAuctionStatus bids are accepted;
	ActiveAuctionStatus string = "ACTIVE"
	// FinishedAuctionStatus auction ended with at least one bid;
	FinishedAuctionStatus string = "FINISHED"
	// FailedAuctionStatus auction ended without bids;
	FailedAuctionStatus string = "FAILED"
	// CanceledAuctionStatus auction removed by the product owner;
	CanceledAuctionStatus string = "CANCELED"
)

type Auction struct {
	ID           string    `db:"id"`
	ProductID    string    `db:"product_id"`
	CurrentPrice int64     `db:"current_price"`
	EndAt        time.Time `db:"end_at"`
	BidCount     int       `db:"bid_count"`
	Status       string    `db:"status"`
}

// AuctionListItem is an active auction joined with its product for listings.
type AuctionListItem struct {
	Auction
	ProductTitle string `db:"title"`
	OwnerID      string `db:"owner_id"`
	CategoryID   string `db:"category_id"`
	RegionID     string `db:"region_id"`
}

type Bid struct {
	ID        string    `db:"id"`
	AuctionID string    `db:"auction_id"`
	BidderID  string    `db:"bidder_id"`
	BidPrice  int64     `db:"bid_price"`
	BidAt     time.Time `db:"bid_at"`
}

// UserBid is a bid joined with its auction and product for history views.
type UserBid struct {
	Bid
	ProductID     string    `db:"product_id"`
	ProductTitle  string    `db:"title"`
	CurrentPrice  int64     `db:"current_price"`
	AuctionStatus string    `db:"auction_status"`
	EndAt         time.Time `db:"end_at"`
}

const (
	DepositTransaction  string = "DEPOSIT"
	WithdrawTransaction string = "WITHDRAW"
	TransferTransaction string = "TRANSFER"
)

type LedgerEntry struct {
	ID              string    `db:"id"`
	TransactionType string    `db:"transaction_type"`
	Amount          int64     `db:"amount"`
	Description     string    `db:"description"`
	Time            time.Time `db:"time"`
	UserID          string    `db:"user_id"`
	ReceiveUserID   *string   `db:"receive_user_id"`
}

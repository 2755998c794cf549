package repo

import (
	"github.com/GlebRadaev/gomarket/internal/pg"
	auctionrepo "github.com/GlebRadaev/gomarket/internal/repo/auction-repo"
	bidrepo "github.com/GlebRadaev/gomarket/internal/repo/bid-repo"
	ledgerrepo "github.com/GlebRadaev/gomarket/internal/repo/ledger-repo"
	productrepo "github.com/GlebRadaev/gomarket/internal/repo/product-repo"
	userrepo "github.com/GlebRadaev/gomarket/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	ProductRepo *productrepo.Repository
	AuctionRepo *auctionrepo.Repository
	BidRepo     *bidrepo.Repository
	LedgerRepo  *ledgerrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		ProductRepo: productrepo.New(conn),
		AuctionRepo: auctionrepo.New(conn),
		BidRepo:     bidrepo.New(conn),
		LedgerRepo:  ledgerrepo.New(conn),
	}
}

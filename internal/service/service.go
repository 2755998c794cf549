package service

import (
	"github.com/GlebRadaev/gomarket/internal/closer"
	"github.com/GlebRadaev/gomarket/internal/handlers/auction"
	authhandler "github.com/GlebRadaev/gomarket/internal/handlers/auth"
	"github.com/GlebRadaev/gomarket/internal/handlers/products"
	"github.com/GlebRadaev/gomarket/internal/handlers/wallet"

	pkgauth "github.com/GlebRadaev/gomarket/pkg/auth"

	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/GlebRadaev/gomarket/internal/repo"
	"github.com/GlebRadaev/gomarket/internal/service/auctionservice"
	"github.com/GlebRadaev/gomarket/internal/service/authservice"
	"github.com/GlebRadaev/gomarket/internal/service/productservice"
	"github.com/GlebRadaev/gomarket/internal/service/walletservice"
)

type Services struct {
	AuthService    authhandler.Service
	ProductService products.Service
	AuctionService auction.Service
	WalletService  wallet.Service
	CloserService  closer.AuctionService
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	productService := productservice.New(repo.ProductRepo)
	auctionService := auctionservice.New(repo.AuctionRepo, repo.BidRepo, repo.ProductRepo, txManager)
	walletService := walletservice.New(repo.LedgerRepo, repo.UserRepo, txManager)

	return &Services{
		AuthService:    authService,
		ProductService: productService,
		AuctionService: auctionService,
		WalletService:  walletService,
		CloserService:  auctionService,
	}
}

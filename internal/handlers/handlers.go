package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/gomarket/docs"
	auctionhandlers "github.com/GlebRadaev/gomarket/internal/handlers/auction"
	authhandlers "github.com/GlebRadaev/gomarket/internal/handlers/auth"
	producthandlers "github.com/GlebRadaev/gomarket/internal/handlers/products"
	wallethandlers "github.com/GlebRadaev/gomarket/internal/handlers/wallet"
	"github.com/GlebRadaev/gomarket/internal/service"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
}

type AuctionHandler interface {
	CreateAuction(w http.ResponseWriter, r *http.Request)
	ListAuctions(w http.ResponseWriter, r *http.Request)
	GetAuction(w http.ResponseWriter, r *http.Request)
	PlaceBid(w http.ResponseWriter, r *http.Request)
	DeleteAuction(w http.ResponseWriter, r *http.Request)
	GetUserBids(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ProductHandler ProductHandler
	AuctionHandler AuctionHandler
	WalletHandler  WalletHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ProductHandler: producthandlers.New(s.ProductService),
		AuctionHandler: auctionhandlers.New(s.AuctionService),
		WalletHandler:  wallethandlers.New(s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Get("/auctions", h.AuctionHandler.ListAuctions)
		r.Get("/auctions/{auctionID}", h.AuctionHandler.GetAuction)
		r.Get("/products/{productID}", h.ProductHandler.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/products", h.ProductHandler.CreateProduct)
			r.Post("/auctions", h.AuctionHandler.CreateAuction)
			r.Delete("/auctions/{auctionID}", h.AuctionHandler.DeleteAuction)
			r.Post("/auctions/{auctionID}/bids", h.AuctionHandler.PlaceBid)
			r.Get("/user/bids", h.AuctionHandler.GetUserBids)
			r.Route("/pay", func(r chi.Router) {
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Post("/transfer", h.WalletHandler.Transfer)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
		})
	})

	return r
}

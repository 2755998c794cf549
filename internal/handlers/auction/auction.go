package auction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/dto"
	"github.com/GlebRadaev/gomarket/internal/service/auctionservice"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/utils"
)

//go:generate mockgen -source=auction.go -destination=mock_auction.go -package=auction

type Service interface {
	CreateAuction(ctx context.Context, productID, requesterID string, startingPrice int64, endAt time.Time) (*domain.Auction, error)
	PlaceBid(ctx context.Context, auctionID, bidderID string, bidPrice int64) (*domain.Bid, error)
	ListActiveAuctions(ctx context.Context, categoryID, regionID string) ([]domain.AuctionListItem, error)
	GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error)
	ListUserBids(ctx context.Context, userID string) ([]domain.UserBid, error)
	DeleteAuction(ctx context.Context, auctionID, requesterID string) error
}

type AuctionHandler struct {
	auctionService Service
}

func New(auctionService Service) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
	}
}

// CreateAuction godoc
//
//	@Summary		Create an auction
//	@Description	Start an ACTIVE auction for an owned product
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAuctionRequestDTO	true	"Auction request body"
//	@Success		201		{object}	dto.AuctionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input or auction already exists"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the product owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions [post]
func (h *AuctionHandler) CreateAuction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateAuctionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_000", "Invalid request body")
		return
	}

	auction, err := h.auctionService.CreateAuction(r.Context(), req.ProductID, userID, req.StartingPrice, req.EndAt)
	if err != nil {
		respondWithAuctionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAuctionDTO(auction))
}

// ListAuctions godoc
//
//	@Summary		List active auctions
//	@Description	Active auctions ordered by end time, optionally filtered by category and region
//	@Tags			Auctions
//	@Produce		json
//	@Param			category_id	query		string	false	"Category filter"
//	@Param			region_id	query		string	false	"Region filter"
//	@Success		200			{array}		dto.AuctionListItemDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions [get]
func (h *AuctionHandler) ListAuctions(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")
	regionID := r.URL.Query().Get("region_id")

	auctions, err := h.auctionService.ListActiveAuctions(r.Context(), categoryID, regionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "ERR_500", "Internal server error")
		return
	}

	response := make([]dto.AuctionListItemDTO, len(auctions))
	for i, item := range auctions {
		response[i] = dto.AuctionListItemDTO{
			AuctionResponseDTO: toAuctionDTO(&item.Auction),
			ProductTitle:       item.ProductTitle,
			OwnerID:            item.OwnerID,
			CategoryID:         item.CategoryID,
			RegionID:           item.RegionID,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAuction godoc
//
//	@Summary		Get auction details
//	@Tags			Auctions
//	@Produce		json
//	@Param			auctionID	path		string	true	"Auction ID"
//	@Success		200			{object}	dto.AuctionResponseDTO
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID} [get]
func (h *AuctionHandler) GetAuction(w http.ResponseWriter, r *http.Request) {
	auctionID := chi.URLParam(r, "auctionID")

	auction, err := h.auctionService.GetAuction(r.Context(), auctionID)
	if err != nil {
		respondWithAuctionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAuctionDTO(auction))
}

// PlaceBid godoc
//
//	@Summary		Place a bid
//	@Description	Bid on an active auction; the price must exceed the current price
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			auctionID	path		string					true	"Auction ID"
//	@Param			request		body		dto.PlaceBidRequestDTO	true	"Bid request body"
//	@Success		201			{object}	dto.BidResponseDTO
//	@Failure		400			{object}	utils.Response	"Bid too low or auction finished"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Self-bidding forbidden"
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/bids [post]
func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	auctionID := chi.URLParam(r, "auctionID")

	var req dto.PlaceBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_000", "Invalid request body")
		return
	}

	bid, err := h.auctionService.PlaceBid(r.Context(), auctionID, userID, req.BidPrice)
	if err != nil {
		respondWithAuctionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.BidResponseDTO{
		ID:        bid.ID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		BidPrice:  bid.BidPrice,
		BidAt:     bid.BidAt,
	})
}

// DeleteAuction godoc
//
//	@Summary		Delete an auction
//	@Description	Cancel an ACTIVE auction without bids; owner only
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Param			auctionID	path	string	true	"Auction ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Action not allowed"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID} [delete]
func (h *AuctionHandler) DeleteAuction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	auctionID := chi.URLParam(r, "auctionID")

	if err := h.auctionService.DeleteAuction(r.Context(), auctionID, userID); err != nil {
		respondWithAuctionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetUserBids godoc
//
//	@Summary		Get bid history
//	@Description	All bids placed by the authenticated user, joined with auction and product
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserBidResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bids [get]
func (h *AuctionHandler) GetUserBids(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	bids, err := h.auctionService.ListUserBids(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "ERR_500", "Failed to fetch bids")
		return
	}

	response := make([]dto.UserBidResponseDTO, len(bids))
	for i, bid := range bids {
		response[i] = dto.UserBidResponseDTO{
			BidResponseDTO: dto.BidResponseDTO{
				ID:        bid.ID,
				AuctionID: bid.AuctionID,
				BidderID:  bid.BidderID,
				BidPrice:  bid.BidPrice,
				BidAt:     bid.BidAt,
			},
			ProductID:     bid.ProductID,
			ProductTitle:  bid.ProductTitle,
			CurrentPrice:  bid.CurrentPrice,
			AuctionStatus: bid.AuctionStatus,
			EndAt:         bid.EndAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toAuctionDTO(auction *domain.Auction) dto.AuctionResponseDTO {
	return dto.AuctionResponseDTO{
		ID:           auction.ID,
		ProductID:    auction.ProductID,
		CurrentPrice: auction.CurrentPrice,
		EndAt:        auction.EndAt,
		BidCount:     auction.BidCount,
		Status:       auction.Status,
	}
}

func respondWithAuctionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auctionservice.ErrAuctionAlreadyExists):
		utils.RespondWithError(w, http.StatusBadRequest, "AUC_001", err.Error())
	case errors.Is(err, auctionservice.ErrAuctionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "AUC_002", err.Error())
	case errors.Is(err, auctionservice.ErrNotAllowedAction):
		utils.RespondWithError(w, http.StatusForbidden, "AUC_003", err.Error())
	case errors.Is(err, auctionservice.ErrAuctionFinished):
		utils.RespondWithError(w, http.StatusBadRequest, "AUC_004", err.Error())
	case errors.Is(err, auctionservice.ErrBidTooLow):
		utils.RespondWithError(w, http.StatusBadRequest, "AUC_005", err.Error())
	case errors.Is(err, auctionservice.ErrProductNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "PRD_001", err.Error())
	case errors.Is(err, auctionservice.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_010", err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "ERR_500", "Internal server error")
	}
}

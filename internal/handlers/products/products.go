package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/dto"
	"github.com/GlebRadaev/gomarket/internal/service/productservice"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/utils"
)

//go:generate mockgen -source=products.go -destination=mock_products.go -package=products

type Service interface {
	CreateProduct(ctx context.Context, ownerID, title, content string, price int64, categoryID, regionID string) (*domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProductRequestDTO	true	"Product request body"
//	@Success		201		{object}	dto.ProductResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ERR_000", "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), userID, req.Title, req.Content, req.Price, req.CategoryID, req.RegionID)
	if err != nil {
		if errors.Is(err, productservice.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, "ERR_010", err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "ERR_500", "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toProductDTO(product))
}

// GetProduct godoc
//
//	@Summary		Get product details
//	@Tags			Products
//	@Produce		json
//	@Param			productID	path		string	true	"Product ID"
//	@Success		200			{object}	dto.ProductResponseDTO
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{productID} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, productservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "PRD_001", err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "ERR_500", "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProductDTO(product))
}

func toProductDTO(product *domain.Product) dto.ProductResponseDTO {
	return dto.ProductResponseDTO{
		ID:         product.ID,
		OwnerID:    product.OwnerID,
		Title:      product.Title,
		Content:    product.Content,
		Price:      product.Price,
		CategoryID: product.CategoryID,
		RegionID:   product.RegionID,
		CreatedAt:  product.CreatedAt,
	}
}

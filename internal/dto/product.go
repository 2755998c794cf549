package dto

import "time"

type CreateProductRequestDTO struct {
	Title      string `json:"title" example:"Mountain bike"`
	Content    string `json:"content" example:"Barely used, pickup only"`
	Price      int64  `json:"price" example:"15000"`
	CategoryID string `json:"category_id" example:"c1f6d9e2-43a1-4c93-8f4a-2a1f0a9d7b11"`
	RegionID   string `json:"region_id" example:"7a3f1c44-6a0a-4d8a-b1f0-9d2f4f6c8e21"`
}

type ProductResponseDTO struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Price      int64     `json:"price"`
	CategoryID string    `json:"category_id"`
	RegionID   string    `json:"region_id"`
	CreatedAt  time.Time `json:"created_at"`
}

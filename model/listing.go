package model

import (
	"time"

	"github.com/wastenot/wastenot/constant"
)

type ListingItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type CreateListingRequest struct {
	BranchID uint64
	Items    []ListingItemRequest `json:"items" validate:"required,dive,required"`
}

type CreateListingResponse struct {
	ListingID uint64 `json:"listing_id"`
}

type ListingEntity struct {
	ID        uint64                 `db:"id"`
	BranchID  uint64                 `db:"branch_id"`
	Status    constant.ListingStatus `db:"status"`
	CreatedAt time.Time              `db:"created_at"`
}

// LineItem is the inventory ledger row: quantity_listed is fixed at
// creation, quantity_remaining is the only mutable quantity.
type LineItem struct {
	ID                uint64 `db:"id"`
	ListingID         uint64 `db:"listing_id"`
	ProductID         uint64 `db:"product_id"`
	QuantityListed    int64  `db:"quantity_listed"`
	QuantityRemaining int64  `db:"quantity_remaining"`
}

type AvailableLineItem struct {
	LineItemID  uint64 `db:"line_item_id" json:"line_item_id"`
	ListingID   uint64 `db:"listing_id" json:"-"`
	ProductID   uint64 `db:"product_id" json:"product_id"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int64  `db:"quantity_remaining" json:"quantity"`
}

type AvailableListing struct {
	ListingID  uint64              `json:"listing_id"`
	OrgName    string              `json:"org_name,omitempty"`
	BranchName string              `json:"branch_name,omitempty"`
	Items      []AvailableLineItem `json:"items"`
}

type ListingHeader struct {
	ListingID  uint64 `db:"listing_id"`
	OrgName    string `db:"org_name"`
	BranchName string `db:"branch_name"`
}

type UpdateLineItemRequest struct {
	LineItemID uint64 `json:"line_item_id" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"gte=0"`
}

type UpdateListingRequest struct {
	BranchID  uint64
	ListingID uint64                  `json:"listing_id" validate:"required"`
	Items     []UpdateLineItemRequest `json:"items" validate:"required,dive,required"`
}

type UpdateListingResponse struct {
	UpdatedCount int64 `json:"updated_count"`
}

type CancelListingRequest struct {
	BranchID  uint64
	ListingID uint64 `json:"listing_id" validate:"required"`
}

type CancelListingResponse struct {
	ListingID   uint64 `json:"listing_id"`
	ZeroedCount int64  `json:"zeroed_count"`
}

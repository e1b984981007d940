package model

import (
	"time"

	"github.com/wastenot/wastenot/constant"
)

type ClaimItemRequest struct {
	LineItemID uint64 `json:"line_item_id" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
}

type CreateClaimRequest struct {
	UserID   uint64
	BranchID uint64
	Items    []ClaimItemRequest `json:"items" validate:"required,dive,required"`
}

type CreateClaimResponse struct {
	ClaimID   uint64    `json:"claim_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type InsertClaimTxItem struct {
	UserID    uint64
	BranchID  uint64
	Status    constant.ClaimStatus
	ExpiresAt time.Time
}

type ClaimDetail struct {
	ID         uint64               `db:"id"`
	UserID     uint64               `db:"user_id"`
	BranchID   uint64               `db:"branch_id"`
	Status     constant.ClaimStatus `db:"status"`
	ApprovedAt *time.Time           `db:"approved_at"`
}

// ClaimLineItem ties a claimed quantity back to the ledger row it was
// reserved from.
type ClaimLineItem struct {
	ID         uint64 `db:"id"`
	ClaimID    uint64 `db:"claim_id"`
	LineItemID uint64 `db:"line_item_id"`
	Quantity   int64  `db:"quantity"`
}

type ApproveClaimRequest struct {
	BranchID uint64
	UserID   uint64
	ClaimID  uint64 `json:"claim_id" validate:"required"`
}

type ApproveClaimResponse struct {
	ClaimID    uint64    `json:"claim_id"`
	Status     string    `json:"status"`
	ApprovedAt time.Time `json:"approved_at"`
}

type ClaimedItemDetail struct {
	ClaimID     uint64 `db:"claim_id" json:"-"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int64  `db:"quantity" json:"quantity"`
	LineItemID  uint64 `db:"line_item_id" json:"line_item_id"`
}

type ClaimQueueRow struct {
	ClaimID         uint64     `db:"claim_id"`
	UserID          uint64     `db:"user_id"`
	UserEmail       string     `db:"user_email"`
	CharityBranchID uint64     `db:"charity_branch_id"`
	OrgName         string     `db:"org_name"`
	CreatedAt       time.Time  `db:"created_at"`
	ApprovedAt      *time.Time `db:"approved_at"`
}

type QueuedClaim struct {
	ClaimID    uint64              `json:"claim_id"`
	UserID     uint64              `json:"user_id"`
	UserEmail  string              `json:"user_email"`
	CreatedAt  time.Time           `json:"created_at"`
	ApprovedAt *time.Time          `json:"approved_at,omitempty"`
	Items      []ClaimedItemDetail `json:"items"`
	TotalItems int64               `json:"total_items"`
}

// ClaimQueueGroup buckets a branch's queue by the charity branch that
// raised the claims. ClaimCount and TotalItems are recomputed on every
// read, never stored.
type ClaimQueueGroup struct {
	CharityBranchID uint64        `json:"charity_branch_id"`
	OrgName         string        `json:"org_name"`
	ClaimCount      int64         `json:"claim_count"`
	TotalItems      int64         `json:"total_items"`
	Claims          []QueuedClaim `json:"claims"`
}

type AwaitingPickupRow struct {
	ClaimID        uint64     `db:"claim_id"`
	Complete       bool       `db:"complete"`
	OrgName        string     `db:"org_name"`
	BranchName     string     `db:"branch_name"`
	BranchLocation string     `db:"branch_location"`
	ApprovedAt     *time.Time `db:"approved_at"`
}

type AwaitingPickup struct {
	ClaimID        uint64     `json:"claim_id"`
	Complete       bool       `json:"complete"`
	OrgName        string     `json:"org_name"`
	BranchName     string     `json:"branch_name"`
	BranchLocation string     `json:"branch_location"`
	TotalItems     int64      `json:"total_items"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
}

package model

import (
	"time"

	"github.com/wastenot/wastenot/constant"
)

type PickupEntity struct {
	ID        uint64    `db:"id"`
	ClaimID   uint64    `db:"claim_id"`
	QRCode    string    `db:"qr_code"`
	Complete  bool      `db:"complete"`
	CreatedAt time.Time `db:"created_at"`
}

// PickupLookup is the verify-side join: pickup row plus the claim it
// belongs to and the store branch that owns the claimed listing.
type PickupLookup struct {
	PickupID      uint64               `db:"pickup_id"`
	ClaimID       uint64               `db:"claim_id"`
	ClaimStatus   constant.ClaimStatus `db:"claim_status"`
	Complete      bool                 `db:"complete"`
	CharityBranch uint64               `db:"charity_branch_id"`
	StoreBranch   uint64               `db:"store_branch_id"`
}

type VerifyPickupRequest struct {
	BranchID uint64
	QRCode   string `json:"qr_code" validate:"required"`
}

type HandoverItem struct {
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int64  `db:"quantity" json:"quantity"`
}

type VerifyPickupResponse struct {
	PickupID    uint64         `json:"pickup_id"`
	ClaimID     uint64         `json:"claim_id"`
	CharityName string         `json:"charity_name"`
	Items       []HandoverItem `json:"items"`
}

type StoreInfo struct {
	OrgName        string `db:"org_name" json:"org_name"`
	BranchName     string `db:"branch_name" json:"branch_name"`
	BranchLocation string `db:"branch_location" json:"branch_location"`
}

type PickupPresentation struct {
	PickupID    uint64         `json:"pickup_id"`
	ClaimID     uint64         `json:"claim_id"`
	QRCode      string         `json:"qr_code"`
	QRCodeImage string         `json:"qr_code_image"`
	Complete    bool           `json:"complete"`
	CreatedAt   time.Time      `json:"created_at"`
	Items       []HandoverItem `json:"items"`
	StoreInfo   StoreInfo      `json:"store_info"`
}

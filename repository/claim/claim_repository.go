package claim

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
)

type ClaimRepository interface {
	InsertClaimTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertClaimTxItem) (uint64, error)
	InsertClaimLineItemsTx(ctx context.Context, tx *sqlx.Tx, claimID uint64, items []model.ClaimItemRequest) error
	GetClaimForUpdateTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) (*model.ClaimDetail, error)
	UpdateClaimStatusTx(ctx context.Context, tx *sqlx.Tx, claimID uint64, status constant.ClaimStatus) error
	ApproveClaimTx(ctx context.Context, tx *sqlx.Tx, claimID, approverUserID uint64) error
	GetClaimLineItemsTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) ([]model.ClaimLineItem, error)
	GetClaimStoreBranchTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) (uint64, error)

	ListPendingForBranch(ctx context.Context, storeBranchID uint64) ([]model.ClaimQueueRow, error)
	ListApprovedAwaitingForBranch(ctx context.Context, storeBranchID uint64) ([]model.ClaimQueueRow, error)
	ListApprovedForCharityBranch(ctx context.Context, charityBranchID uint64) ([]model.AwaitingPickupRow, error)
	GetClaimedItemDetails(ctx context.Context, claimIDs []uint64) ([]model.ClaimedItemDetail, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewClaimRepository(conn *sqlx.DB) ClaimRepository {
	return &SQL{conn: conn}
}

const (
	insertClaimQuery = `INSERT INTO claim (user_id, branch_id, status, created_at, expires_at) VALUES (?, ?, ?, NOW(), ?)`

	insertClaimLineItemQuery = `INSERT INTO claim_line_item (claim_id, line_item_id, quantity) VALUES (?, ?, ?)`

	lockClaimQuery = `SELECT id, user_id, branch_id, status, approved_at FROM claim WHERE id = ? FOR UPDATE`

	claimStoreBranchQuery = `SELECT DISTINCT l.branch_id
FROM claim_line_item cli
JOIN listing_line_item lli ON lli.id = cli.line_item_id
JOIN listing l ON l.id = lli.listing_id
WHERE cli.claim_id = ?`

	claimQueueBase = `SELECT DISTINCT c.id as claim_id, c.user_id, u.email as user_email, c.branch_id as charity_branch_id, b.org_name, c.created_at, c.approved_at
FROM claim c
JOIN app_user u ON u.id = c.user_id
JOIN branch b ON b.id = c.branch_id
JOIN claim_line_item cli ON cli.claim_id = c.id
JOIN listing_line_item lli ON lli.id = cli.line_item_id
JOIN listing l ON l.id = lli.listing_id`

	pendingClaimsQuery = claimQueueBase + `
WHERE l.branch_id = ? AND c.status = ?
ORDER BY c.created_at DESC`

	approvedAwaitingQuery = claimQueueBase + `
LEFT JOIN pickup p ON p.claim_id = c.id
WHERE l.branch_id = ? AND c.status = ? AND COALESCE(p.complete, FALSE) = FALSE
ORDER BY c.approved_at DESC`

	approvedClaimsQuery = `SELECT DISTINCT c.id as claim_id, COALESCE(p.complete, FALSE) as complete,
store_b.org_name, store_b.branch_name, store_b.branch_location, c.approved_at
FROM claim c
LEFT JOIN pickup p ON p.claim_id = c.id
JOIN claim_line_item cli ON cli.claim_id = c.id
JOIN listing_line_item lli ON lli.id = cli.line_item_id
JOIN listing l ON l.id = lli.listing_id
JOIN branch store_b ON store_b.id = l.branch_id
WHERE c.branch_id = ? AND c.status IN (?, ?)
ORDER BY c.approved_at DESC`

	claimedItemsQuery = `SELECT cli.claim_id, p.name as product_name, cli.quantity, cli.line_item_id
FROM claim_line_item cli
JOIN listing_line_item lli ON lli.id = cli.line_item_id
JOIN product p ON p.id = lli.product_id
WHERE cli.claim_id IN (?)
ORDER BY p.name`
)

func (r *SQL) InsertClaimTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertClaimTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertClaimQuery, req.UserID, req.BranchID, req.Status, req.ExpiresAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertClaimLineItemsTx(ctx context.Context, tx *sqlx.Tx, claimID uint64, items []model.ClaimItemRequest) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertClaimLineItemQuery, claimID, it.LineItemID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetClaimForUpdateTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) (*model.ClaimDetail, error) {
	var detail model.ClaimDetail
	if err := tx.QueryRowxContext(ctx, lockClaimQuery, claimID).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) UpdateClaimStatusTx(ctx context.Context, tx *sqlx.Tx, claimID uint64, status constant.ClaimStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE claim SET status = ? WHERE id = ?", status, claimID)
	return err
}

func (r *SQL) ApproveClaimTx(ctx context.Context, tx *sqlx.Tx, claimID, approverUserID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE claim SET status = ?, approved_at = NOW(), approved_by = ? WHERE id = ?",
		constant.ClaimStatusApproved, approverUserID, claimID)
	return err
}

func (r *SQL) GetClaimLineItemsTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) ([]model.ClaimLineItem, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, claim_id, line_item_id, quantity FROM claim_line_item WHERE claim_id = ?", claimID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ClaimLineItem, 0)
	for rows.Next() {
		var it model.ClaimLineItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetClaimStoreBranchTx returns the single store branch the claim draws
// from; sql.ErrNoRows when the claim has no line items.
func (r *SQL) GetClaimStoreBranchTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) (uint64, error) {
	var branchID uint64
	if err := tx.GetContext(ctx, &branchID, claimStoreBranchQuery, claimID); err != nil {
		return 0, err
	}
	return branchID, nil
}

func (r *SQL) ListPendingForBranch(ctx context.Context, storeBranchID uint64) ([]model.ClaimQueueRow, error) {
	return r.queryQueueRows(ctx, pendingClaimsQuery, storeBranchID, constant.ClaimStatusPending)
}

func (r *SQL) ListApprovedAwaitingForBranch(ctx context.Context, storeBranchID uint64) ([]model.ClaimQueueRow, error) {
	return r.queryQueueRows(ctx, approvedAwaitingQuery, storeBranchID, constant.ClaimStatusApproved)
}

func (r *SQL) queryQueueRows(ctx context.Context, query string, storeBranchID uint64, status constant.ClaimStatus) ([]model.ClaimQueueRow, error) {
	rows, err := r.conn.QueryxContext(ctx, query, storeBranchID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := make([]model.ClaimQueueRow, 0)
	for rows.Next() {
		var c model.ClaimQueueRow
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

func (r *SQL) ListApprovedForCharityBranch(ctx context.Context, charityBranchID uint64) ([]model.AwaitingPickupRow, error) {
	rows, err := r.conn.QueryxContext(ctx, approvedClaimsQuery, charityBranchID, constant.ClaimStatusApproved, constant.ClaimStatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := make([]model.AwaitingPickupRow, 0)
	for rows.Next() {
		var c model.AwaitingPickupRow
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

func (r *SQL) GetClaimedItemDetails(ctx context.Context, claimIDs []uint64) ([]model.ClaimedItemDetail, error) {
	if len(claimIDs) == 0 {
		return []model.ClaimedItemDetail{}, nil
	}

	query, args, err := sqlx.In(claimedItemsQuery, claimIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryxContext(ctx, r.conn.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ClaimedItemDetail, 0)
	for rows.Next() {
		var it model.ClaimedItemDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

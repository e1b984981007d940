package listing

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
	"github.com/wastenot/wastenot/utils/errors"
)

type ListingRepository interface {
	InsertListingTx(ctx context.Context, tx *sqlx.Tx, branchID uint64) (uint64, error)
	InsertLineItemsTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, items []model.ListingItemRequest) error
	GetListingForUpdateTx(ctx context.Context, tx *sqlx.Tx, listingID, branchID uint64) (*model.ListingEntity, error)
	UpdateListingStatusTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, status constant.ListingStatus) error

	ReserveLineItemTx(ctx context.Context, tx *sqlx.Tx, lineItemID uint64, quantity int64) error
	ReleaseLineItemTx(ctx context.Context, tx *sqlx.Tx, lineItemID uint64, quantity int64) error
	MarkExhaustedListingsTx(ctx context.Context, tx *sqlx.Tx, lineItemIDs []uint64) error
	SetLineItemRemainingTx(ctx context.Context, tx *sqlx.Tx, listingID, lineItemID uint64, quantity int64) (int64, error)
	ZeroListingItemsTx(ctx context.Context, tx *sqlx.Tx, listingID uint64) (int64, error)

	GetLineItemStoreBranchesTx(ctx context.Context, tx *sqlx.Tx, lineItemIDs []uint64) ([]uint64, error)
	ListAvailable(ctx context.Context) ([]model.ListingHeader, []model.AvailableLineItem, error)
	ListForBranch(ctx context.Context, branchID uint64) ([]model.ListingHeader, []model.AvailableLineItem, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewListingRepository(conn *sqlx.DB) ListingRepository {
	return &SQL{conn: conn}
}

const (
	insertListingQuery = `INSERT INTO listing (branch_id, status, created_at) VALUES (?, ?, NOW())`

	insertLineItemQuery = `INSERT INTO listing_line_item (listing_id, product_id, quantity_listed, quantity_remaining) VALUES (?, ?, ?, ?)`

	lockLineItemQuery = `SELECT id, listing_id, product_id, quantity_listed, quantity_remaining FROM listing_line_item WHERE id = ? FOR UPDATE`

	markExhaustedListingsQuery = `UPDATE listing SET status = ?
WHERE status = ?
AND id IN (SELECT listing_id FROM listing_line_item WHERE id IN (?))
AND id NOT IN (SELECT listing_id FROM listing_line_item WHERE quantity_remaining > 0)`

	listAvailableHeaders = `SELECT l.id as listing_id, b.org_name, b.branch_name
FROM listing l
JOIN branch b ON b.id = l.branch_id
WHERE l.status = ?
ORDER BY l.id`

	listBranchHeaders = `SELECT l.id as listing_id, b.org_name, b.branch_name
FROM listing l
JOIN branch b ON b.id = l.branch_id
WHERE l.branch_id = ?
ORDER BY l.id`

	listAvailableItems = `SELECT lli.id as line_item_id, lli.listing_id, lli.product_id, p.name as product_name, lli.quantity_remaining
FROM listing_line_item lli
JOIN listing l ON l.id = lli.listing_id
JOIN product p ON p.id = lli.product_id
WHERE l.status = ? AND lli.quantity_remaining >= 1
ORDER BY p.name`

	listBranchItems = `SELECT lli.id as line_item_id, lli.listing_id, lli.product_id, p.name as product_name, lli.quantity_remaining
FROM listing_line_item lli
JOIN listing l ON l.id = lli.listing_id
JOIN product p ON p.id = lli.product_id
WHERE l.branch_id = ?
ORDER BY p.name`
)

func (r *SQL) InsertListingTx(ctx context.Context, tx *sqlx.Tx, branchID uint64) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertListingQuery, branchID, constant.ListingStatusActive)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertLineItemsTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, items []model.ListingItemRequest) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertLineItemQuery, listingID, it.ProductID, it.Quantity, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetListingForUpdateTx(ctx context.Context, tx *sqlx.Tx, listingID, branchID uint64) (*model.ListingEntity, error) {
	var entity model.ListingEntity
	row := tx.QueryRowxContext(ctx, "SELECT id, branch_id, status, created_at FROM listing WHERE id = ? AND branch_id = ? FOR UPDATE", listingID, branchID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) UpdateListingStatusTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, status constant.ListingStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE listing SET status = ? WHERE id = ?", status, listingID)
	return err
}

// ReserveLineItemTx locks the ledger row, checks availability and
// decrements quantity_remaining. The row lock serializes concurrent
// reservations on the same line item for the life of the transaction.
func (r *SQL) ReserveLineItemTx(ctx context.Context, tx *sqlx.Tx, lineItemID uint64, quantity int64) error {
	var item model.LineItem
	if err := tx.QueryRowxContext(ctx, lockLineItemQuery, lineItemID).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrUnknownLineItem)
		}
		return err
	}

	if quantity > item.QuantityRemaining {
		return errors.SetCustomError(constant.ErrInsufficientQuantity)
	}

	_, err := tx.ExecContext(ctx, "UPDATE listing_line_item SET quantity_remaining = quantity_remaining - ? WHERE id = ?", quantity, lineItemID)
	return err
}

// ReleaseLineItemTx returns a reserved quantity to the ledger, clamped
// at quantity_listed so a double release cannot overfill the row.
func (r *SQL) ReleaseLineItemTx(ctx context.Context, tx *sqlx.Tx, lineItemID uint64, quantity int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE listing_line_item SET quantity_remaining = LEAST(quantity_remaining + ?, quantity_listed) WHERE id = ?", quantity, lineItemID)
	return err
}

// MarkExhaustedListingsTx flips any listing touched by the given line
// items to exhausted once none of its items has quantity left. Runs in
// the claim transaction so depletion lands with the reservation.
func (r *SQL) MarkExhaustedListingsTx(ctx context.Context, tx *sqlx.Tx, lineItemIDs []uint64) error {
	query, args, err := sqlx.In(markExhaustedListingsQuery, constant.ListingStatusExhausted, constant.ListingStatusActive, lineItemIDs)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(query), args...)
	return err
}

// SetLineItemRemainingTx is the staff edit path: overwrite remaining,
// clamped to the listed quantity. Returns affected row count so the
// caller can tell whether the item belonged to the listing.
func (r *SQL) SetLineItemRemainingTx(ctx context.Context, tx *sqlx.Tx, listingID, lineItemID uint64, quantity int64) (int64, error) {
	res, err := tx.ExecContext(ctx, "UPDATE listing_line_item SET quantity_remaining = LEAST(?, quantity_listed) WHERE listing_id = ? AND id = ?", quantity, listingID, lineItemID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) ZeroListingItemsTx(ctx context.Context, tx *sqlx.Tx, listingID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, "UPDATE listing_line_item SET quantity_remaining = 0 WHERE listing_id = ?", listingID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetLineItemStoreBranchesTx resolves the owning store branch for each
// requested line item, deduplicated.
func (r *SQL) GetLineItemStoreBranchesTx(ctx context.Context, tx *sqlx.Tx, lineItemIDs []uint64) ([]uint64, error) {
	query, args, err := sqlx.In(`SELECT DISTINCT l.branch_id FROM listing_line_item lli JOIN listing l ON l.id = lli.listing_id WHERE lli.id IN (?)`, lineItemIDs)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryxContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]uint64, 0, 1)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		branches = append(branches, id)
	}
	return branches, rows.Err()
}

func (r *SQL) ListAvailable(ctx context.Context) ([]model.ListingHeader, []model.AvailableLineItem, error) {
	headers, err := r.queryHeaders(ctx, listAvailableHeaders, constant.ListingStatusActive)
	if err != nil {
		return nil, nil, err
	}

	items, err := r.queryItems(ctx, listAvailableItems, constant.ListingStatusActive)
	if err != nil {
		return nil, nil, err
	}
	return headers, items, nil
}

func (r *SQL) ListForBranch(ctx context.Context, branchID uint64) ([]model.ListingHeader, []model.AvailableLineItem, error) {
	headers, err := r.queryHeaders(ctx, listBranchHeaders, branchID)
	if err != nil {
		return nil, nil, err
	}

	items, err := r.queryItems(ctx, listBranchItems, branchID)
	if err != nil {
		return nil, nil, err
	}
	return headers, items, nil
}

func (r *SQL) queryHeaders(ctx context.Context, query string, arg interface{}) ([]model.ListingHeader, error) {
	rows, err := r.conn.QueryxContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	headers := make([]model.ListingHeader, 0)
	for rows.Next() {
		var h model.ListingHeader
		if err := rows.StructScan(&h); err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, rows.Err()
}

func (r *SQL) queryItems(ctx context.Context, query string, arg interface{}) ([]model.AvailableLineItem, error) {
	rows, err := r.conn.QueryxContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AvailableLineItem, 0)
	for rows.Next() {
		var it model.AvailableLineItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

package pickup

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/wastenot/wastenot/model"
)

type PickupRepository interface {
	InsertPickupTx(ctx context.Context, tx *sqlx.Tx, claimID uint64, qrCode string) (uint64, error)
	GetByClaimTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) (*model.PickupEntity, error)
	GetByTokenForUpdateTx(ctx context.Context, tx *sqlx.Tx, qrCode string) (*model.PickupLookup, error)
	MarkCompleteTx(ctx context.Context, tx *sqlx.Tx, pickupID uint64) error
	GetHandoverItemsTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) ([]model.HandoverItem, error)
	GetCharityNameTx(ctx context.Context, tx *sqlx.Tx, charityBranchID uint64) (string, error)
	GetStoreInfo(ctx context.Context, claimID uint64) (*model.StoreInfo, error)
	GetHandoverItems(ctx context.Context, claimID uint64) ([]model.HandoverItem, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewPickupRepository(conn *sqlx.DB) PickupRepository {
	return &SQL{conn: conn}
}

const (
	insertPickupQuery = `INSERT INTO pickup (claim_id, qr_code, complete, created_at) VALUES (?, ?, FALSE, NOW())`

	getPickupByClaimQuery = `SELECT id, claim_id, qr_code, complete, created_at FROM pickup WHERE claim_id = ?`

	// Locks the pickup row so a concurrent duplicate scan waits behind
	// this one and then fails the replay check.
	lockPickupByTokenQuery = `SELECT p.id as pickup_id, p.claim_id, c.status as claim_status, p.complete, c.branch_id as charity_branch_id,
(SELECT l.branch_id FROM claim_line_item cli
 JOIN listing_line_item lli ON lli.id = cli.line_item_id
 JOIN listing l ON l.id = lli.listing_id
 WHERE cli.claim_id = p.claim_id LIMIT 1) as store_branch_id
FROM pickup p
JOIN claim c ON c.id = p.claim_id
WHERE p.qr_code = ?
FOR UPDATE`

	handoverItemsQuery = `SELECT pr.name as product_name, cli.quantity
FROM claim_line_item cli
JOIN listing_line_item lli ON lli.id = cli.line_item_id
JOIN product pr ON pr.id = lli.product_id
WHERE cli.claim_id = ?
ORDER BY pr.name`

	charityNameQuery = `SELECT CONCAT(b.org_name, ' - ', b.branch_name) FROM branch b WHERE b.id = ?`

	storeInfoQuery = `SELECT b.org_name, b.branch_name, b.branch_location
FROM claim_line_item cli
JOIN listing_line_item lli ON lli.id = cli.line_item_id
JOIN listing l ON l.id = lli.listing_id
JOIN branch b ON b.id = l.branch_id
WHERE cli.claim_id = ?
LIMIT 1`
)

func (r *SQL) InsertPickupTx(ctx context.Context, tx *sqlx.Tx, claimID uint64, qrCode string) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertPickupQuery, claimID, qrCode)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByClaimTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) (*model.PickupEntity, error) {
	var entity model.PickupEntity
	if err := tx.QueryRowxContext(ctx, getPickupByClaimQuery, claimID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByTokenForUpdateTx(ctx context.Context, tx *sqlx.Tx, qrCode string) (*model.PickupLookup, error) {
	var lookup model.PickupLookup
	if err := tx.QueryRowxContext(ctx, lockPickupByTokenQuery, qrCode).StructScan(&lookup); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &lookup, nil
}

func (r *SQL) MarkCompleteTx(ctx context.Context, tx *sqlx.Tx, pickupID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE pickup SET complete = TRUE WHERE id = ?", pickupID)
	return err
}

func (r *SQL) GetHandoverItemsTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) ([]model.HandoverItem, error) {
	return scanHandoverItems(tx.QueryxContext(ctx, handoverItemsQuery, claimID))
}

func (r *SQL) GetHandoverItems(ctx context.Context, claimID uint64) ([]model.HandoverItem, error) {
	return scanHandoverItems(r.conn.QueryxContext(ctx, handoverItemsQuery, claimID))
}

func (r *SQL) GetCharityNameTx(ctx context.Context, tx *sqlx.Tx, charityBranchID uint64) (string, error) {
	var name string
	if err := tx.GetContext(ctx, &name, charityNameQuery, charityBranchID); err != nil {
		if err == sql.ErrNoRows {
			return "Unknown", nil
		}
		return "", err
	}
	return name, nil
}

func (r *SQL) GetStoreInfo(ctx context.Context, claimID uint64) (*model.StoreInfo, error) {
	var info model.StoreInfo
	if err := r.conn.QueryRowxContext(ctx, storeInfoQuery, claimID).StructScan(&info); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

func scanHandoverItems(rows *sqlx.Rows, err error) ([]model.HandoverItem, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.HandoverItem, 0)
	for rows.Next() {
		var it model.HandoverItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

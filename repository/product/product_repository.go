package product

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/wastenot/wastenot/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	ListByBranch(ctx context.Context, branchID uint64) ([]model.BranchProduct, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const listByBranchQuery = `SELECT id, branch_id, name FROM product WHERE branch_id = ? ORDER BY name`

func (s *SQL) ListByBranch(ctx context.Context, branchID uint64) ([]model.BranchProduct, error) {
	rows, err := s.conn.QueryxContext(ctx, listByBranchQuery, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BranchProduct, 0)
	for rows.Next() {
		var it model.BranchProduct
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/wastenot/wastenot/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	AddBranchMembership(ctx context.Context, userID, branchID uint64) error
	GetBranchMembership(ctx context.Context, userID uint64) (*model.BranchMembership, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO app_user (name, email, password_hash, created_at) VALUES (?, ?, ?, NOW())`
	getUserBase     = `SELECT id, name, email, password_hash, created_at, updated_at FROM app_user WHERE true`

	insertMembershipQuery = `INSERT INTO user_branch (user_id, branch_id) VALUES (?, ?)`

	getMembershipQuery = `SELECT ub.user_id, ub.branch_id, b.branch_type, b.org_name, b.branch_name
FROM user_branch ub
JOIN branch b ON b.id = ub.branch_id
WHERE ub.user_id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) AddBranchMembership(ctx context.Context, userID, branchID uint64) error {
	_, err := s.conn.ExecContext(ctx, insertMembershipQuery, userID, branchID)
	return err
}

func (s *SQL) GetBranchMembership(ctx context.Context, userID uint64) (*model.BranchMembership, error) {
	var membership model.BranchMembership
	if err := s.conn.QueryRowxContext(ctx, getMembershipQuery, userID).StructScan(&membership); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

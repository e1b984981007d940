package model

import (
	"time"

	"github.com/wastenot/wastenot/constant"
)

// UserEntity represents the app_user table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// BranchMembership joins a user to the branch they act for
type BranchMembership struct {
	UserID     uint64              `db:"user_id"`
	BranchID   uint64              `db:"branch_id"`
	BranchType constant.BranchType `db:"branch_type"`
	OrgName    string              `db:"org_name"`
	BranchName string              `db:"branch_name"`
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	BranchID uint64 `json:"branch_id" validate:"required"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	BranchID   uint64              `json:"branch_id"`
	BranchType constant.BranchType `json:"branch_type"`
	Token      string              `json:"token"`
}

type RegisterResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	BranchID uint64 `json:"branch_id"`
}

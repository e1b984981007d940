package model

type BranchProduct struct {
	ID       uint64 `db:"id" json:"id"`
	BranchID uint64 `db:"branch_id" json:"branch_id"`
	Name     string `db:"name" json:"name"`
}

type BranchProductListResponse struct {
	Items []BranchProduct `json:"items"`
}

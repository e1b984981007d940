package constant

type ContextKey string

const (
	UserIDKey   ContextKey = "user_id"
	BranchIDKey ContextKey = "branch_id"
)

package constant

type ClaimStatus int

const (
	ClaimStatusPending   ClaimStatus = 1
	ClaimStatusApproved  ClaimStatus = 2
	ClaimStatusCompleted ClaimStatus = 3
	ClaimStatusRejected  ClaimStatus = 4
	ClaimStatusCanceled  ClaimStatus = 5
)

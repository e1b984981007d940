package constant

type ListingStatus int

const (
	ListingStatusActive    ListingStatus = 1
	ListingStatusCanceled  ListingStatus = 2
	ListingStatusExhausted ListingStatus = 3
)

type BranchType string

const (
	BranchTypeStore   BranchType = "store"
	BranchTypeCharity BranchType = "charity"
)

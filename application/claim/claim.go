package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/wastenot/wastenot/cmd/config"
	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
	claimrepo "github.com/wastenot/wastenot/repository/claim"
	listingrepo "github.com/wastenot/wastenot/repository/listing"
	pickuprepo "github.com/wastenot/wastenot/repository/pickup"
	redisrepo "github.com/wastenot/wastenot/repository/redis"
	txrepo "github.com/wastenot/wastenot/repository/tx"
	"github.com/wastenot/wastenot/thirdparty/rabbitmq"
	cerr "github.com/wastenot/wastenot/utils/errors"
	"github.com/wastenot/wastenot/utils/logger"
	"github.com/wastenot/wastenot/utils/qrcode"
	"go.uber.org/zap"
)

type ClaimApp interface {
	CreateClaim(ctx context.Context, req *model.CreateClaimRequest) (*model.CreateClaimResponse, error)
	ApproveClaim(ctx context.Context, req *model.ApproveClaimRequest) (*model.ApproveClaimResponse, error)
	CancelClaim(ctx context.Context, branchID, claimID uint64) error
	RejectClaim(ctx context.Context, branchID, claimID uint64) error
	ExpireClaim(ctx context.Context, claimID uint64) error
	ListPendingForBranch(ctx context.Context, storeBranchID uint64) ([]model.ClaimQueueGroup, error)
	ListApprovedAwaitingPickup(ctx context.Context, storeBranchID uint64) ([]model.ClaimQueueGroup, error)
	ListMyPickups(ctx context.Context, charityBranchID uint64) ([]model.AwaitingPickup, error)
}

type claimAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	claimRepo   claimrepo.ClaimRepository
	listingRepo listingrepo.ListingRepository
	pickupRepo  pickuprepo.PickupRepository
	redisRepo   redisrepo.Repository
	publisher   *rabbitmq.Publisher
}

func NewClaimApp(config *config.Config, txRepo txrepo.TxRepository, claimRepo claimrepo.ClaimRepository, listingRepo listingrepo.ListingRepository, pickupRepo pickuprepo.PickupRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) ClaimApp {
	return &claimAppImpl{
		config:      config,
		txRepo:      txRepo,
		claimRepo:   claimRepo,
		listingRepo: listingRepo,
		pickupRepo:  pickupRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
	}
}

// CreateClaim reserves every requested quantity inside one transaction.
// If any line item cannot cover its request the transaction rolls back,
// so a claim is all-or-nothing across its items.
func (s *claimAppImpl) CreateClaim(ctx context.Context, req *model.CreateClaimRequest) (*model.CreateClaimResponse, error) {
	anyPositive := false
	for _, item := range req.Items {
		if item.Quantity > 0 {
			anyPositive = true
			break
		}
	}
	if !anyPositive {
		return nil, cerr.SetCustomError(constant.ErrEmptyClaim)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateClaim] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// reserve each requested line item; the row lock serializes
	// competing claims on the same item
	for _, item := range req.Items {
		if err := s.listingRepo.ReserveLineItemTx(ctx, tx, item.LineItemID, item.Quantity); err != nil {
			var ce cerr.CustomError
			if errors.As(err, &ce) {
				return nil, cerr.SetCustomErrorDetail(ce.Type(), fmt.Sprintf("line item %d", item.LineItemID))
			}
			logger.Error("[CreateClaim] reserve line item", zap.Uint64("line_item_id", item.LineItemID), zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
	}

	// a claim must draw from a single store branch so approval and
	// pickup have one owner
	lineItemIDs := make([]uint64, 0, len(req.Items))
	for _, item := range req.Items {
		lineItemIDs = append(lineItemIDs, item.LineItemID)
	}
	branches, err := s.listingRepo.GetLineItemStoreBranchesTx(ctx, tx, lineItemIDs)
	if err != nil {
		logger.Error("[CreateClaim] resolve store branches", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if len(branches) != 1 {
		return nil, cerr.SetCustomErrorDetail(constant.ErrInvalidRequest, "claim spans multiple store branches")
	}

	// a reservation that drains the last quantity retires the listing
	if err := s.listingRepo.MarkExhaustedListingsTx(ctx, tx, lineItemIDs); err != nil {
		logger.Error("[CreateClaim] mark exhausted listings", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	expiresAt := time.Now().Add(s.config.Claim.ClaimExpiration)
	claimID, err := s.claimRepo.InsertClaimTx(ctx, tx, &model.InsertClaimTxItem{
		UserID:    req.UserID,
		BranchID:  req.BranchID,
		Status:    constant.ClaimStatusPending,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		logger.Error("[CreateClaim] insert claim", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.claimRepo.InsertClaimLineItemsTx(ctx, tx, claimID, req.Items); err != nil {
		logger.Error("[CreateClaim] insert claim items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateClaim] commit tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.redisRepo != nil {
		if err := s.redisRepo.InvalidateAvailableListings(ctx); err != nil {
			logger.Warn("[CreateClaim] invalidate listings cache", zap.String("error", err.Error()))
		}
	}

	if s.publisher != nil {
		msg := rabbitmq.ClaimExpirationMessage{
			ClaimID:   claimID,
			UserID:    req.UserID,
			ExpiresAt: expiresAt,
		}
		if err := s.publisher.PublishClaimExpiration(msg); err != nil {
			logger.Error("[CreateClaim] publish claim expiration", zap.String("error", err.Error()))
		}
	}

	return &model.CreateClaimResponse{
		ClaimID:   claimID,
		ExpiresAt: expiresAt,
	}, nil
}

// ApproveClaim moves a pending claim to approved and issues its pickup
// token in the same transaction. The transition is one-way.
func (s *claimAppImpl) ApproveClaim(ctx context.Context, req *model.ApproveClaimRequest) (*model.ApproveClaimResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ApproveClaim] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.claimRepo.GetClaimForUpdateTx(ctx, tx, req.ClaimID)
	if err != nil {
		logger.Error("[ApproveClaim] get claim", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	if detail.Status != constant.ClaimStatusPending {
		if detail.Status == constant.ClaimStatusApproved {
			return nil, cerr.SetCustomError(constant.ErrAlreadyApproved)
		}
		return nil, cerr.SetCustomError(constant.ErrNotPending)
	}

	// only the branch that owns the claimed listing may approve
	storeBranch, err := s.claimRepo.GetClaimStoreBranchTx(ctx, tx, req.ClaimID)
	if err != nil {
		logger.Error("[ApproveClaim] resolve store branch", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if storeBranch != req.BranchID {
		return nil, cerr.SetCustomError(constant.ErrBranchMismatch)
	}

	if err := s.claimRepo.ApproveClaimTx(ctx, tx, req.ClaimID, req.UserID); err != nil {
		logger.Error("[ApproveClaim] update claim", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	token, err := qrcode.GenerateToken()
	if err != nil {
		logger.Error("[ApproveClaim] generate token", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if _, err := s.pickupRepo.InsertPickupTx(ctx, tx, req.ClaimID, token); err != nil {
		logger.Error("[ApproveClaim] insert pickup", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ApproveClaim] commit tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.ApproveClaimResponse{
		ClaimID:    req.ClaimID,
		Status:     "approved",
		ApprovedAt: time.Now(),
	}, nil
}

// CancelClaim is the charity back-out; legal while pending or
// approved-but-not-picked-up, and only on the caller's own claim. It
// returns every reserved quantity to the ledger.
func (s *claimAppImpl) CancelClaim(ctx context.Context, branchID, claimID uint64) error {
	guard := func(tx *sqlx.Tx, detail *model.ClaimDetail) error {
		// a charity sees only its own claims
		if detail.BranchID != branchID {
			return cerr.SetCustomError(constant.ErrNotFound)
		}
		return nil
	}
	return s.terminate(ctx, claimID, constant.ClaimStatusCanceled, true, guard)
}

// RejectClaim is the staff-side refusal; legal only while pending, and
// only by the branch that owns the claimed listing.
func (s *claimAppImpl) RejectClaim(ctx context.Context, branchID, claimID uint64) error {
	guard := func(tx *sqlx.Tx, detail *model.ClaimDetail) error {
		storeBranch, err := s.claimRepo.GetClaimStoreBranchTx(ctx, tx, claimID)
		if err != nil {
			logger.Error("[RejectClaim] resolve store branch", zap.String("error", err.Error()))
			return cerr.SetCustomError(constant.ErrInternal)
		}
		if storeBranch != branchID {
			return cerr.SetCustomError(constant.ErrBranchMismatch)
		}
		return nil
	}
	return s.terminate(ctx, claimID, constant.ClaimStatusRejected, false, guard)
}

// ExpireClaim is the deadline path driven by the delayed-message
// consumer. A claim that was approved before its deadline fired is left
// alone; only a still-pending claim is cancelled.
func (s *claimAppImpl) ExpireClaim(ctx context.Context, claimID uint64) error {
	return s.terminate(ctx, claimID, constant.ClaimStatusCanceled, false, nil)
}

func (s *claimAppImpl) terminate(ctx context.Context, claimID uint64, target constant.ClaimStatus, allowApproved bool, guard func(tx *sqlx.Tx, detail *model.ClaimDetail) error) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[TerminateClaim] begin tx", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.claimRepo.GetClaimForUpdateTx(ctx, tx, claimID)
	if err != nil {
		logger.Error("[TerminateClaim] get claim", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return cerr.SetCustomError(constant.ErrNotFound)
	}

	switch detail.Status {
	case constant.ClaimStatusPending:
		// always legal
	case constant.ClaimStatusApproved:
		if !allowApproved {
			return cerr.SetCustomError(constant.ErrNotPending)
		}
	case constant.ClaimStatusCompleted:
		return cerr.SetCustomError(constant.ErrAlreadyComplete)
	default:
		return cerr.SetCustomError(constant.ErrNotPending)
	}

	if guard != nil {
		if err := guard(tx, detail); err != nil {
			return err
		}
	}

	items, err := s.claimRepo.GetClaimLineItemsTx(ctx, tx, claimID)
	if err != nil {
		logger.Error("[TerminateClaim] get claim items", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	// release is clamped in the ledger, so replays cannot push
	// remaining past listed
	for _, item := range items {
		if err := s.listingRepo.ReleaseLineItemTx(ctx, tx, item.LineItemID, item.Quantity); err != nil {
			logger.Error("[TerminateClaim] release line item", zap.Uint64("line_item_id", item.LineItemID), zap.String("error", err.Error()))
			return cerr.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.claimRepo.UpdateClaimStatusTx(ctx, tx, claimID, target); err != nil {
		logger.Error("[TerminateClaim] update status", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[TerminateClaim] commit tx", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.redisRepo != nil {
		if err := s.redisRepo.InvalidateAvailableListings(ctx); err != nil {
			logger.Warn("[TerminateClaim] invalidate listings cache", zap.String("error", err.Error()))
		}
	}

	return nil
}

func (s *claimAppImpl) ListPendingForBranch(ctx context.Context, storeBranchID uint64) ([]model.ClaimQueueGroup, error) {
	rows, err := s.claimRepo.ListPendingForBranch(ctx, storeBranchID)
	if err != nil {
		logger.Error("[ListPendingForBranch] query", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return s.buildQueueGroups(ctx, rows)
}

func (s *claimAppImpl) ListApprovedAwaitingPickup(ctx context.Context, storeBranchID uint64) ([]model.ClaimQueueGroup, error) {
	rows, err := s.claimRepo.ListApprovedAwaitingForBranch(ctx, storeBranchID)
	if err != nil {
		logger.Error("[ListApprovedAwaitingPickup] query", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return s.buildQueueGroups(ctx, rows)
}

// buildQueueGroups buckets queue rows by charity branch and recomputes
// the per-group aggregates.
func (s *claimAppImpl) buildQueueGroups(ctx context.Context, rows []model.ClaimQueueRow) ([]model.ClaimQueueGroup, error) {
	if len(rows) == 0 {
		return []model.ClaimQueueGroup{}, nil
	}

	claimIDs := make([]uint64, 0, len(rows))
	for _, row := range rows {
		claimIDs = append(claimIDs, row.ClaimID)
	}

	details, err := s.claimRepo.GetClaimedItemDetails(ctx, claimIDs)
	if err != nil {
		logger.Error("[BuildQueueGroups] get claim items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	itemsByClaim := make(map[uint64][]model.ClaimedItemDetail, len(rows))
	for _, d := range details {
		itemsByClaim[d.ClaimID] = append(itemsByClaim[d.ClaimID], d)
	}

	groups := make([]model.ClaimQueueGroup, 0)
	groupIndex := make(map[uint64]int)
	for _, row := range rows {
		items := itemsByClaim[row.ClaimID]
		var totalItems int64
		for _, it := range items {
			totalItems += it.Quantity
		}

		idx, ok := groupIndex[row.CharityBranchID]
		if !ok {
			groups = append(groups, model.ClaimQueueGroup{
				CharityBranchID: row.CharityBranchID,
				OrgName:         row.OrgName,
			})
			idx = len(groups) - 1
			groupIndex[row.CharityBranchID] = idx
		}

		groups[idx].Claims = append(groups[idx].Claims, model.QueuedClaim{
			ClaimID:    row.ClaimID,
			UserID:     row.UserID,
			UserEmail:  row.UserEmail,
			CreatedAt:  row.CreatedAt,
			ApprovedAt: row.ApprovedAt,
			Items:      items,
			TotalItems: totalItems,
		})
		groups[idx].ClaimCount++
		groups[idx].TotalItems += totalItems
	}

	return groups, nil
}

func (s *claimAppImpl) ListMyPickups(ctx context.Context, charityBranchID uint64) ([]model.AwaitingPickup, error) {
	rows, err := s.claimRepo.ListApprovedForCharityBranch(ctx, charityBranchID)
	if err != nil {
		logger.Error("[ListMyPickups] query", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if len(rows) == 0 {
		return []model.AwaitingPickup{}, nil
	}

	claimIDs := make([]uint64, 0, len(rows))
	for _, row := range rows {
		claimIDs = append(claimIDs, row.ClaimID)
	}
	details, err := s.claimRepo.GetClaimedItemDetails(ctx, claimIDs)
	if err != nil {
		logger.Error("[ListMyPickups] get claim items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	totals := make(map[uint64]int64, len(rows))
	for _, d := range details {
		totals[d.ClaimID] += d.Quantity
	}

	pickups := make([]model.AwaitingPickup, 0, len(rows))
	for _, row := range rows {
		pickups = append(pickups, model.AwaitingPickup{
			ClaimID:        row.ClaimID,
			Complete:       row.Complete,
			OrgName:        row.OrgName,
			BranchName:     row.BranchName,
			BranchLocation: row.BranchLocation,
			TotalItems:     totals[row.ClaimID],
			ApprovedAt:     row.ApprovedAt,
		})
	}
	return pickups, nil
}

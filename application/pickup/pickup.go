package pickup

import (
	"context"

	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
	claimrepo "github.com/wastenot/wastenot/repository/claim"
	pickuprepo "github.com/wastenot/wastenot/repository/pickup"
	txrepo "github.com/wastenot/wastenot/repository/tx"
	cerr "github.com/wastenot/wastenot/utils/errors"
	"github.com/wastenot/wastenot/utils/logger"
	"github.com/wastenot/wastenot/utils/qrcode"
	"go.uber.org/zap"
)

type PickupApp interface {
	IssueToken(ctx context.Context, claimID uint64) (*model.PickupEntity, error)
	Verify(ctx context.Context, req *model.VerifyPickupRequest) (*model.VerifyPickupResponse, error)
	GetQRData(ctx context.Context, requesterBranchID, claimID uint64) (*model.PickupPresentation, error)
}

type pickupAppImpl struct {
	txRepo     txrepo.TxRepository
	claimRepo  claimrepo.ClaimRepository
	pickupRepo pickuprepo.PickupRepository
}

func NewPickupApp(txRepo txrepo.TxRepository, claimRepo claimrepo.ClaimRepository, pickupRepo pickuprepo.PickupRepository) PickupApp {
	return &pickupAppImpl{
		txRepo:     txRepo,
		claimRepo:  claimRepo,
		pickupRepo: pickupRepo,
	}
}

// IssueToken returns the claim's pickup, creating it if approval did not
// already. Re-requesting for the same approved claim returns the
// existing row rather than minting a second token.
func (s *pickupAppImpl) IssueToken(ctx context.Context, claimID uint64) (*model.PickupEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[IssueToken] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.claimRepo.GetClaimForUpdateTx(ctx, tx, claimID)
	if err != nil {
		logger.Error("[IssueToken] get claim", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	if detail.Status != constant.ClaimStatusApproved {
		return nil, cerr.SetCustomError(constant.ErrNotApproved)
	}

	existing, err := s.pickupRepo.GetByClaimTx(ctx, tx, claimID)
	if err != nil {
		logger.Error("[IssueToken] get pickup", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		if err := s.txRepo.CommitTx(tx); err != nil {
			logger.Error("[IssueToken] commit tx", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
		committed = true
		return existing, nil
	}

	token, err := qrcode.GenerateToken()
	if err != nil {
		logger.Error("[IssueToken] generate token", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	pickupID, err := s.pickupRepo.InsertPickupTx(ctx, tx, claimID, token)
	if err != nil {
		logger.Error("[IssueToken] insert pickup", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[IssueToken] commit tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.PickupEntity{
		ID:      pickupID,
		ClaimID: claimID,
		QRCode:  token,
	}, nil
}

// Verify is the single authoritative record of the physical hand-over.
// The pickup row is locked by token, the replay check runs before the
// branch check, and the completion flags flip in one transaction.
func (s *pickupAppImpl) Verify(ctx context.Context, req *model.VerifyPickupRequest) (*model.VerifyPickupResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[VerifyPickup] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	lookup, err := s.pickupRepo.GetByTokenForUpdateTx(ctx, tx, req.QRCode)
	if err != nil {
		logger.Error("[VerifyPickup] get by token", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if lookup == nil {
		return nil, cerr.SetCustomError(constant.ErrTokenNotFound)
	}

	// Cancellation after approval invalidates the issued token.
	if lookup.ClaimStatus == constant.ClaimStatusCanceled {
		return nil, cerr.SetCustomError(constant.ErrTokenNotFound)
	}

	if lookup.Complete {
		return nil, cerr.SetCustomError(constant.ErrAlreadyComplete)
	}

	if lookup.StoreBranch != req.BranchID {
		return nil, cerr.SetCustomError(constant.ErrBranchMismatch)
	}

	items, err := s.pickupRepo.GetHandoverItemsTx(ctx, tx, lookup.ClaimID)
	if err != nil {
		logger.Error("[VerifyPickup] get items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if len(items) == 0 {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	charityName, err := s.pickupRepo.GetCharityNameTx(ctx, tx, lookup.CharityBranch)
	if err != nil {
		logger.Error("[VerifyPickup] get charity name", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.pickupRepo.MarkCompleteTx(ctx, tx, lookup.PickupID); err != nil {
		logger.Error("[VerifyPickup] mark complete", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.claimRepo.UpdateClaimStatusTx(ctx, tx, lookup.ClaimID, constant.ClaimStatusCompleted); err != nil {
		logger.Error("[VerifyPickup] update claim status", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[VerifyPickup] commit tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.VerifyPickupResponse{
		PickupID:    lookup.PickupID,
		ClaimID:     lookup.ClaimID,
		CharityName: charityName,
		Items:       items,
	}, nil
}

// GetQRData is the charity-side projection: the pickup row, its token
// rendered as a QR image, and the store details for the handover.
// NotFound and NotApproved stay distinct so the client can show
// "waiting for approval" instead of "unknown claim".
func (s *pickupAppImpl) GetQRData(ctx context.Context, requesterBranchID, claimID uint64) (*model.PickupPresentation, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[GetQRData] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	// read-only transaction; nothing to commit
	defer func() {
		_ = s.txRepo.RollbackTx(tx)
	}()

	detail, err := s.claimRepo.GetClaimForUpdateTx(ctx, tx, claimID)
	if err != nil {
		logger.Error("[GetQRData] get claim", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if detail == nil || detail.BranchID != requesterBranchID {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	if detail.Status == constant.ClaimStatusPending {
		return nil, cerr.SetCustomError(constant.ErrNotApproved)
	}
	if detail.Status == constant.ClaimStatusCanceled || detail.Status == constant.ClaimStatusRejected {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	pickup, err := s.pickupRepo.GetByClaimTx(ctx, tx, claimID)
	if err != nil {
		logger.Error("[GetQRData] get pickup", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if pickup == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	image, err := qrcode.GenerateImage(pickup.QRCode)
	if err != nil {
		logger.Error("[GetQRData] render qr", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	items, err := s.pickupRepo.GetHandoverItems(ctx, claimID)
	if err != nil {
		logger.Error("[GetQRData] get items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	info, err := s.pickupRepo.GetStoreInfo(ctx, claimID)
	if err != nil {
		logger.Error("[GetQRData] get store info", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	presentation := &model.PickupPresentation{
		PickupID:    pickup.ID,
		ClaimID:     claimID,
		QRCode:      pickup.QRCode,
		QRCodeImage: image,
		Complete:    pickup.Complete,
		CreatedAt:   pickup.CreatedAt,
		Items:       items,
	}
	if info != nil {
		presentation.StoreInfo = *info
	}
	return presentation, nil
}

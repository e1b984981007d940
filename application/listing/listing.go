package listing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
	listingrepo "github.com/wastenot/wastenot/repository/listing"
	redisrepo "github.com/wastenot/wastenot/repository/redis"
	txrepo "github.com/wastenot/wastenot/repository/tx"
	cerr "github.com/wastenot/wastenot/utils/errors"
	"github.com/wastenot/wastenot/utils/logger"
	"go.uber.org/zap"
)

const availableCacheTTL = 30 * time.Second

type ListingApp interface {
	CreateListing(ctx context.Context, req *model.CreateListingRequest) (*model.CreateListingResponse, error)
	ListAvailable(ctx context.Context) ([]model.AvailableListing, error)
	ListForBranch(ctx context.Context, branchID uint64) ([]model.AvailableListing, error)
	UpdateListingItems(ctx context.Context, req *model.UpdateListingRequest) (*model.UpdateListingResponse, error)
	CancelListing(ctx context.Context, req *model.CancelListingRequest) (*model.CancelListingResponse, error)
}

type listingAppImpl struct {
	txRepo      txrepo.TxRepository
	listingRepo listingrepo.ListingRepository
	redisRepo   redisrepo.Repository
}

func NewListingApp(txRepo txrepo.TxRepository, listingRepo listingrepo.ListingRepository, redisRepo redisrepo.Repository) ListingApp {
	return &listingAppImpl{
		txRepo:      txRepo,
		listingRepo: listingRepo,
		redisRepo:   redisRepo,
	}
}

func (s *listingAppImpl) CreateListing(ctx context.Context, req *model.CreateListingRequest) (*model.CreateListingResponse, error) {
	if len(req.Items) == 0 {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}
	seen := make(map[uint64]bool, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
		}
		// one line item per product per listing
		if seen[item.ProductID] {
			return nil, cerr.SetCustomErrorDetail(constant.ErrInvalidRequest, "duplicate product in listing")
		}
		seen[item.ProductID] = true
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateListing] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	listingID, err := s.listingRepo.InsertListingTx(ctx, tx, req.BranchID)
	if err != nil {
		logger.Error("[CreateListing] insert listing", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.listingRepo.InsertLineItemsTx(ctx, tx, listingID, req.Items); err != nil {
		logger.Error("[CreateListing] insert line items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateListing] commit tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)

	return &model.CreateListingResponse{ListingID: listingID}, nil
}

// ListAvailable is the public browse feed. It is served from a short
// TTL cache because it is the hottest read and tolerates slight
// staleness; every mutation invalidates it.
func (s *listingAppImpl) ListAvailable(ctx context.Context) ([]model.AvailableListing, error) {
	if s.redisRepo != nil {
		if cached, err := s.redisRepo.GetAvailableListings(ctx); err == nil && cached != "" {
			var listings []model.AvailableListing
			if err := json.Unmarshal([]byte(cached), &listings); err == nil {
				return listings, nil
			}
		}
	}

	headers, items, err := s.listingRepo.ListAvailable(ctx)
	if err != nil {
		logger.Error("[ListAvailable] query", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	listings := groupListings(headers, items)

	if s.redisRepo != nil {
		if payload, err := json.Marshal(listings); err == nil {
			if err := s.redisRepo.SetAvailableListings(ctx, string(payload), availableCacheTTL); err != nil {
				logger.Warn("[ListAvailable] cache set", zap.String("error", err.Error()))
			}
		}
	}

	return listings, nil
}

func (s *listingAppImpl) ListForBranch(ctx context.Context, branchID uint64) ([]model.AvailableListing, error) {
	headers, items, err := s.listingRepo.ListForBranch(ctx, branchID)
	if err != nil {
		logger.Error("[ListForBranch] query", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return groupListings(headers, items), nil
}

// UpdateListingItems lets staff overwrite remaining quantities. The
// listing row is locked first so edits do not interleave with claims.
func (s *listingAppImpl) UpdateListingItems(ctx context.Context, req *model.UpdateListingRequest) (*model.UpdateListingResponse, error) {
	for _, item := range req.Items {
		if item.Quantity < 0 {
			return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateListingItems] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.listingRepo.GetListingForUpdateTx(ctx, tx, req.ListingID, req.BranchID)
	if err != nil {
		logger.Error("[UpdateListingItems] get listing", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	var updated int64
	for _, item := range req.Items {
		n, err := s.listingRepo.SetLineItemRemainingTx(ctx, tx, req.ListingID, item.LineItemID, item.Quantity)
		if err != nil {
			logger.Error("[UpdateListingItems] set remaining", zap.Uint64("line_item_id", item.LineItemID), zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
		updated += n
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateListingItems] commit tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)

	return &model.UpdateListingResponse{UpdatedCount: updated}, nil
}

// CancelListing zeroes every line item. Quantities already reserved by
// claims were decremented at claim time and stay with those claims, so
// nothing is double-subtracted. Idempotent.
func (s *listingAppImpl) CancelListing(ctx context.Context, req *model.CancelListingRequest) (*model.CancelListingResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelListing] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.listingRepo.GetListingForUpdateTx(ctx, tx, req.ListingID, req.BranchID)
	if err != nil {
		logger.Error("[CancelListing] get listing", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	zeroed, err := s.listingRepo.ZeroListingItemsTx(ctx, tx, req.ListingID)
	if err != nil {
		logger.Error("[CancelListing] zero items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.listingRepo.UpdateListingStatusTx(ctx, tx, req.ListingID, constant.ListingStatusCanceled); err != nil {
		logger.Error("[CancelListing] update status", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelListing] commit tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)

	return &model.CancelListingResponse{ListingID: req.ListingID, ZeroedCount: zeroed}, nil
}

func (s *listingAppImpl) invalidateCache(ctx context.Context) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.InvalidateAvailableListings(ctx); err != nil {
		logger.Warn("[Listing] invalidate listings cache", zap.String("error", err.Error()))
	}
}

func groupListings(headers []model.ListingHeader, items []model.AvailableLineItem) []model.AvailableListing {
	itemsByListing := make(map[uint64][]model.AvailableLineItem, len(headers))
	for _, it := range items {
		itemsByListing[it.ListingID] = append(itemsByListing[it.ListingID], it)
	}

	listings := make([]model.AvailableListing, 0, len(headers))
	for _, h := range headers {
		grouped := itemsByListing[h.ListingID]
		if len(grouped) == 0 {
			continue
		}
		listings = append(listings, model.AvailableListing{
			ListingID:  h.ListingID,
			OrgName:    h.OrgName,
			BranchName: h.BranchName,
			Items:      grouped,
		})
	}
	return listings
}

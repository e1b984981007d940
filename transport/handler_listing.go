package transport

import (
	"encoding/json"
	"net/http"

	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
	utilsContext "github.com/wastenot/wastenot/utils/context"
	"github.com/wastenot/wastenot/utils/errors"
	validatorx "github.com/wastenot/wastenot/utils/validator"
)

// CreateListing handler
// @Summary Create surplus listing
// @Description Publish a batch of surplus line items for the caller's store branch
// @Tags Listing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateListingRequest true "Create Listing Request"
// @Success 200 {object} model.CreateListingResponse
// @Failure 400 {object} errors.CustomError
// @Router /listing [post]
func (s *RestHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.BranchID = branchID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.CreateListing(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListAvailableListings handler
// @Summary List available listings
// @Description All active listings with remaining stock, grouped by store branch
// @Tags Listing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AvailableListing
// @Router /listings [get]
func (s *RestHandler) ListAvailableListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ListingApp.ListAvailable(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListBranchListings handler
// @Summary List the caller branch's listings
// @Description Listings published by the caller's store branch, including exhausted ones
// @Tags Listing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AvailableListing
// @Router /branch/listings [get]
func (s *RestHandler) ListBranchListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ListingApp.ListForBranch(ctx, branchID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateListingItems handler
// @Summary Update listing quantities
// @Description Adjust remaining quantities on a listing owned by the caller's branch
// @Tags Listing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateListingRequest true "Update Listing Request"
// @Success 200 {object} model.UpdateListingResponse
// @Failure 400 {object} errors.CustomError
// @Router /listing/items [patch]
func (s *RestHandler) UpdateListingItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.BranchID = branchID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.UpdateListingItems(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelListing handler
// @Summary Cancel listing
// @Description Zero out unclaimed stock on a listing and mark it canceled
// @Tags Listing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CancelListingRequest true "Cancel Listing Request"
// @Success 200 {object} model.CancelListingResponse
// @Failure 400 {object} errors.CustomError
// @Router /listing/cancel [post]
func (s *RestHandler) CancelListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CancelListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.BranchID = branchID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.CancelListing(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

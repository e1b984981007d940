package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
	utilsContext "github.com/wastenot/wastenot/utils/context"
	"github.com/wastenot/wastenot/utils/errors"
	validatorx "github.com/wastenot/wastenot/utils/validator"
)

func claimIDFromPath(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["claim_id"]
	claimID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || claimID == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return claimID, nil
}

// CreateClaim handler
// @Summary Create claim
// @Description Reserve quantities across line items atomically and open a pending claim
// @Tags Claim
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateClaimRequest true "Create Claim Request"
// @Success 200 {object} model.CreateClaimResponse
// @Failure 400 {object} errors.CustomError
// @Router /claims [post]
func (s *RestHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.UserID = userID
	req.BranchID = branchID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ClaimApp.CreateClaim(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListPendingClaims handler
// @Summary List pending claims
// @Description Pending claims on the caller's store branch, grouped by charity branch
// @Tags Claim
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ClaimQueueGroup
// @Router /claims/pending [get]
func (s *RestHandler) ListPendingClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ClaimApp.ListPendingForBranch(ctx, branchID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListApprovedAwaitingPickup handler
// @Summary List approved claims awaiting pickup
// @Description Approved claims on the caller's store branch that have not been handed over
// @Tags Claim
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ClaimQueueGroup
// @Router /claims/awaiting-pickup [get]
func (s *RestHandler) ListApprovedAwaitingPickup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ClaimApp.ListApprovedAwaitingPickup(ctx, branchID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ApproveClaim handler
// @Summary Approve claim
// @Description Approve a pending claim on the caller's store branch and issue its pickup token
// @Tags Claim
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ApproveClaimRequest true "Approve Claim Request"
// @Success 200 {object} model.ApproveClaimResponse
// @Failure 400 {object} errors.CustomError
// @Router /claims/approve [post]
func (s *RestHandler) ApproveClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ApproveClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.UserID = userID
	req.BranchID = branchID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ClaimApp.ApproveClaim(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelClaim handler
// @Summary Cancel claim
// @Description Cancel a pending or approved claim and release its reserved quantities
// @Tags Claim
// @Produce json
// @Security BearerAuth
// @Param claim_id path int true "Claim ID"
// @Success 200 {object} transport.apiResponse
// @Failure 400 {object} errors.CustomError
// @Router /claims/{claim_id}/cancel [post]
func (s *RestHandler) CancelClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	claimID, err := claimIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ClaimApp.CancelClaim(ctx, branchID, claimID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// RejectClaim handler
// @Summary Reject claim
// @Description Reject a pending claim on the caller's store branch and release its quantities
// @Tags Claim
// @Produce json
// @Security BearerAuth
// @Param claim_id path int true "Claim ID"
// @Success 200 {object} transport.apiResponse
// @Failure 400 {object} errors.CustomError
// @Router /claims/{claim_id}/reject [post]
func (s *RestHandler) RejectClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	claimID, err := claimIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ClaimApp.RejectClaim(ctx, branchID, claimID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// InternalCancelClaim handler
// @Summary Cancel expired claim
// @Description Service endpoint used by the expiration consumer to cancel a claim still pending at its deadline
// @Tags Internal
// @Produce json
// @Param claim_id path int true "Claim ID"
// @Success 200 {object} transport.apiResponse
// @Failure 401 {object} errors.CustomError
// @Router /internal/v1/claim/{claim_id}/cancel [post]
func (s *RestHandler) InternalCancelClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claimID, err := claimIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ClaimApp.ExpireClaim(ctx, claimID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

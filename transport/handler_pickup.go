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

// ListMyPickups handler
// @Summary List approved claims for pickup
// @Description Approved claims raised by the caller's charity branch, with handover state
// @Tags Pickup
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AwaitingPickup
// @Router /pickups [get]
func (s *RestHandler) ListMyPickups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ClaimApp.ListMyPickups(ctx, branchID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// IssuePickupToken handler
// @Summary Issue pickup token
// @Description Return the pickup token for an approved claim, creating it if missing
// @Tags Pickup
// @Produce json
// @Security BearerAuth
// @Param claim_id path int true "Claim ID"
// @Success 200 {object} model.PickupEntity
// @Failure 400 {object} errors.CustomError
// @Router /pickup/{claim_id}/token [post]
func (s *RestHandler) IssuePickupToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claimID, err := claimIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PickupApp.IssueToken(ctx, claimID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetPickupQR handler
// @Summary Get pickup QR
// @Description QR image and handover summary for an approved claim owned by the caller's branch
// @Tags Pickup
// @Produce json
// @Security BearerAuth
// @Param claim_id path int true "Claim ID"
// @Success 200 {object} model.PickupPresentation
// @Failure 404 {object} errors.CustomError
// @Router /pickup/qr/{claim_id} [get]
func (s *RestHandler) GetPickupQR(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.PickupApp.GetQRData(ctx, branchID, claimID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyPickup handler
// @Summary Verify pickup token
// @Description Verify a scanned pickup token at the caller's store branch and complete the handover
// @Tags Pickup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.VerifyPickupRequest true "Verify Pickup Request"
// @Success 200 {object} model.VerifyPickupResponse
// @Failure 400 {object} errors.CustomError
// @Router /pickup/verify [post]
func (s *RestHandler) VerifyPickup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.VerifyPickupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.BranchID = branchID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PickupApp.Verify(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

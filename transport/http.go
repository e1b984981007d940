package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	claimapp "github.com/wastenot/wastenot/application/claim"
	listingapp "github.com/wastenot/wastenot/application/listing"
	pickupapp "github.com/wastenot/wastenot/application/pickup"
	productapp "github.com/wastenot/wastenot/application/product"
	userapp "github.com/wastenot/wastenot/application/user"
	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
	utilsContext "github.com/wastenot/wastenot/utils/context"
	"github.com/wastenot/wastenot/utils/errors"
	validatorx "github.com/wastenot/wastenot/utils/validator"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	ProductApp productapp.ProductApp
	ListingApp listingapp.ListingApp
	ClaimApp   claimapp.ClaimApp
	PickupApp  pickupapp.PickupApp
}

func NewTransport(userApp userapp.UserApp, productApp productapp.ProductApp, listingApp listingapp.ListingApp, claimApp claimapp.ClaimApp, pickupApp pickupapp.PickupApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    userApp,
		ProductApp: productApp,
		ListingApp: listingApp,
		ClaimApp:   claimApp,
		PickupApp:  pickupApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Store staff routes
	router.HandleFunc("/products", rh.ListBranchProducts).Methods(http.MethodGet)
	router.HandleFunc("/listing", rh.CreateListing).Methods(http.MethodPost)
	router.HandleFunc("/branch/listings", rh.ListBranchListings).Methods(http.MethodGet)
	router.HandleFunc("/listing/items", rh.UpdateListingItems).Methods(http.MethodPatch)
	router.HandleFunc("/listing/cancel", rh.CancelListing).Methods(http.MethodPost)
	router.HandleFunc("/claims/pending", rh.ListPendingClaims).Methods(http.MethodGet)
	router.HandleFunc("/claims/awaiting-pickup", rh.ListApprovedAwaitingPickup).Methods(http.MethodGet)
	router.HandleFunc("/claims/approve", rh.ApproveClaim).Methods(http.MethodPost)
	router.HandleFunc("/claims/{claim_id}/reject", rh.RejectClaim).Methods(http.MethodPost)
	router.HandleFunc("/pickup/verify", rh.VerifyPickup).Methods(http.MethodPost)

	// Charity routes
	router.HandleFunc("/listings", rh.ListAvailableListings).Methods(http.MethodGet)
	router.HandleFunc("/claims", rh.CreateClaim).Methods(http.MethodPost)
	router.HandleFunc("/claims/{claim_id}/cancel", rh.CancelClaim).Methods(http.MethodPost)
	router.HandleFunc("/pickups", rh.ListMyPickups).Methods(http.MethodGet)
	router.HandleFunc("/pickup/{claim_id}/token", rh.IssuePickupToken).Methods(http.MethodPost)
	router.HandleFunc("/pickup/qr/{claim_id}", rh.GetPickupQR).Methods(http.MethodGet)

	// Internal routes (service-to-service, API key)
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/claim/{claim_id}/cancel", rh.InternalCancelClaim).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(userApp))

	return router
}

// Register handler
// @Summary Register user
// @Description Register a new user tied to a store or charity branch
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and receive JWT token plus branch context
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListBranchProducts handler
// @Summary List branch products
// @Description Catalog of products for the caller's branch, for the listing form
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BranchProductListResponse
// @Router /products [get]
func (s *RestHandler) ListBranchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	branchID, ok := utilsContext.GetBranchID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ProductApp.ListBranchProducts(ctx, branchID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

package claim_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appclaim "github.com/wastenot/wastenot/application/claim"
	"github.com/wastenot/wastenot/cmd/config"
	"github.com/wastenot/wastenot/constant"
	claimmocks "github.com/wastenot/wastenot/mocks/repository/claim"
	listingmocks "github.com/wastenot/wastenot/mocks/repository/listing"
	pickupmocks "github.com/wastenot/wastenot/mocks/repository/pickup"
	redismocks "github.com/wastenot/wastenot/mocks/repository/redis"
	txmocks "github.com/wastenot/wastenot/mocks/repository/tx"
	"github.com/wastenot/wastenot/model"
	cerr "github.com/wastenot/wastenot/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Note: claim.go checks if publisher is nil before publishing expiration
// messages, so tests can pass a nil publisher without panicking

func TestClaimApp_CreateClaim(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		claimRepo   *claimmocks.ClaimRepository
		listingRepo *listingmocks.ListingRepository
		pickupRepo  *pickupmocks.PickupRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.CreateClaimRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.CreateClaimResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: claim with two line items",
			fields: fields{
				config: &config.Config{
					Claim: config.ClaimConfig{
						ClaimExpiration: 30 * time.Minute,
					},
				},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateClaimRequest{
					UserID:   1,
					BranchID: 10,
					Items: []model.ClaimItemRequest{
						{LineItemID: 5, Quantity: 3},
						{LineItemID: 6, Quantity: 2},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.listingRepo.On("ReserveLineItemTx", mock.Anything, tx, uint64(5), int64(3)).Return(nil).Once()
				f.listingRepo.On("ReserveLineItemTx", mock.Anything, tx, uint64(6), int64(2)).Return(nil).Once()
				f.listingRepo.On("GetLineItemStoreBranchesTx", mock.Anything, tx, []uint64{5, 6}).Return([]uint64{2}, nil).Once()
				f.listingRepo.On("MarkExhaustedListingsTx", mock.Anything, tx, []uint64{5, 6}).Return(nil).Once()

				f.claimRepo.On("InsertClaimTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertClaimTxItem) bool {
					return req.UserID == 1 && req.BranchID == 10 && req.Status == constant.ClaimStatusPending
				})).Return(uint64(7), nil).Once()

				f.claimRepo.On("InsertClaimLineItemsTx", mock.Anything, tx, uint64(7), []model.ClaimItemRequest{
					{LineItemID: 5, Quantity: 3},
					{LineItemID: 6, Quantity: 2},
				}).Return(nil).Once()

				f.redisRepo.On("InvalidateAvailableListings", mock.Anything).Return(nil).Once()
			},
			want: &model.CreateClaimResponse{
				ClaimID: 7,
			},
			wantErr: false,
		},
		{
			name: "error: no positive quantities",
			fields: fields{
				config: &config.Config{
					Claim: config.ClaimConfig{
						ClaimExpiration: 30 * time.Minute,
					},
				},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateClaimRequest{
					UserID:   1,
					BranchID: 10,
					Items: []model.ClaimItemRequest{
						{LineItemID: 5, Quantity: 0},
					},
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrEmptyClaim,
		},
		{
			name: "error: mixed zero and positive quantities",
			fields: fields{
				config: &config.Config{
					Claim: config.ClaimConfig{
						ClaimExpiration: 30 * time.Minute,
					},
				},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateClaimRequest{
					UserID:   1,
					BranchID: 10,
					Items: []model.ClaimItemRequest{
						{LineItemID: 5, Quantity: 3},
						{LineItemID: 6, Quantity: 0},
					},
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: insufficient quantity rolls back earlier reservations",
			fields: fields{
				config: &config.Config{
					Claim: config.ClaimConfig{
						ClaimExpiration: 30 * time.Minute,
					},
				},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateClaimRequest{
					UserID:   1,
					BranchID: 10,
					Items: []model.ClaimItemRequest{
						{LineItemID: 5, Quantity: 3},
						{LineItemID: 6, Quantity: 100},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.listingRepo.On("ReserveLineItemTx", mock.Anything, tx, uint64(5), int64(3)).Return(nil).Once()

				insufficientErr := cerr.SetCustomError(constant.ErrInsufficientQuantity)
				f.listingRepo.On("ReserveLineItemTx", mock.Anything, tx, uint64(6), int64(100)).Return(insufficientErr).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInsufficientQuantity,
		},
		{
			name: "error: unknown line item",
			fields: fields{
				config: &config.Config{
					Claim: config.ClaimConfig{
						ClaimExpiration: 30 * time.Minute,
					},
				},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateClaimRequest{
					UserID:   1,
					BranchID: 10,
					Items: []model.ClaimItemRequest{
						{LineItemID: 999, Quantity: 1},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				unknownErr := cerr.SetCustomError(constant.ErrUnknownLineItem)
				f.listingRepo.On("ReserveLineItemTx", mock.Anything, tx, uint64(999), int64(1)).Return(unknownErr).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUnknownLineItem,
		},
		{
			name: "error: claim spans multiple store branches",
			fields: fields{
				config: &config.Config{
					Claim: config.ClaimConfig{
						ClaimExpiration: 30 * time.Minute,
					},
				},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateClaimRequest{
					UserID:   1,
					BranchID: 10,
					Items: []model.ClaimItemRequest{
						{LineItemID: 5, Quantity: 1},
						{LineItemID: 6, Quantity: 1},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.listingRepo.On("ReserveLineItemTx", mock.Anything, tx, uint64(5), int64(1)).Return(nil).Once()
				f.listingRepo.On("ReserveLineItemTx", mock.Anything, tx, uint64(6), int64(1)).Return(nil).Once()
				f.listingRepo.On("GetLineItemStoreBranchesTx", mock.Anything, tx, []uint64{5, 6}).Return([]uint64{2, 3}, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				config: &config.Config{
					Claim: config.ClaimConfig{
						ClaimExpiration: 30 * time.Minute,
					},
				},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateClaimRequest{
					UserID:   1,
					BranchID: 10,
					Items: []model.ClaimItemRequest{
						{LineItemID: 5, Quantity: 1},
					},
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appclaim.NewClaimApp(tt.fields.config, tt.fields.txRepo, tt.fields.claimRepo, tt.fields.listingRepo, tt.fields.pickupRepo, tt.fields.redisRepo, nil)

			got, err := app.CreateClaim(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateClaim() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ClaimID != tt.want.ClaimID {
				t.Fatalf("CreateClaim() ClaimID = %v, want %v", got.ClaimID, tt.want.ClaimID)
			}
			if got.ExpiresAt.IsZero() {
				t.Fatal("CreateClaim() ExpiresAt should not be zero")
			}
		})
	}
}

func TestClaimApp_ApproveClaim(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		claimRepo   *claimmocks.ClaimRepository
		listingRepo *listingmocks.ListingRepository
		pickupRepo  *pickupmocks.PickupRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.ApproveClaimRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: approve pending claim issues pickup token",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApproveClaimRequest{BranchID: 2, UserID: 9, ClaimID: 7},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:       7,
					UserID:   1,
					BranchID: 10,
					Status:   constant.ClaimStatusPending,
				}, nil).Once()

				f.claimRepo.On("GetClaimStoreBranchTx", mock.Anything, tx, uint64(7)).Return(uint64(2), nil).Once()
				f.claimRepo.On("ApproveClaimTx", mock.Anything, tx, uint64(7), uint64(9)).Return(nil).Once()

				f.pickupRepo.On("InsertPickupTx", mock.Anything, tx, uint64(7), mock.MatchedBy(func(token string) bool {
					return strings.HasPrefix(token, "WN") && len(token) > 2
				})).Return(uint64(3), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: claim not found",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApproveClaimRequest{BranchID: 2, UserID: 9, ClaimID: 999},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: already approved",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApproveClaimRequest{BranchID: 2, UserID: 9, ClaimID: 7},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:     7,
					Status: constant.ClaimStatusApproved,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyApproved,
		},
		{
			name: "error: canceled claim is not pending",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApproveClaimRequest{BranchID: 2, UserID: 9, ClaimID: 7},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:     7,
					Status: constant.ClaimStatusCanceled,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotPending,
		},
		{
			name: "error: claim belongs to another store branch",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApproveClaimRequest{BranchID: 4, UserID: 9, ClaimID: 7},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:     7,
					Status: constant.ClaimStatusPending,
				}, nil).Once()

				f.claimRepo.On("GetClaimStoreBranchTx", mock.Anything, tx, uint64(7)).Return(uint64(2), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrBranchMismatch,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appclaim.NewClaimApp(tt.fields.config, tt.fields.txRepo, tt.fields.claimRepo, tt.fields.listingRepo, tt.fields.pickupRepo, tt.fields.redisRepo, nil)

			got, err := app.ApproveClaim(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApproveClaim() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Status != "approved" {
				t.Fatalf("ApproveClaim() Status = %v, want approved", got.Status)
			}
			if got.ApprovedAt.IsZero() {
				t.Fatal("ApproveClaim() ApprovedAt should not be zero")
			}
		})
	}
}

func TestClaimApp_CancelClaim(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		claimRepo   *claimmocks.ClaimRepository
		listingRepo *listingmocks.ListingRepository
		pickupRepo  *pickupmocks.PickupRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx      context.Context
		branchID uint64
		claimID  uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: cancel pending claim releases reservations",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 10,
				claimID:  7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:       7,
					BranchID: 10,
					Status:   constant.ClaimStatusPending,
				}, nil).Once()

				f.claimRepo.On("GetClaimLineItemsTx", mock.Anything, tx, uint64(7)).Return([]model.ClaimLineItem{
					{ID: 1, ClaimID: 7, LineItemID: 5, Quantity: 3},
					{ID: 2, ClaimID: 7, LineItemID: 6, Quantity: 2},
				}, nil).Once()

				f.listingRepo.On("ReleaseLineItemTx", mock.Anything, tx, uint64(5), int64(3)).Return(nil).Once()
				f.listingRepo.On("ReleaseLineItemTx", mock.Anything, tx, uint64(6), int64(2)).Return(nil).Once()

				f.claimRepo.On("UpdateClaimStatusTx", mock.Anything, tx, uint64(7), constant.ClaimStatusCanceled).Return(nil).Once()

				f.redisRepo.On("InvalidateAvailableListings", mock.Anything).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: cancel approved claim before pickup",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 10,
				claimID:  7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:       7,
					BranchID: 10,
					Status:   constant.ClaimStatusApproved,
				}, nil).Once()

				f.claimRepo.On("GetClaimLineItemsTx", mock.Anything, tx, uint64(7)).Return([]model.ClaimLineItem{
					{ID: 1, ClaimID: 7, LineItemID: 5, Quantity: 3},
				}, nil).Once()

				f.listingRepo.On("ReleaseLineItemTx", mock.Anything, tx, uint64(5), int64(3)).Return(nil).Once()

				f.claimRepo.On("UpdateClaimStatusTx", mock.Anything, tx, uint64(7), constant.ClaimStatusCanceled).Return(nil).Once()

				f.redisRepo.On("InvalidateAvailableListings", mock.Anything).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: cannot cancel another charity's claim",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 11,
				claimID:  7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:       7,
					BranchID: 10,
					Status:   constant.ClaimStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: completed claim cannot be canceled",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 10,
				claimID:  7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:       7,
					BranchID: 10,
					Status:   constant.ClaimStatusCompleted,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyComplete,
		},
		{
			name: "error: claim not found",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 10,
				claimID:  999,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appclaim.NewClaimApp(tt.fields.config, tt.fields.txRepo, tt.fields.claimRepo, tt.fields.listingRepo, tt.fields.pickupRepo, tt.fields.redisRepo, nil)

			err := app.CancelClaim(tt.args.ctx, tt.args.branchID, tt.args.claimID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelClaim() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestClaimApp_RejectClaim(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		claimRepo   *claimmocks.ClaimRepository
		listingRepo *listingmocks.ListingRepository
		pickupRepo  *pickupmocks.PickupRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx      context.Context
		branchID uint64
		claimID  uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reject pending claim",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 2,
				claimID:  7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:       7,
					BranchID: 10,
					Status:   constant.ClaimStatusPending,
				}, nil).Once()

				f.claimRepo.On("GetClaimStoreBranchTx", mock.Anything, tx, uint64(7)).Return(uint64(2), nil).Once()

				f.claimRepo.On("GetClaimLineItemsTx", mock.Anything, tx, uint64(7)).Return([]model.ClaimLineItem{
					{ID: 1, ClaimID: 7, LineItemID: 5, Quantity: 3},
				}, nil).Once()

				f.listingRepo.On("ReleaseLineItemTx", mock.Anything, tx, uint64(5), int64(3)).Return(nil).Once()

				f.claimRepo.On("UpdateClaimStatusTx", mock.Anything, tx, uint64(7), constant.ClaimStatusRejected).Return(nil).Once()

				f.redisRepo.On("InvalidateAvailableListings", mock.Anything).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: reject from a branch that does not own the listing",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 4,
				claimID:  7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:       7,
					BranchID: 10,
					Status:   constant.ClaimStatusPending,
				}, nil).Once()

				f.claimRepo.On("GetClaimStoreBranchTx", mock.Anything, tx, uint64(7)).Return(uint64(2), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrBranchMismatch,
		},
		{
			name: "error: approved claim cannot be rejected",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 2,
				claimID:  7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.ClaimDetail{
					ID:       7,
					BranchID: 10,
					Status:   constant.ClaimStatusApproved,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotPending,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appclaim.NewClaimApp(tt.fields.config, tt.fields.txRepo, tt.fields.claimRepo, tt.fields.listingRepo, tt.fields.pickupRepo, tt.fields.redisRepo, nil)

			err := app.RejectClaim(tt.args.ctx, tt.args.branchID, tt.args.claimID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RejectClaim() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestClaimApp_ExpireClaim(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		claimRepo   *claimmocks.ClaimRepository
		listingRepo *listingmocks.ListingRepository
		pickupRepo  *pickupmocks.PickupRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx     context.Context
		claimID uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending claim past its deadline is cancelled",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				claimID: 42,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(42)).Return(&model.ClaimDetail{
					ID:       42,
					BranchID: 10,
					Status:   constant.ClaimStatusPending,
				}, nil).Once()

				f.claimRepo.On("GetClaimLineItemsTx", mock.Anything, tx, uint64(42)).Return([]model.ClaimLineItem{
					{ID: 1, ClaimID: 42, LineItemID: 5, Quantity: 3},
				}, nil).Once()

				f.listingRepo.On("ReleaseLineItemTx", mock.Anything, tx, uint64(5), int64(3)).Return(nil).Once()

				f.claimRepo.On("UpdateClaimStatusTx", mock.Anything, tx, uint64(42), constant.ClaimStatusCanceled).Return(nil).Once()

				f.redisRepo.On("InvalidateAvailableListings", mock.Anything).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: claim approved before the deadline is left alone",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				claimID: 42,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				// no release, no status update: the reservation and the
				// issued pickup token must survive the deadline
				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(42)).Return(&model.ClaimDetail{
					ID:       42,
					BranchID: 10,
					Status:   constant.ClaimStatusApproved,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotPending,
		},
		{
			name: "error: completed claim reports already complete",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				claimID: 42,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(42)).Return(&model.ClaimDetail{
					ID:       42,
					BranchID: 10,
					Status:   constant.ClaimStatusCompleted,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyComplete,
		},
		{
			name: "error: claim not found",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				claimID: 999,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.claimRepo.On("GetClaimForUpdateTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appclaim.NewClaimApp(tt.fields.config, tt.fields.txRepo, tt.fields.claimRepo, tt.fields.listingRepo, tt.fields.pickupRepo, tt.fields.redisRepo, nil)

			err := app.ExpireClaim(tt.args.ctx, tt.args.claimID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpireClaim() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestClaimApp_ListPendingForBranch(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		claimRepo   *claimmocks.ClaimRepository
		listingRepo *listingmocks.ListingRepository
		pickupRepo  *pickupmocks.PickupRepository
		redisRepo   *redismocks.Repository
	}
	now := time.Now()
	tests := []struct {
		name      string
		fields    fields
		branchID  uint64
		mockCall  func(f fields)
		want      []model.ClaimQueueGroup
		wantErr   bool
		errCode   constant.ErrorType
		wantEmpty bool
	}{
		{
			name: "success: groups claims by charity branch and recomputes totals",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			branchID: 2,
			mockCall: func(f fields) {
				f.claimRepo.On("ListPendingForBranch", mock.Anything, uint64(2)).Return([]model.ClaimQueueRow{
					{ClaimID: 7, UserID: 1, UserEmail: "a@shelter.org", CharityBranchID: 10, OrgName: "Hope Shelter", CreatedAt: now},
					{ClaimID: 8, UserID: 2, UserEmail: "b@kitchen.org", CharityBranchID: 11, OrgName: "Soup Kitchen", CreatedAt: now},
					{ClaimID: 9, UserID: 1, UserEmail: "a@shelter.org", CharityBranchID: 10, OrgName: "Hope Shelter", CreatedAt: now},
				}, nil).Once()

				f.claimRepo.On("GetClaimedItemDetails", mock.Anything, []uint64{7, 8, 9}).Return([]model.ClaimedItemDetail{
					{ClaimID: 7, ProductName: "Bread", Quantity: 4, LineItemID: 5},
					{ClaimID: 7, ProductName: "Milk", Quantity: 2, LineItemID: 6},
					{ClaimID: 8, ProductName: "Bread", Quantity: 1, LineItemID: 5},
					{ClaimID: 9, ProductName: "Apples", Quantity: 10, LineItemID: 7},
				}, nil).Once()
			},
			want: []model.ClaimQueueGroup{
				{CharityBranchID: 10, OrgName: "Hope Shelter", ClaimCount: 2, TotalItems: 16},
				{CharityBranchID: 11, OrgName: "Soup Kitchen", ClaimCount: 1, TotalItems: 1},
			},
			wantErr: false,
		},
		{
			name: "success: no pending claims returns empty slice",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			branchID: 2,
			mockCall: func(f fields) {
				f.claimRepo.On("ListPendingForBranch", mock.Anything, uint64(2)).Return([]model.ClaimQueueRow{}, nil).Once()
			},
			wantEmpty: true,
			wantErr:   false,
		},
		{
			name: "error: query fails",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				claimRepo:   claimmocks.NewClaimRepository(t),
				listingRepo: listingmocks.NewListingRepository(t),
				pickupRepo:  pickupmocks.NewPickupRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			branchID: 2,
			mockCall: func(f fields) {
				f.claimRepo.On("ListPendingForBranch", mock.Anything, uint64(2)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appclaim.NewClaimApp(tt.fields.config, tt.fields.txRepo, tt.fields.claimRepo, tt.fields.listingRepo, tt.fields.pickupRepo, tt.fields.redisRepo, nil)

			got, err := app.ListPendingForBranch(context.Background(), tt.branchID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListPendingForBranch() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if tt.wantEmpty {
				if len(got) != 0 {
					t.Fatalf("ListPendingForBranch() len = %d, want 0", len(got))
				}
				return
			}

			if len(got) != len(tt.want) {
				t.Fatalf("ListPendingForBranch() groups = %d, want %d", len(got), len(tt.want))
			}
			for i, wantGroup := range tt.want {
				if got[i].CharityBranchID != wantGroup.CharityBranchID {
					t.Fatalf("group %d CharityBranchID = %d, want %d", i, got[i].CharityBranchID, wantGroup.CharityBranchID)
				}
				if got[i].ClaimCount != wantGroup.ClaimCount {
					t.Fatalf("group %d ClaimCount = %d, want %d", i, got[i].ClaimCount, wantGroup.ClaimCount)
				}
				if got[i].TotalItems != wantGroup.TotalItems {
					t.Fatalf("group %d TotalItems = %d, want %d", i, got[i].TotalItems, wantGroup.TotalItems)
				}
			}
		})
	}
}

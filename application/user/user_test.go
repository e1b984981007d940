package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appuser "github.com/wastenot/wastenot/application/user"
	"github.com/wastenot/wastenot/cmd/config"
	"github.com/wastenot/wastenot/constant"
	redismocks "github.com/wastenot/wastenot/mocks/repository/redis"
	usermocks "github.com/wastenot/wastenot/mocks/repository/user"
	"github.com/wastenot/wastenot/model"
	cerr "github.com/wastenot/wastenot/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
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
			name: "success: register charity user",
			fields: fields{
				config:    &config.Config{},
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Asha",
					Email:    "asha@shelter.org",
					Password: "secret123",
					BranchID: 10,
				},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@shelter.org"}).Return(nil, nil).Once()

				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.Email == "asha@shelter.org" && u.PasswordHash != "secret123"
				})).Return(&model.UserEntity{
					ID:    1,
					Name:  "Asha",
					Email: "asha@shelter.org",
				}, nil).Once()

				f.userRepo.On("AddBranchMembership", mock.Anything, uint64(1), uint64(10)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: email already registered",
			fields: fields{
				config:    &config.Config{},
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Asha",
					Email:    "asha@shelter.org",
					Password: "secret123",
					BranchID: 10,
				},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@shelter.org"}).Return(&model.UserEntity{
					ID:    1,
					Email: "asha@shelter.org",
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Email != tt.args.req.Email {
				t.Fatalf("Register() Email = %s, want %s", got.Email, tt.args.req.Email)
			}
			if got.BranchID != tt.args.req.BranchID {
				t.Fatalf("Register() BranchID = %d, want %d", got.BranchID, tt.args.req.BranchID)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)

	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
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
			name: "success: login returns token and branch context",
			fields: fields{
				config: &config.Config{
					Auth: config.AuthConfig{
						JWTSecret:      "test-secret",
						JWTExpiration:  time.Hour,
						SessionExpTime: time.Hour,
					},
				},
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Email: "asha@shelter.org", Password: "secret123"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@shelter.org"}).Return(&model.UserEntity{
					ID:           1,
					Name:         "Asha",
					Email:        "asha@shelter.org",
					PasswordHash: string(hashed),
				}, nil).Once()

				f.userRepo.On("GetBranchMembership", mock.Anything, uint64(1)).Return(&model.BranchMembership{
					UserID:     1,
					BranchID:   10,
					BranchType: constant.BranchTypeCharity,
					OrgName:    "Hope Shelter",
				}, nil).Once()

				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown email",
			fields: fields{
				config:    &config.Config{},
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Email: "ghost@nowhere.org", Password: "secret123"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ghost@nowhere.org"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:    &config.Config{},
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Email: "asha@shelter.org", Password: "wrong"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@shelter.org"}).Return(&model.UserEntity{
					ID:           1,
					Email:        "asha@shelter.org",
					PasswordHash: string(hashed),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: user without branch membership",
			fields: fields{
				config:    &config.Config{},
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Email: "asha@shelter.org", Password: "secret123"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@shelter.org"}).Return(&model.UserEntity{
					ID:           1,
					Email:        "asha@shelter.org",
					PasswordHash: string(hashed),
				}, nil).Once()

				f.userRepo.On("GetBranchMembership", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Token == "" {
				t.Fatal("Login() Token should not be empty")
			}
			if got.BranchID != 10 {
				t.Fatalf("Login() BranchID = %d, want 10", got.BranchID)
			}
			if got.BranchType != constant.BranchTypeCharity {
				t.Fatalf("Login() BranchType = %s, want %s", got.BranchType, constant.BranchTypeCharity)
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)

	t.Run("success: token issued by login validates", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@shelter.org"}).Return(&model.UserEntity{
			ID:           1,
			Email:        "asha@shelter.org",
			PasswordHash: string(hashed),
		}, nil).Once()
		userRepo.On("GetBranchMembership", mock.Anything, uint64(1)).Return(&model.BranchMembership{
			UserID:     1,
			BranchID:   10,
			BranchType: constant.BranchTypeCharity,
		}, nil).Once()

		var jti string
		redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Run(func(args mock.Arguments) {
			jti = args.String(1)
		}).Return(nil).Once()

		app := appuser.NewUserApp(cfg, userRepo, redisRepo)

		res, err := app.Login(context.Background(), &model.LoginRequest{Email: "asha@shelter.org", Password: "secret123"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(1), nil).Once()

		userID, err := app.ValidateToken(context.Background(), res.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 1 {
			t.Fatalf("ValidateToken() userID = %d, want 1", userID)
		}
	})

	t.Run("error: garbage token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		app := appuser.NewUserApp(cfg, userRepo, redisRepo)

		if _, err := app.ValidateToken(context.Background(), "not-a-jwt"); err == nil {
			t.Fatal("ValidateToken() expected error for malformed token")
		}
	})
}

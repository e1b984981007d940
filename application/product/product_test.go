package product_test

import (
	"context"
	"errors"
	"testing"

	appproduct "github.com/wastenot/wastenot/application/product"
	"github.com/wastenot/wastenot/constant"
	productmocks "github.com/wastenot/wastenot/mocks/repository/product"
	"github.com/wastenot/wastenot/model"
	cerr "github.com/wastenot/wastenot/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestProductApp_ListBranchProducts(t *testing.T) {
	tests := []struct {
		name     string
		branchID uint64
		mockCall func(m *productmocks.ProductRepository)
		wantLen  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: products for branch",
			branchID: 2,
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("ListByBranch", mock.Anything, uint64(2)).Return([]model.BranchProduct{
					{ID: 1, BranchID: 2, Name: "Bread"},
					{ID: 2, BranchID: 2, Name: "Milk"},
				}, nil).Once()
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name:     "success: branch with no products",
			branchID: 3,
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("ListByBranch", mock.Anything, uint64(3)).Return([]model.BranchProduct{}, nil).Once()
			},
			wantLen: 0,
			wantErr: false,
		},
		{
			name:     "error: query fails",
			branchID: 2,
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("ListByBranch", mock.Anything, uint64(2)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appproduct.NewProductApp(repo)

			got, err := app.ListBranchProducts(context.Background(), tt.branchID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListBranchProducts() error = %v, wantErr %v", err, tt.wantErr)
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

			if len(got.Items) != tt.wantLen {
				t.Fatalf("ListBranchProducts() len = %d, want %d", len(got.Items), tt.wantLen)
			}
		})
	}
}

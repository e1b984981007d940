package product

import (
	"context"

	"github.com/wastenot/wastenot/constant"
	"github.com/wastenot/wastenot/model"
	productRepo "github.com/wastenot/wastenot/repository/product"
	cerr "github.com/wastenot/wastenot/utils/errors"
	"github.com/wastenot/wastenot/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListBranchProducts(ctx context.Context, branchID uint64) (*model.BranchProductListResponse, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListBranchProducts(ctx context.Context, branchID uint64) (*model.BranchProductListResponse, error) {
	items, err := s.productRepo.ListByBranch(ctx, branchID)
	if err != nil {
		logger.Error("[ListBranchProducts] error productRepo.ListByBranch", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.BranchProductListResponse{Items: items}, nil
}

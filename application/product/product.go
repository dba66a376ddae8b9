package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/Samu0104/loucura-total/constant"
	"github.com/Samu0104/loucura-total/model"
	productrepo "github.com/Samu0104/loucura-total/repository/product"
	"github.com/Samu0104/loucura-total/utils/errors"
	"github.com/Samu0104/loucura-total/utils/logger"
)

type ProductApp interface {
	SearchProducts(ctx context.Context, term string) (*model.SearchResponse, error)
	ListCatalog(ctx context.Context) (*model.ProductListResponse, error)
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
}

func NewProductApp(productRepo productrepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

// SearchProducts returns every product whose name contains the term as a
// substring. Empty-term handling lives in the transport layer, which
// redirects to the landing page instead of querying.
func (s *productAppImpl) SearchProducts(ctx context.Context, term string) (*model.SearchResponse, error) {
	items, err := s.productRepo.Search(ctx, term)
	if err != nil {
		logger.Error("[SearchProducts] error productRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SearchResponse{
		SearchTerm: term,
		Items:      items,
	}, nil
}

func (s *productAppImpl) ListCatalog(ctx context.Context) (*model.ProductListResponse, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCatalog] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items: items,
	}, nil
}

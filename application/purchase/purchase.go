package purchase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/Samu0104/loucura-total/constant"
	"github.com/Samu0104/loucura-total/model"
	accountrepo "github.com/Samu0104/loucura-total/repository/account"
	productrepo "github.com/Samu0104/loucura-total/repository/product"
	purchaserepo "github.com/Samu0104/loucura-total/repository/purchase"
	txrepo "github.com/Samu0104/loucura-total/repository/tx"
	"github.com/Samu0104/loucura-total/thirdparty/rabbitmq"
	"github.com/Samu0104/loucura-total/utils/errors"
	"github.com/Samu0104/loucura-total/utils/logger"
)

type PurchaseApp interface {
	CreatePurchase(ctx context.Context, req *model.PurchaseRequest) (*model.PurchaseResponse, error)
}

type purchaseAppImpl struct {
	txRepo       txrepo.TxRepository
	accountRepo  accountrepo.AccountRepository
	productRepo  productrepo.ProductRepository
	purchaseRepo purchaserepo.PurchaseRepository
	publisher    *rabbitmq.Publisher
}

func NewPurchaseApp(txRepo txrepo.TxRepository, accountRepo accountrepo.AccountRepository, productRepo productrepo.ProductRepository, purchaseRepo purchaserepo.PurchaseRepository, publisher *rabbitmq.Publisher) PurchaseApp {
	return &purchaseAppImpl{txRepo: txRepo, accountRepo: accountRepo, productRepo: productRepo, purchaseRepo: purchaseRepo, publisher: publisher}
}

// CreatePurchase records one purchase row after confirming the purchaser has
// an account (matched by name+email) and the product exists in the catalog.
// Each step short-circuits; nothing is inserted on any failure path. No
// stock check is performed, the catalog owns inventory.
func (s *purchaseAppImpl) CreatePurchase(ctx context.Context, req *model.PurchaseRequest) (*model.PurchaseResponse, error) {
	productID, err := strconv.ParseInt(req.ProductID, 10, 64)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrTypeMismatch)
	}
	quantity, err := strconv.Atoi(req.Quantity)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrTypeMismatch)
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{FullName: req.CustomerName, Email: req.Email})
	if err != nil {
		logger.Error("[CreatePurchase] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreatePurchase] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	product, err := s.productRepo.GetByIDTx(ctx, tx, productID)
	if err != nil {
		logger.Error("[CreatePurchase] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	purchaseID, err := s.purchaseRepo.InsertTx(ctx, tx, &model.PurchaseEntity{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		PostalCode:   req.PostalCode,
		HouseNumber:  req.HouseNumber,
		ProductID:    productID,
		Quantity:     quantity,
	})
	if err != nil {
		logger.Error("[CreatePurchase] insert purchase", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreatePurchase] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Best-effort event for the external notification collaborator
	if s.publisher != nil {
		msg := rabbitmq.PurchaseCreatedMessage{
			PurchaseID: purchaseID,
			ProductID:  productID,
			Quantity:   quantity,
			Email:      req.Email,
		}
		if err := s.publisher.PublishPurchaseCreated(msg); err != nil {
			logger.Error("[CreatePurchase] publish purchase created", zap.String("error", err.Error()))
		}
	}

	return &model.PurchaseResponse{
		PurchaseID: purchaseID,
	}, nil
}

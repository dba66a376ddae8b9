package account

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Samu0104/loucura-total/constant"
	"github.com/Samu0104/loucura-total/model"
	accountrepo "github.com/Samu0104/loucura-total/repository/account"
	"github.com/Samu0104/loucura-total/utils/errors"
	"github.com/Samu0104/loucura-total/utils/logger"
)

type AccountApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	DeleteAccount(ctx context.Context, req *model.DeleteAccountRequest) error
}

type AccountAppImpl struct {
	accountRepo accountrepo.AccountRepository
}

func NewAccountApp(accountRepo accountrepo.AccountRepository) AccountApp {
	return &AccountAppImpl{
		accountRepo: accountRepo,
	}
}

// Register creates the account in a single insert. Duplicate emails surface
// as a constraint violation from the repository, not as a pre-check, so two
// concurrent registrations with the same email cannot both succeed.
func (s *AccountAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	accountEntity := &model.AccountEntity{
		FullName:     req.FullName,
		BirthDate:    req.BirthDate,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	accountEntity, err = s.accountRepo.Create(ctx, accountEntity)
	if err != nil {
		if stderrors.Is(err, errors.SetCustomError(constant.ErrEmailExists)) {
			return nil, errors.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[Register] err accountRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		FullName: accountEntity.FullName,
		Email:    accountEntity.Email,
	}, nil
}

// Login reports found/not-found only. A missing email and a wrong password
// produce the same generic error.
func (s *AccountAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	account, err := s.checkCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		FullName: account.FullName,
		Email:    account.Email,
	}, nil
}

// DeleteAccount re-runs the credential check and removes the matching
// account rows. No session state exists to invalidate.
func (s *AccountAppImpl) DeleteAccount(ctx context.Context, req *model.DeleteAccountRequest) error {
	account, err := s.checkCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	deleted, err := s.accountRepo.DeleteByEmail(ctx, account.Email)
	if err != nil {
		logger.Error("[DeleteAccount] err accountRepo.DeleteByEmail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[DeleteAccount] account deleted", zap.String("email", account.Email), zap.Int64("rows", deleted))
	return nil
}

func (s *AccountAppImpl) checkCredentials(ctx context.Context, email, password string) (*model.AccountEntity, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: email})
	if err != nil {
		logger.Error("[checkCredentials] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if account == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	return account, nil
}

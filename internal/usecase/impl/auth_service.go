// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
//
// The existence pre-check and the insert run inside one transaction, and the
// insert itself is guarded by the email unique index, so two concurrent
// registrations of the same email can never both succeed.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "registration input incomplete")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredAccount *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrAccountExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
		}

		newAccount := &entity.Account{
			Email:        input.Email,
			Name:         input.Name,
			Image:        "", // Placeholder retained for client compatibility.
			PasswordHash: hashedPassword,
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			// The pre-check can lose to a concurrent insert; the constraint
			// still reports the conflict.
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrAccountExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create account during registration")
		}

		registeredAccount = newAccount

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(registeredAccount.ID, registeredAccount.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", registeredAccount.ID))

	return &usecase.AuthOutput{
		Token:   token,
		Account: registeredAccount.Public(),
	}, nil
}

// Login orchestrates the credential verification and session issuance process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "login input incomplete")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Identical failure shape for unknown email and wrong password.
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(account.ID, account.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{
		Token:   token,
		Account: account.Public(),
	}, nil
}

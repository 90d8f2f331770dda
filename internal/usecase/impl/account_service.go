// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "farmgate/internal/delivery/context"
	"farmgate/internal/domain/entity"
	domainerrors "farmgate/internal/domain/errors"
	"farmgate/internal/domain/repository"
	"farmgate/internal/domain/service"
	"farmgate/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. It is the only
// caller of the credential store, the password hasher and the token
// service.
type accountService struct {
	store  repository.AccountStore
	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger

	// mu serializes the load-modify-save cycle of Signup. The backing
	// store is a whole-file replace with no locking of its own, so two
	// concurrent signups would otherwise race and one persisted set
	// could silently overwrite the other.
	mu sync.Mutex
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Store  repository.AccountStore
	Hasher service.PasswordHasher
	Tokens service.TokenService
	Logger *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		store:  params.Store,
		hasher: params.Hasher,
		tokens: params.Tokens,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and immediately opens a session for it.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" || input.Role == "" {
		srv.log(ctx).Warn("signup rejected, missing fields")

		return nil, domainerrors.ErrValidation
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	accounts := srv.store.LoadAll(ctx)
	for _, a := range accounts {
		// Byte-wise comparison: email matching is case-sensitive.
		if a.Email == input.Email {
			srv.log(ctx).Warn("signup rejected, account exists", slog.String("email", input.Email))

			return nil, domainerrors.ErrDuplicateAccount
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("hashing password failed", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	account := entity.Account{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.Role(input.Role),
		// Coarse on purpose: only the calendar year is recorded.
		CreatedAt: time.Now().Year(),
	}
	accounts = append(accounts, account)

	if err := srv.store.SaveAll(ctx, accounts); err != nil {
		srv.log(ctx).Error("persisting account set failed", slog.Any("error", err))

		return nil, domainerrors.ErrStoreUnavailable
	}

	token, err := srv.tokens.Issue(account.Email, account.Role)
	if err != nil {
		srv.log(ctx).Error("issuing session token failed", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	srv.log(ctx).Info("new account signed up",
		slog.String("email", account.Email),
		slog.String("role", account.Role.String()),
	)

	return &usecase.SignupOutput{
		Email:    account.Email,
		Role:     account.Role,
		Token:    token,
		AllUsers: entity.Views(accounts),
	}, nil
}

// Login verifies credentials and opens a fresh session. An unknown email
// and a wrong password collapse into the same error so the response does
// not leak which check failed.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		srv.log(ctx).Warn("login rejected, missing fields")

		return nil, domainerrors.ErrValidation
	}

	account, ok := srv.findAccount(ctx, input.Email)
	if !ok || !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("login failed, invalid credentials", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.Issue(account.Email, account.Role)
	if err != nil {
		srv.log(ctx).Error("issuing session token failed", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	srv.log(ctx).Info("account logged in", slog.String("email", account.Email))

	return &usecase.LoginOutput{
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
		Token:     token,
	}, nil
}

// Profile resolves a gate-verified email back to the stored account. The
// store can be edited out from under a live session, so a verified token
// is still allowed to miss.
func (srv *accountService) Profile(ctx context.Context, email string) (*entity.AccountView, error) {
	account, ok := srv.findAccount(ctx, email)
	if !ok {
		srv.log(ctx).Warn("profile fetch failed, account missing", slog.String("email", email))

		return nil, domainerrors.ErrAccountNotFound
	}

	view := account.View()

	return &view, nil
}

func (srv *accountService) findAccount(ctx context.Context, email string) (entity.Account, bool) {
	for _, a := range srv.store.LoadAll(ctx) {
		if a.Email == email {
			return a, true
		}
	}

	return entity.Account{}, false
}

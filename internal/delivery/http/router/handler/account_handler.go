// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"farmgate/config"
	"farmgate/internal/delivery/http/middleware"
	"farmgate/internal/delivery/http/response"
	"farmgate/internal/delivery/http/session"
	"farmgate/internal/domain/entity"
	domainerrors "farmgate/internal/domain/errors"
	"farmgate/internal/domain/service"
	"farmgate/internal/errors"
	"farmgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// signupResponse is the documented signup body. AllUsers carries the
// public projection of the whole store; password hashes never appear.
type signupResponse struct {
	Message  string               `json:"message"`
	Role     entity.Role          `json:"role"`
	Email    string               `json:"email"`
	Token    string               `json:"token"`
	AllUsers []entity.AccountView `json:"allUsers"`
}

// loginResponse is the documented login body. User holds the email.
type loginResponse struct {
	Message   string      `json:"message"`
	Role      entity.Role `json:"role"`
	User      string      `json:"user"`
	CreatedAt int         `json:"createdAt"`
}

// protectedResponse echoes the verified claims back to the caller.
type protectedResponse struct {
	Message string                 `json:"message"`
	User    *service.SessionClaims `json:"user"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Signup handles account registration. A successful signup also opens a
// session: the token lands in the cookie and in the body.
func (h *AccountHandler) Signup(c echo.Context) error {
	var input *usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WrapMessage("bind signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	session.Set(c, output.Token, h.cfg.Auth.SessionTTL, h.cfg.Auth.CookieSecure)

	return c.JSON(http.StatusOK, signupResponse{
		Message:  "User registered & logged in successfully",
		Role:     output.Role,
		Email:    output.Email,
		Token:    output.Token,
		AllUsers: output.AllUsers,
	})
}

// Login handles credential verification and session issuance.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WrapMessage("bind login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	session.Set(c, output.Token, h.cfg.Auth.SessionTTL, h.cfg.Auth.CookieSecure)

	return c.JSON(http.StatusOK, loginResponse{
		Message:   "Login successful",
		Role:      output.Role,
		User:      output.Email,
		CreatedAt: output.CreatedAt,
	})
}

// Logout clears the session cookie. Purely client-facing: tokens already
// issued stay valid until their natural expiry.
func (h *AccountHandler) Logout(c echo.Context) error {
	session.Clear(c, h.cfg.Auth.CookieSecure)
	h.logger.Info("account logged out")

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// Protected is the example gated route: it returns the claims the
// session gate resolved.
func (h *AccountHandler) Protected(c echo.Context) error {
	claims := middleware.SessionClaims(c)
	if claims == nil {
		return domainerrors.ErrMissingToken
	}

	return c.JSON(http.StatusOK, protectedResponse{
		Message: fmt.Sprintf("Welcome %s!", claims.Role),
		User:    claims,
	})
}

// Profile returns the stored account behind the verified session, minus
// the password hash.
func (h *AccountHandler) Profile(c echo.Context) error {
	claims := middleware.SessionClaims(c)
	if claims == nil {
		return domainerrors.ErrMissingToken
	}

	view, err := h.uc.Profile(c.Request().Context(), claims.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, view)
}

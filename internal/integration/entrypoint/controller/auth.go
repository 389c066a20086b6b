package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/application/usecase/category"
	"github.com/pennyflow/backend/internal/application/usecase/user"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	loginUseCase        *user.LoginUserUseCase
	seedDefaultsUseCase *category.SeedDefaultsUseCase
	tokenService        adapter.TokenService
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *user.LoginUserUseCase,
	seedDefaultsUseCase *category.SeedDefaultsUseCase,
	tokenService adapter.TokenService,
) *AuthController {
	return &AuthController{
		loginUseCase:        loginUseCase,
		seedDefaultsUseCase: seedDefaultsUseCase,
		tokenService:        tokenService,
	}
}

// Login handles POST /auth/login requests. The identity is asserted by an
// upstream provider; this endpoint provisions the local account on first
// sight and seeds the default categories. Seeding runs on every login, so a
// deleted default category comes back next session.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), user.LoginUserInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		c.handleLoginError(ctx, err)
		return
	}

	if err := c.seedDefaultsUseCase.Execute(ctx.Request.Context(), category.SeedDefaultsInput{
		UserID: output.User.ID,
	}); err != nil {
		// The account exists and seeding reruns on the next login, so a
		// failure here is not fatal.
		slog.Warn("Failed to seed default categories",
			"user_id", output.User.ID,
			"error", err,
		)
	}

	tokens, err := c.tokenService.GenerateTokenPair(ctx.Request.Context(), output.User.ID, output.User.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate session tokens",
		})
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	ctx.JSON(status, dto.LoginResponse{
		User:         dto.ToUserResponse(output.User),
		Created:      output.Created,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Refresh handles POST /auth/refresh requests.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	claims, err := c.tokenService.ValidateRefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid or expired refresh token",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return
	}

	valid, err := c.tokenService.IsRefreshTokenValid(ctx.Request.Context(), req.RefreshToken)
	if err != nil || !valid {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Refresh token has been invalidated",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return
	}

	// Rotate: invalidate the used token before issuing a new pair.
	if err := c.tokenService.InvalidateRefreshToken(ctx.Request.Context(), req.RefreshToken); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to rotate refresh token",
		})
		return
	}

	tokens, err := c.tokenService.GenerateTokenPair(ctx.Request.Context(), claims.UserID, claims.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate session tokens",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if err := c.tokenService.InvalidateRefreshToken(ctx.Request.Context(), req.RefreshToken); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to invalidate refresh token",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// handleLoginError maps login errors to HTTP responses.
func (c *AuthController) handleLoginError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		switch userErr.Code {
		case domainerror.ErrCodeInvalidEmail:
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: userErr.Message,
				Code:  string(userErr.Code),
			})
			return
		case domainerror.ErrCodeAccountDeactivated:
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: userErr.Message,
				Code:  string(userErr.Code),
			})
			return
		}
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Login failed",
	})
}

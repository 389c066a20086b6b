package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/user"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user lifecycle endpoints.
type UserController struct {
	deactivateUseCase *user.DeactivateUserUseCase
	purgeUseCase      *user.PurgeAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	deactivateUseCase *user.DeactivateUserUseCase,
	purgeUseCase *user.PurgeAccountUseCase,
) *UserController {
	return &UserController{
		deactivateUseCase: deactivateUseCase,
		purgeUseCase:      purgeUseCase,
	}
}

// Deactivate handles POST /users/me/deactivate requests.
func (c *UserController) Deactivate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.deactivateUseCase.Execute(ctx.Request.Context(), user.DeactivateUserInput{
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to deactivate account",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DeactivateResponse{Modified: output.Modified})
}

// Purge handles DELETE /users/me requests. It permanently removes the user
// and everything they own, responding with per-collection deletion counts.
func (c *UserController) Purge(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.purgeUseCase.Execute(ctx.Request.Context(), user.PurgeAccountInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to purge account",
			Code:  string(domainerror.ErrCodePurgeFailed),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.PurgeResponse{
		Transactions: output.Transactions,
		Budgets:      output.Budgets,
		Categories:   output.Categories,
		Users:        output.Users,
	})
}

package http

import (
	"net/http"
	"strings"

	"senderplus/internal/core/application/usecases/commands"
	"senderplus/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the auth middleware stores the authenticated
// account for downstream handlers.
const actorContextKey = "actor"

// AuthMiddleware verifies the Bearer token on protected routes and loads
// the matching account as the current actor. The account is reloaded from
// the database on every request so staff changes take effect immediately.
func AuthMiddleware(signer ports.TokenSigner, uowFactory ports.UnitOfWorkFactory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Detail: "Authentication required"})
			}

			accountID, err := signer.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Detail: "Invalid or expired token"})
			}

			uow := uowFactory.Create()
			acc, err := uow.AccountRepository().GetByID(ctx.Request().Context(), accountID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Detail: "Invalid or expired token"})
			}

			ctx.Set(actorContextKey, acc)
			return next(ctx)
		}
	}
}

// ActorFromContext extracts the authenticated actor stored by AuthMiddleware.
func ActorFromContext(ctx echo.Context) (commands.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(commands.Actor)
	return actor, ok
}

package auth

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/middleware"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/login", Login(authSvc))
	app.Post("/logout", Logout(authSvc))
}

// Login handles the placeholder authentication and returns a session token.
// @Summary Login
// @Description Checks the configured credentials and issues a short-lived session token with a fresh identifier
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response{data=LoginResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // Error already written by BindAndValidate
		}
		id, token, err := authSvc.Login(c.UserContext(), input.User, string(input.Password))
		if errors.Is(err, domain.ErrUnauthorized) {
			return common.ProblemDetailsJSON(c, "Invalid login", err, "User or password is incorrect")
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", LoginResponse{
			Auth:  true,
			Token: token,
			ID:    id,
		})
	}
}

// Logout revokes the session token sent in x-access-token, if any.
// @Summary Logout
// @Tags auth
// @Produce json
// @Param x-access-token header string false "Session token"
// @Success 200 {object} common.Response{data=LogoutResponse}
// @Failure 500 {object} common.ProblemDetails
// @Router /logout [post]
func Logout(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authSvc.Logout(c.UserContext(), c.Get(middleware.TokenHeader)); err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", LogoutResponse{Auth: false})
	}
}

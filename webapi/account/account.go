package account

import (
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/middleware"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

// Routes registers HTTP routes for customer account lifecycle operations.
//
// Routes:
//   - POST   /account : Register a customer (session token).
//   - GET    /account : Read the customer named by the cpf header (session token).
//   - PUT    /account : Rename the customer named by the cpf header.
//   - DELETE /account : Remove the customer named by the cpf header.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.Auth) {
	protected := middleware.JwtProtected(cfg.Jwt, authSvc)
	app.Post("/account", protected, CreateAccount(accountSvc, authSvc))
	app.Get("/account", protected, common.WithCustomer(accountSvc, GetAccount()))
	app.Put("/account", common.WithCustomer(accountSvc, UpdateAccount(accountSvc)))
	app.Delete("/account", common.WithCustomer(accountSvc, DeleteAccount(accountSvc)))
}

// CreateAccount returns a Fiber handler that registers a customer under the caller's
// session identifier.
// @Summary Create a customer account
// @Description Registers a customer with an empty statement. The record id is taken from the session token.
// @Tags accounts
// @Accept json
// @Produce json
// @Param x-access-token header string true "Session token"
// @Param request body CreateAccountRequest true "Customer details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 403 {object} common.ProblemDetails "Missing or invalid token"
// @Failure 409 {object} common.ProblemDetails "CPF already registered"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /account [post]
func CreateAccount(
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals(middleware.UserContextKey).(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Forbidden", nil, "missing session", fiber.StatusForbidden)
		}
		userID, err := authSvc.GetCurrentUserID(token)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Forbidden", err)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		cust, err := accountSvc.Create(c.UserContext(), input.CPF, input.Name, userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		log.Infof("Account created for user %s", userID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", cust)
	}
}

// GetAccount returns the resolved customer record.
// @Summary Get a customer account
// @Tags accounts
// @Produce json
// @Param x-access-token header string true "Session token"
// @Param cpf header string true "Customer CPF"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /account [get]
func GetAccount() common.CustomerHandler {
	return func(c *fiber.Ctx, cust *customer.Customer) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", cust)
	}
}

// UpdateAccount renames the resolved customer.
// @Summary Rename a customer
// @Tags accounts
// @Accept json
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Param request body UpdateAccountRequest true "New name"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /account [put]
func UpdateAccount(accountSvc *accountsvc.Service) common.CustomerHandler {
	return func(c *fiber.Ctx, cust *customer.Customer) error {
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		updated, err := accountSvc.UpdateName(c.UserContext(), cust, input.Name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", updated)
	}
}

// DeleteAccount removes the resolved customer and returns the remaining records.
// @Summary Delete a customer
// @Tags accounts
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /account [delete]
func DeleteAccount(accountSvc *accountsvc.Service) common.CustomerHandler {
	return func(c *fiber.Ctx, cust *customer.Customer) error {
		remaining, err := accountSvc.Delete(c.UserContext(), cust)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", remaining)
	}
}

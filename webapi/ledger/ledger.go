// Package ledger exposes statement queries, deposits, withdrawals and balances over HTTP.
// Every route acts on the customer named by the cpf header.
package ledger

import (
	"github.com/amirasaad/ledger/pkg/domain/customer"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	ledgersvc "github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the statement and balance routes.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, ledgerSvc *ledgersvc.Service) {
	app.Get("/statement", common.WithCustomer(accountSvc, GetStatement(ledgerSvc)))
	app.Get("/statement/date", common.WithCustomer(accountSvc, GetStatementByDate(ledgerSvc)))
	app.Post("/deposit", common.WithCustomer(accountSvc, Deposit(ledgerSvc)))
	app.Post("/withdraw", common.WithCustomer(accountSvc, Withdraw(ledgerSvc)))
	app.Get("/balance", common.WithCustomer(accountSvc, GetBalance(ledgerSvc)))
}

// GetStatement returns the full statement in insertion order.
// @Summary Get statement
// @Tags statement
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /statement [get]
func GetStatement(ledgerSvc *ledgersvc.Service) common.CustomerHandler {
	return func(c *fiber.Ctx, cust *customer.Customer) error {
		statement, err := ledgerSvc.Statement(c.UserContext(), cust)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get statement", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statement fetched", statement)
	}
}

// GetStatementByDate returns the entries created on one calendar date.
// @Summary Get statement by date
// @Description Filters entries by the calendar date of their creation in the server's time zone.
// @Tags statement
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Param date query string true "Date formatted as YYYY-MM-DD"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /statement/date [get]
func GetStatementByDate(ledgerSvc *ledgersvc.Service) common.CustomerHandler {
	return func(c *fiber.Ctx, cust *customer.Customer) error {
		entries, err := ledgerSvc.StatementByDate(c.UserContext(), cust, c.Query("date"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get statement", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statement fetched", entries)
	}
}

// Deposit credits the customer's statement.
// @Summary Deposit
// @Tags statement
// @Accept json
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Param request body DepositRequest true "Deposit details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /deposit [post]
func Deposit(ledgerSvc *ledgersvc.Service) common.CustomerHandler {
	return func(c *fiber.Ctx, cust *customer.Customer) error {
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err
		}
		entry, err := ledgerSvc.Deposit(c.UserContext(), cust, input.Description, *input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Deposit successful", entry)
	}
}

// Withdraw debits the customer's statement when the balance covers the amount.
// @Summary Withdraw
// @Tags statement
// @Accept json
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 402 {object} common.ProblemDetails "Insufficient funds"
// @Failure 404 {object} common.ProblemDetails
// @Router /withdraw [post]
func Withdraw(ledgerSvc *ledgersvc.Service) common.CustomerHandler {
	return func(c *fiber.Ctx, cust *customer.Customer) error {
		input, err := common.BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err
		}
		entry, err := ledgerSvc.Withdraw(c.UserContext(), cust, *input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Withdrawal successful", entry)
	}
}

// GetBalance returns the net of the customer's statement.
// @Summary Get balance
// @Tags statement
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Success 200 {object} common.Response{data=BalanceResponse}
// @Failure 404 {object} common.ProblemDetails
// @Router /balance [get]
func GetBalance(ledgerSvc *ledgersvc.Service) common.CustomerHandler {
	return func(c *fiber.Ctx, cust *customer.Customer) error {
		balance, err := ledgerSvc.Balance(c.UserContext(), cust)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", BalanceResponse{Balance: balance})
	}
}

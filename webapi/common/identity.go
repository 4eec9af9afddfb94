package common

import (
	"context"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/gofiber/fiber/v2"
)

// CPFHeader names the request header that identifies the customer an operation acts on.
//
// The value is trusted as given and is not tied to the session token, so any caller
// can act on any CPF. Binding it to the token's subject would close that gap.
const CPFHeader = "cpf"

// CustomerResolver resolves a CPF to its customer record.
type CustomerResolver interface {
	Get(ctx context.Context, cpf string) (*customer.Customer, error)
}

// CustomerHandler is a request handler that runs against a resolved customer.
type CustomerHandler func(c *fiber.Ctx, cust *customer.Customer) error

// WithCustomer resolves the cpf header before next runs.
// An absent header or unknown CPF answers 404 and next is not called.
func WithCustomer(resolver CustomerResolver, next CustomerHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cpf := strings.TrimSpace(c.Get(CPFHeader))
		if cpf == "" {
			return ProblemDetailsJSON(c, "Customer not found", nil, "cpf header is required", fiber.StatusNotFound)
		}
		cust, err := resolver.Get(c.UserContext(), cpf)
		if err != nil {
			return ProblemDetailsJSON(c, "Customer not found", err)
		}
		return next(c, cust)
	}
}

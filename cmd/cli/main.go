package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	ledgersvc "github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  create <cpf> <name>
  get <cpf>
  rename <cpf> <name>
  delete <cpf>
  list
  deposit <cpf> <amount> [description]
  withdraw <cpf> <amount>
  balance <cpf>
  statement <cpf> [YYYY-MM-DD]`

var (
	errUsage = errors.New("invalid arguments")

	okColor     = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed, color.Bold)
	creditColor = color.New(color.FgGreen)
	debitColor  = color.New(color.FgRed)
	headColor   = color.New(color.Bold)
)

func main() {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		errColor.Fprintln(os.Stderr, "Failed to load configuration:", err) //nolint: errcheck
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg, initializer.WithLogOutput(os.Stderr))
	if err != nil {
		errColor.Fprintln(os.Stderr, "Failed to initialize dependencies:", err) //nolint: errcheck
		os.Exit(1)
	}
	defer deps.Close() //nolint: errcheck

	if err := run(context.Background(), newCLI(deps), os.Args[1:], os.Stdout); err != nil {
		errColor.Fprintln(os.Stderr, "Error:", err) //nolint: errcheck
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		deps.Close() //nolint: errcheck
		os.Exit(1)
	}
}

type cli struct {
	accounts *accountsvc.Service
	ledger   *ledgersvc.Service
}

// newCLI builds the services directly over deps; the CLI bypasses the session gate.
func newCLI(deps *app.Deps) *cli {
	return &cli{
		accounts: accountsvc.New(deps.Store, deps.Logger,
			accountsvc.WithIDGenerator(deps.IDs),
			accountsvc.WithClock(deps.Clock),
		),
		ledger: ledgersvc.New(deps.Store, deps.Logger,
			ledgersvc.WithClock(deps.Clock),
			ledgersvc.WithLocation(deps.Location),
		),
	}
}

func run(ctx context.Context, c *cli, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "list":
		customers, err := c.accounts.List(ctx)
		if err != nil {
			return err
		}
		for _, cust := range customers {
			printCustomer(out, cust)
		}
		return nil
	case "create":
		if len(args) < 2 {
			return errUsage
		}
		cust, err := c.accounts.Create(ctx, args[0], strings.Join(args[1:], " "), "")
		if err != nil {
			return err
		}
		okColor.Fprint(out, "Created ") //nolint: errcheck
		printCustomer(out, cust)
		return nil
	}

	// Remaining commands act on an existing customer.
	if len(args) < 1 {
		return errUsage
	}
	cust, err := c.accounts.Get(ctx, args[0])
	if err != nil {
		return err
	}
	args = args[1:]

	switch cmd {
	case "get":
		printCustomer(out, cust)
	case "rename":
		if len(args) < 1 {
			return errUsage
		}
		updated, err := c.accounts.UpdateName(ctx, cust, strings.Join(args, " "))
		if err != nil {
			return err
		}
		okColor.Fprint(out, "Renamed ") //nolint: errcheck
		printCustomer(out, updated)
	case "delete":
		remaining, err := c.accounts.Delete(ctx, cust)
		if err != nil {
			return err
		}
		okColor.Fprintf(out, "Deleted %s, %d remaining\n", cust.CPF, len(remaining)) //nolint: errcheck
	case "deposit":
		if len(args) < 1 {
			return errUsage
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		entry, err := c.ledger.Deposit(ctx, cust, strings.Join(args[1:], " "), amount)
		if err != nil {
			return err
		}
		printEntry(out, entry)
	case "withdraw":
		if len(args) < 1 {
			return errUsage
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		entry, err := c.ledger.Withdraw(ctx, cust, amount)
		if err != nil {
			return err
		}
		printEntry(out, entry)
	case "balance":
		balance, err := c.ledger.Balance(ctx, cust)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s balance: %.2f\n", cust.CPF, balance) //nolint: errcheck
	case "statement":
		var entries []customer.Entry
		if len(args) > 0 {
			entries, err = c.ledger.StatementByDate(ctx, cust, args[0])
		} else {
			entries, err = c.ledger.Statement(ctx, cust)
		}
		if err != nil {
			return err
		}
		headColor.Fprintf(out, "Statement for %s (%s)\n", cust.CPF, cust.Name) //nolint: errcheck
		for _, e := range entries {
			printEntry(out, e)
		}
		fmt.Fprintf(out, "Net: %.2f\n", customer.Balance(entries)) //nolint: errcheck
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a number", errUsage, s)
	}
	return amount, nil
}

func printCustomer(out io.Writer, c *customer.Customer) {
	fmt.Fprintf(out, "%s %s (id %s, %d entries)\n", c.CPF, c.Name, c.ID, len(c.Statement)) //nolint: errcheck
}

func printEntry(out io.Writer, e customer.Entry) {
	at := e.CreatedAt.Format("2006-01-02 15:04:05")
	if e.Type == customer.Debit {
		debitColor.Fprintf(out, "%s  -%.2f\n", at, e.Amount) //nolint: errcheck
		return
	}
	creditColor.Fprintf(out, "%s  +%.2f  %s\n", at, e.Amount, e.Description) //nolint: errcheck
}

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/court-fund/internal/tui"
	"github.com/MKhiriev/court-fund/models"
	"github.com/shopspring/decimal"
)

// login [login]
//
// The password is read from a masked prompt so it never shows up in argv or
// shell history.
func (a *App) login(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: login [login], the password is prompted for", ErrTooManyArguments)
	}

	var login string
	if len(args) == 1 {
		login = args[0]
	}

	token, err := a.promptLogin(ctx, login)
	if errors.Is(err, tui.ErrUserQuit) {
		fmt.Fprintln(a.out, helpStyle.Render("login cancelled"))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, titleStyle.Render("Logged in"))
	fmt.Fprintln(a.out, helpStyle.Render("pass the token with -token or ADAPTER_TOKEN:"))
	fmt.Fprintln(a.out, token)
	return nil
}

// ui opens the interactive fee browser.
func (a *App) ui(ctx context.Context, _ []string) error {
	return a.browse(ctx)
}

func (a *App) fund(ctx context.Context, _ []string) error {
	fund, err := a.adapter.MyFund(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderFund(fund))
	return nil
}

// deposit <amount>
func (a *App) deposit(ctx context.Context, args []string) error {
	amount, err := parseAmount(args)
	if err != nil {
		return err
	}

	fund, err := a.adapter.Deposit(ctx, amount)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderFund(fund))
	return nil
}

// withdraw <amount>
func (a *App) withdraw(ctx context.Context, args []string) error {
	amount, err := parseAmount(args)
	if err != nil {
		return err
	}

	fund, err := a.adapter.Withdraw(ctx, amount)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderFund(fund))
	return nil
}

// fees [-status s] [-court id] [-month YYYY-MM] [-due-before date]
func (a *App) fees(ctx context.Context, args []string) error {
	fs := newFlagSet("fees")
	status := fs.String("status", "", "pending, completed or overdue")
	courtID := fs.Int64("court", 0, "court ID")
	month := fs.String("month", "", "billing month, YYYY-MM")
	dueBefore := fs.String("due-before", "", "only fees due before this date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := models.ServiceFeeFilter{
		CourtID: *courtID,
		Status:  models.FeeStatus(*status),
		Month:   *month,
	}
	if *dueBefore != "" {
		t, err := parseDate(*dueBefore)
		if err != nil {
			return err
		}
		filter.DueBefore = &t
	}

	fees, err := a.adapter.ListFees(ctx, filter)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderFees(fees))
	return nil
}

// fee-create -court id -amount x -due date [-month YYYY-MM] [-status s]
func (a *App) createFee(ctx context.Context, args []string) error {
	fs := newFlagSet("fee-create")
	courtID := fs.Int64("court", 0, "court ID")
	amountRaw := fs.String("amount", "", "fee amount")
	dueRaw := fs.String("due", "", "due date, YYYY-MM-DD")
	month := fs.String("month", "", "billing month, YYYY-MM")
	status := fs.String("status", "", "initial status, pending by default")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *courtID <= 0 {
		return fmt.Errorf("%w: -court", ErrInvalidID)
	}
	amount, err := decimal.NewFromString(*amountRaw)
	if err != nil || amount.IsNegative() {
		return fmt.Errorf("%w: -amount %q", ErrInvalidAmount, *amountRaw)
	}
	due, err := parseDate(*dueRaw)
	if err != nil {
		return err
	}

	fee, err := a.adapter.CreateFee(ctx, models.CreateServiceFeeRequest{
		CourtID: courtID,
		Amount:  &amount,
		Month:   *month,
		Status:  models.FeeStatus(*status),
		DueDate: &due,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderFees([]models.ServiceFee{fee}))
	return nil
}

// pay <feeID>
func (a *App) pay(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: pay <feeID>", ErrMissingArgument)
	}

	feeID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || feeID <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidID, args[0])
	}

	fee, err := a.adapter.UpdateFeeStatus(ctx, models.UpdateFeeStatusRequest{
		ID:     feeID,
		Status: models.FeeStatusCompleted,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderFees([]models.ServiceFee{fee}))
	return nil
}

func (a *App) version(_ context.Context, _ []string) error {
	fmt.Fprintln(a.out, renderBuildInfo(a.buildInfo))
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseAmount(args []string) (decimal.Decimal, error) {
	if len(args) != 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: <amount>", ErrMissingArgument)
	}

	amount, err := decimal.NewFromString(args[0])
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, args[0])
	}
	return amount, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

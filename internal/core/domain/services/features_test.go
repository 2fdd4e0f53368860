package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/errs"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type featureContext struct {
	today   time.Time
	terms   voucher.Terms
	quote   services.Quote
	unit    *vehicle.VehicleUnit
	moveErr error
	issued  bool
}

func (f *featureContext) reset() {
	*f = featureContext{today: now}
}

func (f *featureContext) clock() time.Time {
	return f.today
}

func (f *featureContext) todayIs(raw string) error {
	d, err := kernel.ParseDate(raw)
	if err != nil {
		return err
	}
	f.today = d.Time().Add(10 * time.Hour)
	return nil
}

func (f *featureContext) aVoucherWithLimits(kind string, value, minPrice, maxDiscount int64) error {
	if err := f.aVoucherWithoutLimits(kind, value); err != nil {
		return err
	}
	lo, hi := kernel.Money(minPrice), kernel.Money(maxDiscount)
	f.terms.MinPrice = &lo
	f.terms.MaxDiscount = &hi
	return nil
}

func (f *featureContext) aVoucherWithoutLimits(kind string, value int64) error {
	f.terms = voucher.Terms{Code: "FEATURE", Title: "Feature voucher", Type: voucher.Type(kind)}
	switch f.terms.Type {
	case voucher.Flat:
		amount := kernel.Money(value)
		f.terms.Amount = &amount
	case voucher.Percent:
		p := decimal.NewFromInt(value)
		f.terms.Percent = &p
	default:
		return fmt.Errorf("unexpected voucher type %s", kind)
	}
	return nil
}

func (f *featureContext) aPackageVoucher(title string) error {
	f.terms = voucher.Terms{Code: "PKG", Title: title, Type: voucher.Package}
	return nil
}

func (f *featureContext) usableBetween(from, to string) error {
	lo, err := kernel.ParseDate(from)
	if err != nil {
		return err
	}
	hi, err := kernel.ParseDate(to)
	if err != nil {
		return err
	}
	f.terms.UsableFrom = &lo
	f.terms.UsableTo = &hi
	return nil
}

func (f *featureContext) priceAgainst(price int64) error {
	v, err := voucher.NewVoucher(kernel.NewUUID(), f.terms, f.today)
	if err != nil {
		return err
	}
	f.quote = services.NewDiscountCalculator(f.clock).Quote(v, kernel.Money(price))
	return nil
}

func (f *featureContext) discountIs(want int64) error {
	if f.quote.Discount != kernel.Money(want) {
		return fmt.Errorf("expected discount %d, got %d (%s)", want, f.quote.Discount, f.quote.Reason)
	}
	return nil
}

func (f *featureContext) priceAfterIs(want int64) error {
	if f.quote.PriceAfter != kernel.Money(want) {
		return fmt.Errorf("expected price after %d, got %d", want, f.quote.PriceAfter)
	}
	return nil
}

func (f *featureContext) reasonIs(want string) error {
	if string(f.quote.Reason) != want {
		return fmt.Errorf("expected reason %s, got %s", want, f.quote.Reason)
	}
	return nil
}

func (f *featureContext) move(kind, from, to string) error {
	f.moveErr = statusguard.AssertTransition(statusguard.Kind(kind), from, to)
	return nil
}

func (f *featureContext) moveRejected() error {
	if !errors.Is(f.moveErr, errs.ErrInvalidTransition) {
		return fmt.Errorf("expected invalid transition, got %v", f.moveErr)
	}
	return nil
}

func (f *featureContext) moveAllowed() error {
	return f.moveErr
}

func (f *featureContext) aVehicleUnitWithStatus(status string) error {
	s, err := vehicle.ParseStatus(status)
	if err != nil {
		return err
	}
	f.unit, err = vehicle.RestoreVehicleUnit(
		kernel.NewUUID(), kernel.NewUUID(), nil, nil, s, nil, nil, f.today, f.today, 1)
	return err
}

func (f *featureContext) issueTicket() error {
	h := services.NewHandover(services.NewDiscountCalculator(f.clock))
	_, f.moveErr = h.Issue(kernel.NewUUID(), f.unit, false, services.TicketRequest{CustomerName: "Walk-in"})
	f.issued = f.moveErr == nil
	return nil
}

func (f *featureContext) ticketRefused() error {
	if !errors.Is(f.moveErr, errs.ErrPreconditionFailed) {
		return fmt.Errorf("expected precondition failure, got %v", f.moveErr)
	}
	return nil
}

func (f *featureContext) ticketIssued() error {
	if !f.issued {
		return fmt.Errorf("ticket was not issued: %v", f.moveErr)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	f := &featureContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		f.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^today is "([^"]*)"$`, f.todayIs)
	ctx.Step(`^a (FLAT|PERCENT) voucher of (\d+) with min price (\d+) and max discount (\d+)$`, f.aVoucherWithLimits)
	ctx.Step(`^a (FLAT|PERCENT) voucher of (\d+) without limits$`, f.aVoucherWithoutLimits)
	ctx.Step(`^a PACKAGE voucher with title "([^"]*)"$`, f.aPackageVoucher)
	ctx.Step(`^the voucher is usable from "([^"]*)" to "([^"]*)"$`, f.usableBetween)
	ctx.Step(`^a vehicle unit with status "([^"]*)"$`, f.aVehicleUnitWithStatus)

	// When
	ctx.Step(`^I price it against (\d+)$`, f.priceAgainst)
	ctx.Step(`^I move a (\w+) from "([^"]*)" to "([^"]*)"$`, f.move)
	ctx.Step(`^I issue a delivery ticket for it$`, f.issueTicket)

	// Then
	ctx.Step(`^the discount is (\d+)$`, f.discountIs)
	ctx.Step(`^the price after discount is (\d+)$`, f.priceAfterIs)
	ctx.Step(`^the reason is "([^"]*)"$`, f.reasonIs)
	ctx.Step(`^the move is rejected as an invalid transition$`, f.moveRejected)
	ctx.Step(`^the move is allowed$`, f.moveAllowed)
	ctx.Step(`^the ticket is refused because a precondition failed$`, f.ticketRefused)
	ctx.Step(`^the ticket is issued$`, f.ticketIssued)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/voucher_pricing.feature", "features/status_guard.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

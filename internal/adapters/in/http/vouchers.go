package http

import (
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/voucher"

	"github.com/labstack/echo/v4"
)

// ListVouchers handles GET /api/vouchers.
func (s *Server) ListVouchers(ctx echo.Context) error {
	filter, err := voucherFilter(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	query, err := queries.NewListVouchersQuery(filter)
	if err != nil {
		return badRequest(ctx, err)
	}

	vouchers, err := s.h.ListVouchers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Voucher, len(vouchers))
	for i, v := range vouchers {
		response[i] = toVoucher(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

func voucherFilter(ctx echo.Context) (queries.VoucherFilter, error) {
	var (
		f   queries.VoucherFilter
		err error
	)

	includeInactive, err := queryBool(ctx, "includeInactive")
	if err != nil {
		return f, err
	}
	f.IncludeInactive = includeInactive != nil && *includeInactive

	rawType, err := queryString(ctx, "type")
	if err != nil {
		return f, err
	}
	if rawType != nil {
		t, err := voucher.ParseType(*rawType)
		if err != nil {
			return f, err
		}
		f.Type = &t
	}

	if f.Stackable, err = queryBool(ctx, "stackable"); err != nil {
		return f, err
	}
	text, err := queryString(ctx, "q")
	if err != nil {
		return f, err
	}
	if text != nil {
		f.Text = *text
	}
	if f.MinPriceFrom, err = queryMoney(ctx, "minPriceFrom"); err != nil {
		return f, err
	}
	if f.MinPriceTo, err = queryMoney(ctx, "minPriceTo"); err != nil {
		return f, err
	}
	if f.ValidFrom, err = queryDate(ctx, "validFrom"); err != nil {
		return f, err
	}
	if f.ValidTo, err = queryDate(ctx, "validTo"); err != nil {
		return f, err
	}
	return f, nil
}

// GetVoucherStats handles GET /api/vouchers/stats.
func (s *Server) GetVoucherStats(ctx echo.Context) error {
	stats, err := s.h.GetVoucherStats.Handle(
		ctx.Request().Context(), queries.NewGetVoucherStatsQuery(s.pricing.Today()))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, VoucherStats{
		Total:    stats.Total,
		Active:   stats.Active,
		Inactive: stats.Inactive,
		ValidNow: stats.ValidNow,
	})
}

// CreateVoucher handles POST /api/vouchers.
func (s *Server) CreateVoucher(ctx echo.Context) error {
	var body NewVoucher
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateVoucherCommand(id, voucher.Terms{
		Code:        body.Code,
		Type:        voucher.Type(body.Type),
		Title:       body.Title,
		MinPrice:    moneyPtr(body.MinPrice),
		MaxDiscount: moneyPtr(body.MaxDiscount),
		Amount:      moneyPtr(body.Amount),
		Percent:     body.Percent,
		UsableFrom:  fromAPIDate(body.UsableFrom),
		UsableTo:    fromAPIDate(body.UsableTo),
		Stackable:   body.Stackable,
	})
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.CreateVoucher.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: toAPIUUID(id)})
}

// SetVoucherActive handles PATCH /api/vouchers/{id}/active.
func (s *Server) SetVoucherActive(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body VoucherActive
	if err = bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetVoucherActiveCommand(id, *body.Active)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.SetVoucherActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// QuoteVoucher handles POST /api/vouchers/quote.
func (s *Server) QuoteVoucher(ctx echo.Context) error {
	var body QuoteRequest
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewQuoteVoucherQuery(body.Code, kernel.Money(body.Price))
	if err != nil {
		return badRequest(ctx, err)
	}
	quote, err := s.h.QuoteVoucher.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VoucherQuote{
		VoucherID:  toAPIUUID(quote.VoucherID),
		Code:       quote.Code,
		Price:      quote.Price.Int64(),
		Discount:   quote.Discount.Int64(),
		PriceAfter: quote.PriceAfter.Int64(),
		Eligible:   quote.Eligible,
		Reason:     string(quote.Reason),
	})
}

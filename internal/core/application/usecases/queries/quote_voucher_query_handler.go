package queries

import (
	"context"

	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/core/domain/services"
)

// VoucherReader looks vouchers up by code. ports.VoucherRepository satisfies it.
type VoucherReader interface {
	GetByCode(ctx context.Context, code string) (*voucher.Voucher, error)
}

// QuoteVoucherQueryHandler prices a voucher against the calculator's clock.
// Unknown codes give *errs.ObjectNotFoundError and switched off vouchers
// *errs.PreconditionFailedError, as when the voucher is applied to a sale.
type QuoteVoucherQueryHandler struct {
	vouchers VoucherReader
	pricing  services.DiscountCalculator
}

func NewQuoteVoucherQueryHandler(vouchers VoucherReader, pricing services.DiscountCalculator) QuoteVoucherQueryHandler {
	return QuoteVoucherQueryHandler{vouchers: vouchers, pricing: pricing}
}

func (h QuoteVoucherQueryHandler) Handle(ctx context.Context, query QuoteVoucherQuery) (VoucherQuoteView, error) {
	if err := query.Validate(); err != nil {
		return VoucherQuoteView{}, err
	}

	v, err := h.vouchers.GetByCode(ctx, query.Code())
	if err != nil {
		return VoucherQuoteView{}, err
	}
	if err = services.EnsureVoucherUsable(v); err != nil {
		return VoucherQuoteView{}, err
	}

	quote := h.pricing.Quote(v, query.Price())
	return VoucherQuoteView{
		VoucherID:  v.ID(),
		Code:       v.Code(),
		Price:      query.Price(),
		Discount:   quote.Discount,
		PriceAfter: quote.PriceAfter,
		Eligible:   quote.Eligible(),
		Reason:     quote.Reason,
	}, nil
}

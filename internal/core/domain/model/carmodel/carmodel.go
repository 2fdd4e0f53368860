// Package carmodel holds the vehicle catalog entry referenced by purchase
// orders, vehicle units and customer orders.
package carmodel

import (
	"errors"
	"fmt"
	"strings"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

var ErrCarModelIsNotConstructed = errors.New("CarModel must be created via NewCarModel")

type CarModel struct {
	id      kernel.UUID
	brand   string
	model   string
	variant string
	msrp    *kernel.Money

	isConstructed bool
}

func NewCarModel(id kernel.UUID, brand, model, variant string, msrp *kernel.Money) (*CarModel, error) {
	c := &CarModel{
		variant:       strings.TrimSpace(variant),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(brand, model),
		c.setMSRP(msrp),
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CarModel) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarModelIsNotConstructed
	}
	return nil
}

func (c *CarModel) ID() kernel.UUID {
	return c.id
}

func (c *CarModel) Brand() string {
	return c.brand
}

func (c *CarModel) Model() string {
	return c.model
}

func (c *CarModel) Variant() string {
	return c.variant
}

func (c *CarModel) MSRP() *kernel.Money {
	return c.msrp
}

// DisplayName is "Brand Model Variant", e.g. "Toyota Corolla 1.8 AT".
func (c *CarModel) DisplayName() string {
	return strings.TrimSpace(strings.Join([]string{c.brand, c.model, c.variant}, " "))
}

func (c *CarModel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CarModel) setName(brand, model string) error {
	brand, model = strings.TrimSpace(brand), strings.TrimSpace(model)
	var err error
	if brand == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("brand"))
	}
	if model == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("model"))
	}
	if err != nil {
		return err
	}
	c.brand, c.model = brand, model
	return nil
}

func (c *CarModel) setMSRP(msrp *kernel.Money) error {
	if msrp != nil && msrp.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("msrp", fmt.Errorf("%d is negative", msrp.Int64()))
	}
	c.msrp = msrp
	return nil
}

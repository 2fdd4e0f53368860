// Package queries contains read operations for retrieving system state.
// Handlers run SQL through gorm and return read models shaped for the admin
// console; they never load aggregates.
package queries

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrListCarModelsQueryIsNotConstructed = errors.New(
	"ListCarModelsQuery must be created via NewListCarModelsQuery constructor",
)

// ListCarModelsQuery lists the catalog sorted by brand, model and variant.
type ListCarModelsQuery struct {
	guard guard.ConstructorGuard
}

func NewListCarModelsQuery() ListCarModelsQuery {
	return ListCarModelsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCarModelsQuery) Validate() error {
	return q.guard.Validate(ErrListCarModelsQueryIsNotConstructed)
}

type CarModelView struct {
	ID      kernel.UUID
	Brand   string
	Model   string
	Variant string
	MSRP    *kernel.Money
}

// DisplayName joins brand, model and variant the way the console labels cars.
func (v CarModelView) DisplayName() string {
	return displayName(v.Brand, v.Model, v.Variant)
}

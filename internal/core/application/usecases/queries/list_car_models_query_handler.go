package queries

import (
	"context"

	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCarModelsQueryHandler struct {
	db *gorm.DB
}

func NewListCarModelsQueryHandler(db *gorm.DB) ListCarModelsQueryHandler {
	return ListCarModelsQueryHandler{db: db}
}

func (h ListCarModelsQueryHandler) Handle(ctx context.Context, query ListCarModelsQuery) ([]CarModelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	models := make([]CarModelView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			brand,
			model,
			variant,
			msrp
		FROM car_models
		ORDER BY brand, model, variant
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view CarModelView
		var id uuid.UUID
		var msrp *int64

		if err = rows.Scan(&id, &view.Brand, &view.Model, &view.Variant, &msrp); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.MSRP = kernel.MoneyPtr(msrp)
		models = append(models, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return models, nil
}

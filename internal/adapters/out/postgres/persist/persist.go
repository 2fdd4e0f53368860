// Package persist holds the gorm plumbing shared by the repositories:
// optimistic version checks and unique key detection.
package persist

import (
	"context"
	"errors"
	"strings"

	"dealership/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateVersioned writes every column of dto except id and created_at, but only
// when the stored row still has expectedVersion. model is an empty value of the
// DTO type; dto must already carry the incremented version.
//
// A missing row yields *errs.ObjectNotFoundError, a stale version
// *errs.VersionIsInvalidError.
func UpdateVersioned(
	ctx context.Context,
	db *gorm.DB,
	model, dto any,
	entity string,
	id uuid.UUID,
	expectedVersion int,
) error {
	result := db.WithContext(ctx).
		Model(model).
		Select("*").
		Omit("id", "created_at").
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return errs.NewObjectNotFoundError(entity, id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause(
		entity, errors.New("row was modified concurrently, reload and retry"))
}

// IsUniqueViolation recognises unique constraint failures from postgres and
// sqlite, with or without gorm's TranslateError.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// NotFound maps gorm.ErrRecordNotFound to *errs.ObjectNotFoundError and leaves
// other errors untouched.
func NotFound(err error, entity string, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, key)
	}
	return err
}

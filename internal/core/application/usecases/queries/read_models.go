package queries

import (
	"strings"

	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func displayName(brand, model, variant string) string {
	return strings.TrimSpace(strings.Join([]string{brand, model, variant}, " "))
}

func toUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

// clause collects WHERE conditions and their arguments.
type clause struct {
	conds []string
	args  []any
}

func (c *clause) add(cond string, args ...any) {
	c.conds = append(c.conds, cond)
	c.args = append(c.args, args...)
}

func (c *clause) String() string {
	if len(c.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.conds, " AND ")
}

// joinName builds a display name from columns of an outer join.
func joinName(brand, model, variant *string) string {
	if brand == nil || model == nil {
		return ""
	}
	v := ""
	if variant != nil {
		v = *variant
	}
	return displayName(*brand, *model, v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package http

import (
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// pathID binds the {id} path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromString(raw)
}

func queryString(ctx echo.Context, name string) (*string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func queryBool(ctx echo.Context, name string) (*bool, error) {
	var v *bool
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func queryMoney(ctx echo.Context, name string) (*kernel.Money, error) {
	var v *int64
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return moneyPtr(v), nil
}

func queryDate(ctx echo.Context, name string) (*kernel.Date, error) {
	var v *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return fromAPIDate(v), nil
}

func queryUUID(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw, err := queryString(ctx, name)
	if err != nil || raw == nil {
		return nil, err
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}

// bindBody decodes and validates a JSON request body.
func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := ctx.Validate(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the item display name.
	FieldName = "name"

	// FieldDescription targets the optional item description.
	FieldDescription = "description"

	// FieldLimit targets the page size of a list request.
	FieldLimit = "limit"
)

// structFields maps payload field names to Go struct field names, which
// partial struct validation expects.
var structFields = map[string]string{
	FieldName:        "Name",
	FieldDescription: "Description",
}

// maxBytesTag limits the UTF-8 encoded length of a string. The built-in
// "max" tag counts runes, which lets multi-byte names exceed column sizes.
const maxBytesTag = "maxbytes"

// ItemValidator implements the Validator interface for item payloads:
// models.Item, models.CreateItemRequest and models.ListItemsRequest, both as
// values and as pointers.
type ItemValidator struct {
	validate     *validator.Validate
	maxListLimit int
}

// NewItemValidator constructs an ItemValidator. List requests are accepted
// for limits in [0, maxListLimit]; zero selects the repository default.
func NewItemValidator(maxListLimit int) Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation(maxBytesTag, maxBytes)

	return &ItemValidator{
		validate:     v,
		maxListLimit: maxListLimit,
	}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateStruct(ctx, value, fields...)
	case *models.Item:
		return v.validateStruct(ctx, *value, fields...)

	case models.CreateItemRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.CreateItemRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.ListItemsRequest:
		return v.validateListRequest(ctx, value, fields...)
	case *models.ListItemsRequest:
		return v.validateListRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	goFields := make([]string, 0, len(fields))
	for _, f := range fields {
		goField, ok := structFields[f]
		if !ok {
			return ErrUnknownField
		}
		goFields = append(goFields, goField)
	}

	var err error
	if len(goFields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, goFields...)
	}
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	vErr := &ValidationError{}
	for _, fe := range fieldErrs {
		switch {
		case fe.Field() == FieldName && fe.Tag() == "required":
			vErr.add(FieldName, "field required", ErrEmptyName)
		case fe.Field() == FieldName:
			vErr.add(FieldName, "must be at most "+fe.Param()+" bytes", ErrNameTooLong)
		case fe.Field() == FieldDescription:
			vErr.add(FieldDescription, "must be at most "+fe.Param()+" bytes", ErrDescriptionTooLong)
		default:
			vErr.add(fe.Field(), "failed on the '"+fe.Tag()+"' rule", ErrUnknownField)
		}
	}

	return vErr
}

func (v *ItemValidator) validateListRequest(ctx context.Context, request models.ListItemsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			rule := "gte=0,lte=" + strconv.Itoa(v.maxListLimit)
			if err := v.validate.VarCtx(ctx, request.Limit, rule); err != nil {
				vErr := &ValidationError{}
				vErr.add(FieldLimit, "must be between 0 and "+strconv.Itoa(v.maxListLimit), ErrInvalidLimit)
				return vErr
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// jsonFieldName reports struct fields by their JSON name so field errors
// match the request payload.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return false
	}

	return len(field.String()) <= limit
}

// Package validation checks Cliente, Producto, Venta and Pago input before it
// reaches the store. Every function either returns a normalized record or an
// *Error listing all offending fields; nothing is persisted on failure.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidacion is matched by every *Error through errors.Is.
var ErrValidacion = errors.New("datos inválidos")

// Error maps json field names to the rule they broke (e.g. "monto": "gt").
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidacion.Error(), strings.Join(parts, ", "))
}

func (e *Error) Unwrap() error { return ErrValidacion }

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0 and max2dec work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report fields by their json (or query) name so the client can map errors to inputs.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	_ = validate.RegisterValidation("max2dec", maxDosDecimales)
}

// maxDosDecimales rejects amounts with more than two decimal places (10.005).
func maxDosDecimales(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)
		dot := strings.IndexByte(s, '.')
		return dot < 0 || len(s)-dot-1 <= 2
	case reflect.Int, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// Struct runs the struct tags of v and returns *Error on failure.
func Struct(v interface{}) error {
	fields := map[string]string{}
	collect(fields, validate.Struct(v))
	return result(fields)
}

func collect(fields map[string]string, err error) {
	if err == nil {
		return
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		for _, fe := range ves {
			fields[fe.Field()] = fe.Tag()
		}
		return
	}
	fields["_"] = err.Error()
}

func result(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}

// optional turns an empty (after trim) string into nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

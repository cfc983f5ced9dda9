package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists the request fields that failed validation, keyed by
// their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// parseBody decodes the JSON body into dst and validates it.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return validateStruct(dst)
}

func validateStruct(dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = fe.Tag()
	}
	return out
}

// flexibleID accepts an id either as a JSON number or as a numeric string,
// which is what the HTML form submits.
type flexibleID uint

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
		if len(data) == 0 {
			return nil
		}
	}

	parsed, err := parseSerial(string(data))
	if err != nil {
		return fmt.Errorf("invalid id %q", data)
	}
	*id = flexibleID(parsed)
	return nil
}

// parseSerial parses a non-negative id that fits the SERIAL (int4) columns.
func parseSerial(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseID reads the :id path parameter. Ids past the int4 range cannot exist,
// so they are reported as missing rather than handed to the driver.
func parseID(c *fiber.Ctx, missing string) (uint, error) {
	id, err := parseSerial(c.Params("id"))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fiber.NewError(fiber.StatusNotFound, missing)
		}
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

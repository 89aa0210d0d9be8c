package handlers

import (
	"fmt"
	"reflect"
	"strings"

	"estoque/internal/models"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a field name to its violation messages, in the order
// the rules were checked.
type ValidationErrors map[string][]string

// fieldRule is a required field and the JSON type it must have. Tag is the
// validator tag checking that type.
type fieldRule struct {
	Name string
	Type string
	Tag  string
}

// productRules is the rule set shared by create and update.
var productRules = []fieldRule{
	{Name: "descricao", Type: "string", Tag: "json_string"},
	{Name: "quantidade", Type: "number", Tag: "json_number"},
	{Name: "valor", Type: "number", Tag: "json_number"},
}

// ProductValidator checks decoded JSON bodies against productRules.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator creates a ProductValidator with the JSON type tags
// registered.
func NewProductValidator() *ProductValidator {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("json_string", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String
	})
	_ = v.RegisterValidation("json_number", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		}
		return false
	})
	return &ProductValidator{validate: v}
}

// Validate returns the violations found in body, or nil when it is valid.
// A key that is missing or null is blank; any present value must have the
// declared type. Empty strings and zero are present.
func (pv *ProductValidator) Validate(body map[string]interface{}) ValidationErrors {
	errs := ValidationErrors{}
	for _, rule := range productRules {
		value, ok := body[rule.Name]
		if !ok || value == nil {
			errs[rule.Name] = append(errs[rule.Name], fmt.Sprintf("%s can't be blank", attributeName(rule.Name)))
			continue
		}
		if err := pv.validate.Var(value, rule.Tag); err != nil {
			errs[rule.Name] = append(errs[rule.Name], fmt.Sprintf("%s must be of type %s", attributeName(rule.Name), rule.Type))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Fields extracts the product fields from a body that passed Validate.
func Fields(body map[string]interface{}) models.ProductFields {
	return models.ProductFields{
		Descricao:  body["descricao"].(string),
		Quantidade: toFloat(body["quantidade"]),
		Valor:      toFloat(body["valor"]),
	}
}

func toFloat(v interface{}) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return reflect.ValueOf(v).Convert(reflect.TypeOf(float64(0))).Float()
}

func attributeName(field string) string {
	return strings.ToUpper(field[:1]) + field[1:]
}

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pageza/calorie-craft/backend/internal/types"
)

// ErrInvalidBody is returned when the request body is not a JSON object.
var ErrInvalidBody = errors.New("request body must be a JSON object")

var (
	registerOnce sync.Once
	engine       *validator.Validate
)

// validatorEngine returns gin's validator with the custom tags used by
// request types registered. A failed registration is a programming error.
func validatorEngine() *validator.Validate {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected gin validator engine %T", binding.Validator.Engine()))
		}
		if err := v.RegisterValidation("maxdecimals", maxTwoDecimals); err != nil {
			panic(fmt.Sprintf("failed to register maxdecimals validation: %v", err))
		}
		engine = v
	})
	return engine
}

// maxTwoDecimals accepts numbers with at most two decimal places.
func maxTwoDecimals(fl validator.FieldLevel) bool {
	scaled := fl.Field().Float() * 100
	return math.Abs(scaled-math.Round(scaled)) <= 1e-9*math.Max(1, math.Abs(scaled))
}

// bmiField describes one field of the BMI request body in response order.
type bmiField struct {
	name  string
	label string
}

var bmiFields = []bmiField{
	{"height", "Height"},
	{"weight", "Weight"},
	{"gender", "Gender"},
}

// bindCalculateBMI decodes and validates a BMI request. Strings are never
// coerced to numbers and gender must already be lowercase. It returns the
// request when valid, or every rule each field breaks.
func bindCalculateBMI(c *gin.Context) (*types.CalculateBMIRequest, []types.FieldError, error) {
	v := validatorEngine()

	raw, err := decodeObject(c.Request.Body)
	if err != nil {
		return nil, nil, err
	}

	req := &types.CalculateBMIRequest{}
	typeErrors := map[string]string{}

	for _, f := range bmiFields {
		value, ok := raw[f.name]
		if !ok {
			continue
		}
		switch f.name {
		case "height", "weight":
			var n float64
			if err := json.Unmarshal(value, &n); err != nil || isNull(value) {
				typeErrors[f.name] = fmt.Sprintf("%s must be a number.", f.label)
				continue
			}
			if f.name == "height" {
				req.Height = &n
			} else {
				req.Weight = &n
			}
		case "gender":
			var s string
			if err := json.Unmarshal(value, &s); err != nil || isNull(value) {
				typeErrors[f.name] = fmt.Sprintf("%s must be a string.", f.label)
				continue
			}
			gender := types.Gender(s)
			req.Gender = &gender
		}
	}

	ruleErrors, err := fieldRuleErrors(v, req)
	if err != nil {
		return nil, nil, err
	}

	var problems []types.FieldError
	for _, f := range bmiFields {
		if msg, ok := typeErrors[f.name]; ok {
			problems = append(problems, types.FieldError{Field: f.name, Message: msg})
			continue
		}
		for _, msg := range ruleErrors[f.name] {
			problems = append(problems, types.FieldError{Field: f.name, Message: msg})
		}
	}

	if len(problems) > 0 {
		return nil, problems, nil
	}
	return req, nil, nil
}

// fieldRuleErrors checks every rule of every field's binding tag, so a
// field breaking several rules reports each of them. Fields are pointers;
// a nil field only reports "required".
func fieldRuleErrors(v *validator.Validate, req *types.CalculateBMIRequest) (map[string][]string, error) {
	out := map[string][]string{}
	rv := reflect.ValueOf(req).Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		rules := strings.Split(sf.Tag.Get("binding"), ",")
		field := rv.Field(i)

		if field.IsNil() {
			for _, rule := range rules {
				if rule == "required" {
					out[name] = append(out[name], ruleMessage(sf.Name, name, rule))
				}
			}
			continue
		}

		value := field.Elem().Interface()
		for _, rule := range rules {
			if rule == "" || rule == "required" {
				continue
			}
			// An empty string already fails oneof; lowercase adds nothing.
			if rule == "lowercase" && field.Elem().String() == "" {
				continue
			}
			err := v.Var(value, rule)
			if err == nil {
				continue
			}
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return nil, err
			}
			for _, fe := range verrs {
				out[name] = append(out[name], ruleMessage(sf.Name, name, fe.Tag()))
			}
		}
	}
	return out, nil
}

// decodeObject reads a JSON object into raw field values. An empty body is
// treated as an empty object.
func decodeObject(body io.Reader) (map[string]json.RawMessage, error) {
	if body == nil {
		return map[string]json.RawMessage{}, nil
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}
	return raw, nil
}

func isNull(value json.RawMessage) bool {
	return string(bytes.TrimSpace(value)) == "null"
}

func ruleMessage(label, name, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is a required field.", label)
	case "gt":
		return fmt.Sprintf("%s must be a positive value.", label)
	case "maxdecimals":
		return fmt.Sprintf("%s must have at most 2 decimal places.", label)
	case "oneof":
		return fmt.Sprintf("%s must be either male or female.", label)
	case "lowercase":
		return fmt.Sprintf("%s must only contain lowercase characters", name)
	default:
		return fmt.Sprintf("%s is not valid.", label)
	}
}

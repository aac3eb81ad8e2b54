package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestLoanTypeValidation(t *testing.T) {
	type P struct {
		Type string `json:"type" validate:"loantype"`
	}
	cv := NewValidator()

	for _, s := range []string{"PERSONAL", "auto", " Home ", "student", "BUSINESS"} {
		if err := cv.Validate(P{Type: s}); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", s, err)
		}
	}
	for _, s := range []string{"", "yacht", "PERSONAL LOAN"} {
		err := cv.Validate(P{Type: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "type", "PERSONAL, AUTO, HOME, STUDENT, BUSINESS") {
			t.Fatalf("expected loan type list for %q, got %+v", s, fe)
		}
	}
}

func TestNotBlankValidation(t *testing.T) {
	type P struct {
		Name string `json:"name" validate:"notblank"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Name: " car "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"", "   ", "\t\n"} {
		err := cv.Validate(P{Name: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "name", "must not be blank") {
			t.Fatalf("expected blank message for %q, got %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, 1000, 1500.5} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		// no json tag: reported by struct field name
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestDec2Validation_OptionalPointer(t *testing.T) {
	type P struct {
		Amount *float64 `json:"amount" validate:"omitempty,gte=0,dec2"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{}); err != nil {
		t.Fatalf("omitted amount should pass: %v", err)
	}
	ok, zero, negative, bad := 12.5, 0.0, -1.0, 12.505
	for _, v := range []*float64{&ok, &zero} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("amount %v: unexpected error: %v", *v, err)
		}
	}
	if fe := ToFieldErrors(cv.Validate(P{Amount: &negative})); !containsFieldMsg(fe, "amount", "greater than or equal to 0") {
		t.Fatalf("negative amount: %+v", fe)
	}
	if fe := ToFieldErrors(cv.Validate(P{Amount: &bad})); !containsFieldMsg(fe, "amount", "2 decimal places") {
		t.Fatalf("3 decimals: %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name  string   `json:"name" validate:"required"`
		IDs   []uint64 `json:"ids" validate:"required,min=1,dive,gt=0"`
		Nick  string   `json:"nick" validate:"max=5"`
		Min   int      `json:"min" validate:"gte=10"`
		Max   int      `json:"max" validate:"lte=5"`
		Other string   `validate:"email"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Nick: "toolong", Min: 9, Max: 6, Other: "x"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	checks := map[string]string{
		"name": "is required",
		"ids":  "is required",
		"nick": "at most 5 characters",
		"min":  "greater than or equal to 10",
		"max":  "less than or equal to 5",
	}
	for field, msg := range checks {
		if !containsFieldMsg(fe, field, msg) {
			t.Fatalf("missing %q for %s: %+v", msg, field, fe)
		}
	}
	if !containsFieldMsg(fe, "Other", "email validation failed") {
		t.Fatalf("unmapped tag should fall back to a generic message: %+v", fe)
	}

	err = cv.Validate(P{Name: "x", IDs: []uint64{1, 0}, Min: 10})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "ids[1]", "greater than 0") {
		t.Fatalf("dive error not reported per element: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

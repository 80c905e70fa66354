package utils

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsValidation(t *testing.T) {
	t.Parallel()
	err := Invalid("amount", "must be positive")
	if !IsValidation(err) {
		t.Fatal("direct validation error not detected")
	}
	if !IsValidation(fmt.Errorf("logging intake: %w", err)) {
		t.Fatal("wrapped validation error not detected")
	}
	if !IsValidation(errors.Join(errors.New("other"), err)) {
		t.Fatal("joined validation error not detected")
	}
	if IsValidation(errors.New("plain failure")) {
		t.Fatal("plain error misdetected as validation")
	}
	if IsValidation(nil) {
		t.Fatal("nil misdetected as validation")
	}
}

package customer_test

import (
	"reflect"
	"testing"
	"time"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

func TestValidateRowValid(t *testing.T) {
	t.Parallel()

	result := domain.ValidateRow(map[string]string{
		"full_name":     "  Alice Smith ",
		"email":         " Alice@Example.COM ",
		"date_of_birth": "1990-01-01",
		"timezone":      "UTC",
	})

	if !result.Valid {
		t.Fatalf("expected valid row, got errors %v", result.Errors)
	}
	if result.Parsed == nil {
		t.Fatal("expected parsed customer")
	}
	if result.Parsed.FullName != "Alice Smith" {
		t.Fatalf("unexpected full name: %q", result.Parsed.FullName)
	}
	if result.Parsed.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", result.Parsed.Email)
	}
	want := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	if !result.Parsed.DateOfBirth.Equal(want) {
		t.Fatalf("unexpected date of birth: %v", result.Parsed.DateOfBirth)
	}
	if result.Parsed.Timezone != "UTC" {
		t.Fatalf("unexpected timezone: %q", result.Parsed.Timezone)
	}
}

func TestValidateRowCollectsAllErrors(t *testing.T) {
	t.Parallel()

	result := domain.ValidateRow(map[string]string{
		"full_name":     "Bad",
		"email":         "bademail",
		"date_of_birth": "1985-12-12",
		"timezone":      "Invalid/Zone",
	})

	if result.Valid {
		t.Fatal("expected invalid row")
	}
	want := []string{"email is invalid.", "timezone is invalid."}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Parsed != nil {
		t.Fatal("expected no parsed customer for invalid row")
	}
}

func TestValidateRowMissingFields(t *testing.T) {
	t.Parallel()

	result := domain.ValidateRow(map[string]string{})

	want := []string{
		"full_name is required.",
		"email is required.",
		"date_of_birth is required.",
		"timezone is required.",
	}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestValidateRowFutureDateOfBirth(t *testing.T) {
	t.Parallel()

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	result := domain.ValidateRow(map[string]string{
		"full_name":     "Alice",
		"email":         "alice@example.com",
		"date_of_birth": future,
		"timezone":      "UTC",
	})

	want := []string{"date_of_birth must be in the past."}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestValidateRowBadDateFormat(t *testing.T) {
	t.Parallel()

	result := domain.ValidateRow(map[string]string{
		"full_name":     "Alice",
		"email":         "alice@example.com",
		"date_of_birth": "01/02/1990",
		"timezone":      "UTC",
	})

	want := []string{"date_of_birth is invalid format."}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestValidateRowAcceptsRFC3339(t *testing.T) {
	t.Parallel()

	result := domain.ValidateRow(map[string]string{
		"full_name":     "Alice",
		"email":         "alice@example.com",
		"date_of_birth": "1990-01-01T12:30:00Z",
		"timezone":      "America/New_York",
	})

	if !result.Valid {
		t.Fatalf("expected valid row, got errors %v", result.Errors)
	}
}

func TestValidateRowIdempotent(t *testing.T) {
	t.Parallel()

	row := map[string]string{
		"full_name":     "Alice",
		"email":         "bad email",
		"date_of_birth": "1990-01-01",
		"timezone":      "UTC",
	}

	first := domain.ValidateRow(row)
	second := domain.ValidateRow(row)

	if first.Valid != second.Valid {
		t.Fatalf("valid mismatch: %v vs %v", first.Valid, second.Valid)
	}
	if !reflect.DeepEqual(first.Errors, second.Errors) {
		t.Fatalf("errors mismatch: %v vs %v", first.Errors, second.Errors)
	}
	if !reflect.DeepEqual(first.Parsed, second.Parsed) {
		t.Fatalf("parsed mismatch: %v vs %v", first.Parsed, second.Parsed)
	}
}

func strPtr(s string) *string {
	return &s
}

func TestValidatePatchSingleField(t *testing.T) {
	t.Parallel()

	update, errs := domain.ValidatePatch(domain.PatchFields{
		Email: strPtr(" Bob@Example.com "),
	})

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if update.Email == nil || *update.Email != "bob@example.com" {
		t.Fatalf("unexpected email: %v", update.Email)
	}
	if update.FullName != nil || update.DateOfBirth != nil || update.Timezone != nil {
		t.Fatal("expected only email to be set")
	}
}

func TestValidatePatchNoFields(t *testing.T) {
	t.Parallel()

	_, errs := domain.ValidatePatch(domain.PatchFields{})

	want := []string{"No valid fields provided for update."}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidatePatchAllInvalid(t *testing.T) {
	t.Parallel()

	_, errs := domain.ValidatePatch(domain.PatchFields{
		Email:    strPtr("not-an-email"),
		Timezone: strPtr("Nowhere/Zone"),
	})

	want := []string{
		"email is invalid.",
		"timezone is invalid.",
		"No valid fields provided for update.",
	}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidatePatchMixedValidity(t *testing.T) {
	t.Parallel()

	update, errs := domain.ValidatePatch(domain.PatchFields{
		FullName: strPtr("Carol"),
		Email:    strPtr("broken"),
	})

	want := []string{"email is invalid."}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if update.FullName == nil || *update.FullName != "Carol" {
		t.Fatalf("expected full name parsed, got %v", update.FullName)
	}
}

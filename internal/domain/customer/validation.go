package customer

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var dateFormats = []string{"2006-01-02", time.RFC3339}

// RowValidation is the outcome of validating one raw CSV row. Parsed is
// populated only when Valid is true.
type RowValidation struct {
	Valid  bool
	Errors []string
	Parsed *Customer
}

// ValidateRow checks a raw row against the import rules. Rules are applied
// independently so every violation on a row is reported, not just the first.
// The "must be in the past" check uses a single "now" captured per call.
func ValidateRow(row map[string]string) RowValidation {
	now := time.Now()
	var errs []string

	fullName := strings.TrimSpace(row["full_name"])
	email := strings.ToLower(strings.TrimSpace(row["email"]))
	dobRaw := strings.TrimSpace(row["date_of_birth"])
	timezone := strings.TrimSpace(row["timezone"])

	if fullName == "" {
		errs = append(errs, "full_name is required.")
	}

	if email == "" {
		errs = append(errs, "email is required.")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "email is invalid.")
	}

	var dob time.Time
	if dobRaw == "" {
		errs = append(errs, "date_of_birth is required.")
	} else if parsed, err := parseISODate(dobRaw); err != nil {
		errs = append(errs, "date_of_birth is invalid format.")
	} else if !parsed.Before(now) {
		errs = append(errs, "date_of_birth must be in the past.")
	} else {
		dob = parsed
	}

	if timezone == "" {
		errs = append(errs, "timezone is required.")
	} else if _, err := time.LoadLocation(timezone); err != nil {
		errs = append(errs, "timezone is invalid.")
	}

	if len(errs) > 0 {
		return RowValidation{Valid: false, Errors: errs}
	}

	return RowValidation{
		Valid: true,
		Parsed: &Customer{
			FullName:    fullName,
			Email:       email,
			DateOfBirth: dob,
			Timezone:    timezone,
		},
	}
}

// PatchFields carries the fields of a partial customer update. A nil pointer
// means the field was absent from the request.
type PatchFields struct {
	FullName    *string
	Email       *string
	DateOfBirth *string
	Timezone    *string
}

// PatchUpdate holds the parsed subset of fields that passed validation.
type PatchUpdate struct {
	FullName    *string
	Email       *string
	DateOfBirth *time.Time
	Timezone    *string
}

func (u PatchUpdate) Empty() bool {
	return u.FullName == nil && u.Email == nil && u.DateOfBirth == nil && u.Timezone == nil
}

// ValidatePatch applies the per-field import rules to the fields that are
// present. The update is valid iff the returned error list is empty.
func ValidatePatch(fields PatchFields) (PatchUpdate, []string) {
	now := time.Now()
	var errs []string
	var update PatchUpdate

	if fields.FullName != nil {
		fullName := strings.TrimSpace(*fields.FullName)
		if fullName == "" {
			errs = append(errs, "full_name is required.")
		} else {
			update.FullName = &fullName
		}
	}

	if fields.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*fields.Email))
		if email == "" {
			errs = append(errs, "email is required.")
		} else if !emailPattern.MatchString(email) {
			errs = append(errs, "email is invalid.")
		} else {
			update.Email = &email
		}
	}

	if fields.DateOfBirth != nil {
		dobRaw := strings.TrimSpace(*fields.DateOfBirth)
		if dobRaw == "" {
			errs = append(errs, "date_of_birth is required.")
		} else if dob, err := parseISODate(dobRaw); err != nil {
			errs = append(errs, "date_of_birth is invalid format.")
		} else if !dob.Before(now) {
			errs = append(errs, "date_of_birth must be in the past.")
		} else {
			update.DateOfBirth = &dob
		}
	}

	if fields.Timezone != nil {
		timezone := strings.TrimSpace(*fields.Timezone)
		if timezone == "" {
			errs = append(errs, "timezone is required.")
		} else if _, err := time.LoadLocation(timezone); err != nil {
			errs = append(errs, "timezone is invalid.")
		} else {
			update.Timezone = &timezone
		}
	}

	if update.Empty() {
		errs = append(errs, "No valid fields provided for update.")
	}

	return update, errs
}

func parseISODate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateFormats {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

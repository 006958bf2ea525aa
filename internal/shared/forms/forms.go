package forms

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"locallibrary/internal/shared/sanitize"
)

// NormalizeList maps the three shapes a multi-value form field can arrive
// in (absent, single value, list of values) onto one canonical slice.
// Each element is sanitized individually. The result is never nil.
func NormalizeList(raw []string) []string {
	if raw == nil {
		return []string{}
	}
	return sanitize.CleanAll(raw)
}

// Messages flattens an ozzo-validation error into the ordered list of
// messages the form templates display. The order argument fixes the field
// order; ozzo reports errors as an unordered map.
func Messages(err error, order ...string) []string {
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(errs))
	for _, field := range order {
		if fieldErr, present := errs[field]; present && fieldErr != nil {
			msgs = append(msgs, fieldErr.Error())
		}
	}
	// Fields not named in order still surface, after the ordered ones.
	for field, fieldErr := range errs {
		if fieldErr == nil || contains(order, field) {
			continue
		}
		msgs = append(msgs, fieldErr.Error())
	}
	return msgs
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

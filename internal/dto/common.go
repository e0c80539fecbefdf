package dto

import "time"

// DateFormat is the wire format for date-only fields.
const DateFormat = "2006-01-02"

// ParseDate parses a date-only field already validated by the
// `datetime=2006-01-02` binding tag.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// ParseOptionalDate parses an optional date-only field, returning nil for
// the empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a date-only field for responses.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatOptionalDate renders an optional date-only field.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateFormat)
	return &s
}

// ListParams holds common pagination parameters.
type ListParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize applies the default page size and clamps out-of-range values.
func (p *ListParams) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

package types

import (
	"fmt"
	"time"
)

// dateLayout is the only accepted shape for date-classified field values.
const dateLayout = "2006-01-02"

// ValidateDate checks that value is a real calendar date in YYYY-MM-DD
// form. Blank values pass; they stand for an unset date.
func ValidateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("date %q: %w", value, ErrInvalidDate)
	}
	return nil
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "blank is allowed", value: ""},
		{name: "valid date", value: "1997-10-01"},
		{name: "leap day", value: "2024-02-29"},
		{name: "leap day in a common year", value: "2023-02-29", wantErr: true},
		{name: "month out of range", value: "2021-13-01", wantErr: true},
		{name: "wrong shape", value: "October 1, 1997", wantErr: true},
		{name: "missing zero padding", value: "1997-1-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

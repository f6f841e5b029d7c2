package iban

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "valid french iban",
			value: "FR7630006000011234567890189",
		},
		{
			name:  "valid with spaces and lowercase",
			value: "fr76 3000 6000 0112 3456 7890 189",
		},
		{
			name:  "valid german iban",
			value: "DE89370400440532013000",
		},
		{
			name:    "checksum off by one",
			value:   "FR7630006000011234567890188",
			wantErr: true,
		},
		{
			name:    "bad shape, missing check digits",
			value:   "FRX630006000011234567890189",
			wantErr: true,
		},
		{
			name:    "bad shape, too short",
			value:   "FR76300",
			wantErr: true,
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

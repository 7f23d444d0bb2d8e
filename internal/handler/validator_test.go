package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// Test boundaries
const (
	MaxUserIDLength = 100
	MinQuantity     = 1
	MaxQuantity     = 1000
)

type TestStruct struct {
	Action   string `validate:"required,action"`
	Slot     string `validate:"slot"`
	UserID   string `validate:"required,max=100,excludesall=\x00\n\r\t"`
	Quantity int    `validate:"min=1,max=1000"`
}

func validInput() TestStruct {
	return TestStruct{Action: string(domain.ActionFight), UserID: "alice", Quantity: 10}
}

func TestValidator_ActionValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		action  string
		wantErr bool
	}{
		{"fight", string(domain.ActionFight), false},
		{"talk", string(domain.ActionTalk), false},
		{"alias", "flee", false},
		{"uppercase", "MAGIC", false},

		{"empty is required", "", true},
		{"unknown", "dance", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.Action = tt.action

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_SlotValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		slot    string
		wantErr bool
	}{
		{"empty allowed", "", false},
		{"head", string(domain.SlotHead), false},
		{"ring", string(domain.SlotRing), false},
		{"unknown", "tail", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.Slot = tt.slot

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UserIDValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{"valid", "alice", false},
		{"one char", "a", false},
		{"exactly max length", strings.Repeat("a", MaxUserIDLength), false},
		{"over max length", strings.Repeat("a", MaxUserIDLength+1), true},

		{"empty", "", true},
		{"with newline", "ali\nce", true},
		{"with null byte", "ali\x00ce", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.UserID = tt.userID

			err := v.ValidateStruct(input)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_QuantityValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		{"zero", 0, true},
		{"min", MinQuantity, false},
		{"max", MaxQuantity, false},
		{"over max", MaxQuantity + 1, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.Quantity = tt.quantity

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err, "quantity=%d", tt.quantity)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	err := v.ValidateStruct(TestStruct{Action: "dance", Slot: "tail", UserID: "", Quantity: 0})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Invalid action", fields["action"])
	assert.Equal(t, "Invalid slot", fields["slot"])
	assert.Equal(t, "This field is required", fields["userid"])
	assert.Equal(t, "Must be at least 1", fields["quantity"])

	long := validInput()
	long.UserID = strings.Repeat("a", MaxUserIDLength+1)
	fields = FormatValidationError(v.ValidateStruct(long))
	assert.Equal(t, "Must be at most 100 characters", fields["userid"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDiscountDef struct {
	Name     string `validate:"required"`
	Type     string `validate:"required,oneof=percentage fixed"`
	Value    int    `validate:"gte=0,lte=100"`
	Priority int    `validate:"gte=0"`
}

func TestValidate_Success(t *testing.T) {
	d := testDiscountDef{Name: "VIP 12% Off", Type: "percentage", Value: 12, Priority: 20}
	err := Validate(d)
	assert.NoError(t, err)
}

func TestValidate_MissingRequired(t *testing.T) {
	d := testDiscountDef{Type: "percentage", Value: 12}
	err := Validate(d)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "Name")
	assert.Equal(t, "is required", fields["Name"])
}

func TestValidate_OneOf(t *testing.T) {
	d := testDiscountDef{Name: "Broken", Type: "bogus", Value: 12}
	err := Validate(d)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "Type")
	assert.Contains(t, fields["Type"], "percentage")
}

func TestValidate_OutOfRange(t *testing.T) {
	d := testDiscountDef{Name: "Over", Type: "percentage", Value: 120}
	err := Validate(d)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "Value")
	assert.Contains(t, fields["Value"], "100")
}

func TestValidationError_ErrorString(t *testing.T) {
	d := testDiscountDef{}
	err := Validate(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Name' is required")
}

package assignmentform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle("   "))
	assert.NoError(t, ValidateTitle("Essay"))
}

func TestValidateDueDate(t *testing.T) {
	assert.NoError(t, ValidateDueDate("2024-02-29"))
	assert.NoError(t, ValidateDueDate(" 2024-03-01 "))
	assert.Error(t, ValidateDueDate(""))
	assert.Error(t, ValidateDueDate("2023-02-29"))
	assert.Error(t, ValidateDueDate("03/01/2024"))
}

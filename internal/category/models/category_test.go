package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

func TestNewCategory(t *testing.T) {
	now := time.Now()
	c, err := NewCategory(" writing ", " Writing ", "", nil, true, now)
	require.NoError(t, err)
	assert.Equal(t, "writing", c.Name)
	assert.Equal(t, "Writing", c.DisplayName)
	assert.True(t, c.IsRoot())
	assert.True(t, c.IsSystem)

	_, err = NewCategory("", "X", "", nil, false, now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	_, err = NewCategory("x", " ", "", nil, false, now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestCategoryUpdate(t *testing.T) {
	c, err := NewCategory("x", "X", "", nil, false, time.Now())
	require.NoError(t, err)
	c.ID = 4

	self := id.CategoryID(4)
	err = c.Update("X", "", &self, time.Now())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	parent := id.CategoryID(1)
	later := time.Now().Add(time.Minute)
	require.NoError(t, c.Update("New X", "desc", &parent, later))
	assert.Equal(t, "New X", c.DisplayName)
	assert.Equal(t, &parent, c.ParentCategoryID)
	assert.Equal(t, later, c.UpdatedAt)
	assert.False(t, c.IsRoot())
}

func TestCreateCategoryRequestValidate(t *testing.T) {
	bad := id.CategoryID(0)
	req := CreateCategoryRequest{Name: " Data ", DisplayName: "Data", ParentCategoryID: &bad}
	req.Normalize()
	assert.Equal(t, "data", req.Name)
	assert.True(t, dErrors.HasCode(req.Validate(), dErrors.CodeValidation))
}

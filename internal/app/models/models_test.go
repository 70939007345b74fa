package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.False(t, RoleType("admin").Valid())
	assert.False(t, RoleType("").Valid())
	assert.False(t, RoleType("Student").Valid())
}

func TestApplicationStatusDecided(t *testing.T) {
	assert.True(t, StatusApproved.Decided())
	assert.True(t, StatusRejected.Decided())
	assert.False(t, StatusPending.Decided())
	assert.False(t, ApplicationStatus("waitlisted").Decided())
}

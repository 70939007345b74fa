package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScholarshipRepository_AvailableQuery(t *testing.T) {
	repo := NewScholarshipRepository(nil)

	sql, args, err := repo.availableQuery().ToSql()
	assert.NoError(t, err)
	assert.Empty(t, args)

	// Inclusive comparison: a scholarship stays available on its
	// deadline day and disappears the day after.
	assert.Contains(t, sql, "deadline >= CURRENT_DATE")
	assert.NotContains(t, sql, "deadline > CURRENT_DATE")
	assert.Contains(t, sql, "ORDER BY deadline ASC")
}

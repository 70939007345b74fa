package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 45*time.Second, ParseDuration("45s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("garbage", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-12-31")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("31-12-2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-13-01")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-12-31", FormatDate(time.Date(2026, 12, 31, 15, 4, 5, 0, time.UTC)))
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_JSON(t *testing.T) {
	date := NewDate(2024, time.March, 10)

	encoded, err := date.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2024-03-10"`, string(encoded))

	var decoded Date
	assert.NoError(t, decoded.UnmarshalJSON([]byte(`"2024-03-10"`)))
	assert.Equal(t, date, decoded)

	// null e vazio não alteram o valor
	assert.NoError(t, decoded.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, date, decoded)

	assert.Error(t, decoded.UnmarshalJSON([]byte(`"10/03/2024"`)))
}

func TestDate_Scan(t *testing.T) {
	var date Date

	assert.NoError(t, date.Scan(time.Date(2024, time.March, 10, 8, 45, 0, 0, time.Local)))
	assert.Equal(t, "2024-03-10", date.String())

	assert.NoError(t, date.Scan("2024-04-01"))
	assert.Equal(t, "2024-04-01", date.String())

	assert.NoError(t, date.Scan(nil))
	assert.True(t, date.IsZero())

	assert.Error(t, date.Scan(12345))
}

func TestGoal_Covers(t *testing.T) {
	goal := &Goal{
		PeriodStart: NewDate(2024, time.March, 1),
		PeriodEnd:   NewDate(2024, time.March, 31),
	}

	assert.True(t, goal.Covers(NewDate(2024, time.March, 1)))
	assert.True(t, goal.Covers(NewDate(2024, time.March, 31)))
	assert.True(t, goal.Covers(NewDate(2024, time.March, 15)))
	assert.False(t, goal.Covers(NewDate(2024, time.February, 29)))
	assert.False(t, goal.Covers(NewDate(2024, time.April, 1)))
}

package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
)

func TestWorkbookHasOneSheetPerGranularity(t *testing.T) {
	f, err := Workbook(Data{})
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Daily", "Weekly", "Monthly", "Quarterly"}, f.GetSheetList())
}

func TestWorkbookWritesRows(t *testing.T) {
	mood := 6
	notes := "slept badly"
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	f, err := Workbook(Data{
		Daily: []models.DailyResponse{
			{ResponseDate: date, Mood: &mood, Notes: &notes, MedicationsTaken: true},
		},
		Weekly: []models.WeeklyResponse{
			{
				ResponseDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
				PHQ9Scores:   map[string]int{"q1": 2, "q9": 3},
				PHQ9Total:    5,
			},
		},
	})
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Daily", "A1")
	require.NoError(t, err)
	assert.Equal(t, "date", header)

	gotDate, err := f.GetCellValue("Daily", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", gotDate)

	gotMood, err := f.GetCellValue("Daily", "D2")
	require.NoError(t, err)
	assert.Equal(t, "6", gotMood)

	// Weekly: week_start, phq9_q1..q9, phq9_total in column K.
	gotQ1, err := f.GetCellValue("Weekly", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", gotQ1)

	gotTotal, err := f.GetCellValue("Weekly", "K2")
	require.NoError(t, err)
	assert.Equal(t, "5", gotTotal)
}

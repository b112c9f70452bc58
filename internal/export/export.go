// Package export renders a user's questionnaire history as an XLSX
// workbook, one sheet per granularity.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
	"github.com/v4ld3m4rjr/spravattus2/internal/scoring"
)

const dateLayout = "2006-01-02"

// Data is everything a user has recorded.
type Data struct {
	Daily     []models.DailyResponse
	Weekly    []models.WeeklyResponse
	Monthly   []models.MonthlyResponse
	Quarterly []models.QuarterlyResponse
}

var dailyHeader = []string{
	"date", "sleep_quality", "sleep_hours", "mood", "anxiety", "stress_score",
	"resting_hr", "hrv", "depressed_mood", "euphoria", "irritability", "obsessions",
	"sensory_sensitivity", "social_masking", "suicide_risk", "spravatto_sessions",
	"medications_taken", "exercises_performed", "notes",
}

// Workbook builds the export file. The caller owns closing it.
func Workbook(data Data) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Daily"); err != nil {
		return nil, err
	}
	if err := writeDaily(f, data.Daily); err != nil {
		return nil, err
	}
	if err := writeWeekly(f, data.Weekly); err != nil {
		return nil, err
	}
	if err := writeMonthly(f, data.Monthly); err != nil {
		return nil, err
	}
	if err := writeQuarterly(f, data.Quarterly); err != nil {
		return nil, err
	}
	return f, nil
}

func writeDaily(f *excelize.File, rows []models.DailyResponse) error {
	if err := writeRow(f, "Daily", 1, toAny(dailyHeader)); err != nil {
		return err
	}
	for i, d := range rows {
		row := []any{
			d.ResponseDate.Format(dateLayout),
			cell(d.SleepQuality), cellF(d.SleepHours), cell(d.Mood), cell(d.Anxiety), cell(d.StressScore),
			cell(d.RestingHR), cell(d.HRV), cell(d.DepressedMood), cell(d.Euphoria), cell(d.Irritability), cell(d.Obsessions),
			cell(d.SensorySensitivity), cell(d.SocialMasking), cell(d.SuicideRisk), cell(d.SpravattoSessions),
			d.MedicationsTaken, d.ExercisesPerformed, cellS(d.Notes),
		}
		if err := writeRow(f, "Daily", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeWeekly(f *excelize.File, rows []models.WeeklyResponse) error {
	if _, err := f.NewSheet("Weekly"); err != nil {
		return err
	}
	header := append([]string{"week_start"}, instrumentColumns(scoring.PHQ9, scoring.GAD7, scoring.ASRM)...)
	if err := writeRow(f, "Weekly", 1, toAny(header)); err != nil {
		return err
	}
	for i, w := range rows {
		row := []any{w.ResponseDate.Format(dateLayout)}
		row = append(row, answerCells(scoring.PHQ9, w.PHQ9Scores)...)
		row = append(row, w.PHQ9Total)
		row = append(row, answerCells(scoring.GAD7, w.GAD7Scores)...)
		row = append(row, w.GAD7Total)
		row = append(row, answerCells(scoring.ASRM, w.ASRMScores)...)
		row = append(row, w.ASRMTotal)
		if err := writeRow(f, "Weekly", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMonthly(f *excelize.File, rows []models.MonthlyResponse) error {
	if _, err := f.NewSheet("Monthly"); err != nil {
		return err
	}
	header := append([]string{"month_start"}, instrumentColumns(scoring.EQ5D5L, scoring.YBOCS, scoring.FAST)...)
	if err := writeRow(f, "Monthly", 1, toAny(header)); err != nil {
		return err
	}
	for i, m := range rows {
		row := []any{m.ResponseDate.Format(dateLayout)}
		row = append(row, answerCells(scoring.EQ5D5L, m.EQ5D5LScores)...)
		row = append(row, m.EQ5D5LTotal)
		row = append(row, answerCells(scoring.YBOCS, m.YBOCSScores)...)
		row = append(row, m.YBOCSTotal)
		row = append(row, answerCells(scoring.FAST, m.FASTScores)...)
		row = append(row, m.FASTTotal)
		if err := writeRow(f, "Monthly", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeQuarterly(f *excelize.File, rows []models.QuarterlyResponse) error {
	if _, err := f.NewSheet("Quarterly"); err != nil {
		return err
	}
	header := append([]string{"quarter_start"}, instrumentColumns(scoring.CATQ, scoring.RAADSR)...)
	if err := writeRow(f, "Quarterly", 1, toAny(header)); err != nil {
		return err
	}
	for i, q := range rows {
		row := []any{q.ResponseDate.Format(dateLayout)}
		row = append(row, answerCells(scoring.CATQ, q.CATQScores)...)
		row = append(row, q.CATQTotal)
		row = append(row, answerCells(scoring.RAADSR, q.RAADSRScores)...)
		row = append(row, q.RAADSRTotal)
		if err := writeRow(f, "Quarterly", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// instrumentColumns emits code_q1..code_qN plus code_total per instrument.
func instrumentColumns(ins ...scoring.Instrument) []string {
	var cols []string
	for _, in := range ins {
		for i := 1; i <= in.Questions; i++ {
			cols = append(cols, fmt.Sprintf("%s_q%d", in.Code, i))
		}
		cols = append(cols, in.Code+"_total")
	}
	return cols
}

func answerCells(in scoring.Instrument, answers map[string]int) []any {
	cells := make([]any, 0, in.Questions)
	for i := 1; i <= in.Questions; i++ {
		if v, ok := answers[fmt.Sprintf("q%d", i)]; ok {
			cells = append(cells, v)
		} else {
			cells = append(cells, nil)
		}
	}
	return cells
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cellRef, &values)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func cell(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func cellF(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func cellS(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

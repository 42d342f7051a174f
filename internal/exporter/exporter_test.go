package exporter

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"scorecli/internal/grading"
	"scorecli/pkg/contracts/domain"
)

func sampleData() ReportData {
	records := []domain.ScoreRecord{
		{Name: "Alice", Class: "A", Subject: "Science", RawScore: "90"},
		{Name: "Bob", Class: "A", Subject: "Science", RawScore: "80"},
		{Name: "Carol", Class: "B", Subject: "English", RawScore: "bad"},
	}
	graded, summary := grading.Run(records, grading.DefaultThresholds(), grading.PipelineFold)
	return ReportData{Summary: summary, Records: graded}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleData()))

	out := buf.String()
	assert.Contains(t, out, "STUDENT SCORE SUMMARY")
	assert.Contains(t, out, "Overall Average Score: 85.00")
	assert.Contains(t, out, "Valid Scores Processed: 2")
	assert.Contains(t, out, "Invalid Scores: 1")
	assert.Contains(t, out, "  A: 85.00")
	assert.Contains(t, out, "  Science: 85.00")
	// The invalid record's groups must not appear.
	assert.NotContains(t, out, "  B:")
	assert.NotContains(t, out, "English")
}

func TestRenderTextNoValidScores(t *testing.T) {
	records := []domain.ScoreRecord{
		{Name: "Dave", Class: "C", Subject: "Math", RawScore: "oops"},
	}
	_, summary := grading.Run(records, grading.DefaultThresholds(), grading.PipelineFold)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, ReportData{Summary: summary}))

	assert.Contains(t, buf.String(), "Overall Average Score: N/A (no valid scores)")
}

func TestWriteGradedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "graded.csv")
	data := sampleData()

	require.NoError(t, WriteGradedCSV(context.Background(), path, data.Records, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, utf8BOM), "CSV should start with UTF-8 BOM")

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Name", "Class", "Subject", "Score", "Grade"}, rows[0])
	assert.Equal(t, []string{"Alice", "A", "Science", "90.00", "A"}, rows[1])
	assert.Equal(t, []string{"Carol", "B", "English", "", "Error"}, rows[3])
}

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	data := sampleData()

	require.NoError(t, WriteSummaryCSV(context.Background(), path, data.Summary, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Group", "Key", "Mean", "Count"}, rows[0])
	assert.Equal(t, []string{"overall", "", "85.00", "2"}, rows[1])
	assert.Equal(t, []string{"class", "A", "85.00", ""}, rows[2])
	assert.Equal(t, []string{"subject", "Science", "85.00", ""}, rows[3])
	assert.Len(t, rows, 4, "invalid record's groups must be absent")
}

func TestWriteJSONEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, WriteJSON(context.Background(), path, sampleData(), nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var envelope SummaryEnvelope
	require.NoError(t, json.Unmarshal(raw, &envelope))

	assert.NotEmpty(t, envelope.ReportID)
	assert.False(t, envelope.GeneratedAt.IsZero())
	assert.Equal(t, "score_summary_v1", envelope.Format)
	require.NotNil(t, envelope.Data.Summary)
	assert.Equal(t, 2, envelope.Data.Summary.ValidCount)
	assert.Equal(t, 1, envelope.Data.Summary.InvalidCount)
	assert.Len(t, envelope.Data.Records, 3)
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(context.Background(), path, sampleData(), nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	recordRows, err := f.GetRows("Records")
	require.NoError(t, err)
	require.Len(t, recordRows, 4)
	assert.Equal(t, []string{"Name", "Class", "Subject", "Score", "Grade"}, recordRows[0])
	assert.Equal(t, "Alice", recordRows[1][0])
	assert.Equal(t, "Error", recordRows[3][4])

	summaryRows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.NotEmpty(t, summaryRows)
	assert.Equal(t, []string{"Group", "Key", "Mean", "Count"}, summaryRows[0])
	assert.Equal(t, "overall", summaryRows[1][0])
	assert.Equal(t, "85.00", summaryRows[1][2])
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "90.00", formatScore(grading.ValidScore(90)))
	assert.Equal(t, "85.50", formatScore(grading.ValidScore(85.5)))
	assert.Equal(t, "", formatScore(grading.InvalidScore()))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]float64{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, sortedKeys(m))
}

func TestRenderJSONIsIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleData()))
	assert.True(t, strings.Contains(buf.String(), "\n  \"report_id\""))
}

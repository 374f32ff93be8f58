package history

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []SessionRecord {
	t1 := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)
	return []SessionRecord{
		{
			StudentName:      "Alex Lee",
			SessionID:        "20260115_143000_Alex_Lee",
			SessionTimestamp: t1,
			TypedResponses: []TypedEntry{
				{QuestionID: "A1", Question: "Why retail?", Response: "I like people.", WordCount: 3, AIFeedback: "Expand on that."},
				{QuestionID: "A2", Question: "Your strengths?", Response: "Patience and focus.", WordCount: 3},
			},
			VideoResponses: []TimedEntry{
				{QuestionID: "B1", Question: "A tough customer?", Notes: "Stumbled on the opening."},
			},
		},
		{
			StudentName:      "Sam Poe",
			SessionID:        "20260116_100000_Sam_Poe",
			SessionTimestamp: t2,
			TypedResponses: []TypedEntry{
				{QuestionID: "A1", Question: "Why retail?", Response: "Flexible hours suit my studies.", WordCount: 5},
			},
			VideoResponses: []TimedEntry{},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())
	assert.Equal(t, 2, s.Sessions)
	assert.Equal(t, 2, s.Students)
	assert.Equal(t, 3, s.TypedResponses)
	assert.Equal(t, 1, s.TimedResponses)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestStudents(t *testing.T) {
	records := sampleRecords()
	// Duplicate session for an existing student.
	records = append(records, SessionRecord{StudentName: "Alex Lee"})

	assert.Equal(t, []string{"Alex Lee", "Sam Poe"}, Students(records))
}

func TestFilterByStudent(t *testing.T) {
	records := sampleRecords()
	got := FilterByStudent(records, "Sam Poe")
	require.Len(t, got, 1)
	assert.Equal(t, "20260116_100000_Sam_Poe", got[0].SessionID)

	assert.Empty(t, FilterByStudent(records, "Nobody"))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5) // header + 4 responses

	assert.Equal(t, []string{"Student", "Date", "Type", "Question", "Response", "Feedback"}, rows[0])

	assert.Equal(t, []string{"Alex Lee", "2026-01-15 14:30", "Typed", "Why retail?", "I like people.", "Expand on that."}, rows[1])

	// Timed reflections carry notes in the Response column and no feedback.
	assert.Equal(t, "Video", rows[3][2])
	assert.Equal(t, "Stumbled on the opening.", rows[3][4])
	assert.Equal(t, "", rows[3][5])
}

func TestWriteCSV_EmptyRecordsStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

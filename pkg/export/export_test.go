package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Presenze",
		Columns: []string{"Allievo", "Data", "Stato"},
		Rows: [][]string{
			{"s1", "2026-03-01", "presente"},
			{"s2", "2026-03-01", "assente"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Allievo,Data,Stato", lines[0])
	assert.Equal(t, "s2,2026-03-01,assente", lines[2])
}

func TestCSVRejectsRaggedRows(t *testing.T) {
	table := sampleTable()
	table.Rows = append(table.Rows, []string{"too", "short"})

	_, err := NewCSVExporter().Render(table)
	assert.Error(t, err)
}

func TestCSVRequiresColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleTable())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestPDFRejectsRaggedRows(t *testing.T) {
	table := sampleTable()
	table.Rows = append(table.Rows, []string{"too", "short"})

	_, err := NewPDFExporter().Render(table)
	assert.Error(t, err)
}

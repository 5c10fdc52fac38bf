package worklog

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/logaudit/internal/models"
)

func readAll(t *testing.T, r *Reader) []models.LogRecord {
	t.Helper()
	var out []models.LogRecord
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func TestMapHeader(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   FieldMap
	}{
		{"both", []string{"Date", "Description"}, FieldMap{Date: 0, Description: 1}},
		{"reordered with extras", []string{"User", "Description", "Hours", "Date"}, FieldMap{Date: 3, Description: 1}},
		{"bom and spaces", []string{"\ufeffDate", " Description "}, FieldMap{Date: 0, Description: 1}},
		{"no date", []string{"Description"}, FieldMap{Date: -1, Description: 0}},
		{"duplicate keeps first", []string{"Date", "Date", "Description"}, FieldMap{Date: 0, Description: 2}},
		{"case sensitive", []string{"date", "description"}, FieldMap{Date: -1, Description: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapHeader(tt.header))
		})
	}
}

func TestReader_Records(t *testing.T) {
	input := "Date,Description,User\n" +
		"2024-03-01,\"[Coding] fix bug 2.5, [Review] PR-1 1\",ana\n" +
		"2024-03-02\n" +
		",[Debug] crash 4\n"

	r, err := NewReader(strings.NewReader(input))
	require.NoError(t, err)
	recs := readAll(t, r)
	require.Len(t, recs, 3)

	assert.Equal(t, "2024-03-01", recs[0].Date)
	assert.Equal(t, "[Coding] fix bug 2.5, [Review] PR-1 1", recs[0].Description)
	assert.Equal(t, 2, recs[0].Line)

	assert.Equal(t, "2024-03-02", recs[1].Date)
	assert.Equal(t, "", recs[1].Description)

	assert.Equal(t, models.UnknownDate, recs[2].Date)
	assert.Equal(t, "[Debug] crash 4", recs[2].Description)
}

func TestReader_MissingColumns(t *testing.T) {
	r, err := NewReader(strings.NewReader("Notes\nsomething\n"))
	require.NoError(t, err)
	recs := readAll(t, r)
	require.Len(t, recs, 1)
	assert.Equal(t, models.UnknownDate, recs[0].Date)
	assert.Equal(t, "", recs[0].Description)
}

func TestReader_EmptyInput(t *testing.T) {
	_, err := NewReader(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReader_InvalidUTF8(t *testing.T) {
	r, err := NewReader(strings.NewReader("Date,Description\n2024-01-01,caf\xe9 1\n"))
	require.NoError(t, err)
	_, err = r.Next()
	assert.True(t, errors.Is(err, ErrEncoding), "got %v", err)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Description\n2024-01-01,[Testing] x 1\n"), 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	recs := readAll(t, f.Reader)
	require.Len(t, recs, 1)
	assert.Equal(t, "[Testing] x 1", recs[0].Description)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package fetcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRowField(t *testing.T) {
	row := Row{"Name": "  Go  ", "Empty": "", "Blank": "   "}

	testCases := []struct {
		column string
		def    string
		want   string
	}{
		{"Name", "x", "Go"},
		{"Empty", "x", "x"},
		{"Blank", "x", ""},
		{"Missing", "x", "x"},
		{"Missing", "", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, row.Field(tc.column, tc.def), "Field(%q, %q)", tc.column, tc.def)
	}
}

func TestCSVReaderUTF8(t *testing.T) {
	path := writeFile(t, "Skills.csv", []byte("\ufeffName\nGo\n\"Gestion, projet\"\nÉlectronique\n"))

	table, err := NewCSVReader().ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "utf-8", table.Encoding)
	assert.Equal(t, []string{"Name"}, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Go", table.Rows[0].Field("Name", ""))
	assert.Equal(t, "Gestion, projet", table.Rows[1].Field("Name", ""))
	assert.Equal(t, "Électronique", table.Rows[2].Field("Name", ""))
}

func TestCSVReaderLatin1Fallback(t *testing.T) {
	// "Diplôme,École" encodé en ISO-8859-1
	data := []byte("Degree Name,School Name\nDipl\xf4me,\xc9cole\n")
	path := writeFile(t, "Education.csv", data)

	table, err := NewCSVReader().ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "latin-1", table.Encoding)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Diplôme", table.Rows[0].Field("Degree Name", ""))
	assert.Equal(t, "École", table.Rows[0].Field("School Name", ""))
}

func TestCSVReaderEncodingsExhausted(t *testing.T) {
	path := writeFile(t, "Profile.csv", []byte("First Name\nAl\xe9\n"))

	_, err := NewCSVReader(DefaultEncodings[0]).ReadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDecoder)
}

func TestCSVReaderShortAndDelimiterOnlyRows(t *testing.T) {
	path := writeFile(t, "Positions.csv", []byte("Company Name,Title,Finished On\nAcme,Dev\n,,\n\nGlobex,Ops,2020-01\n"))

	table, err := NewCSVReader().ReadFile(path)
	require.NoError(t, err)

	// 只有分隔符的行保留为全空行，真正的空行被跳过
	require.Len(t, table.Rows, 3)
	_, ok := table.Rows[0]["Finished On"]
	assert.False(t, ok)
	assert.Equal(t, "x", table.Rows[1].Field("Company Name", "x"))
	assert.Equal(t, "x", table.Rows[1].Field("Finished On", "x"))
	assert.Equal(t, "Globex", table.Rows[2].Field("Company Name", ""))
	assert.Equal(t, "2020-01", table.Rows[2].Field("Finished On", ""))
}

func TestCSVReaderEmptyFile(t *testing.T) {
	path := writeFile(t, "Languages.csv", nil)

	table, err := NewCSVReader().ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestCSVReaderMissingFile(t *testing.T) {
	_, err := NewCSVReader().ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var monthsFR = [13]string{"", "Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre"}

func TestFormatLinkedInDate(t *testing.T) {
	testCases := []struct {
		input string
		mode  DateMode
		want  string
	}{
		{"2021-03-15", DateFull, "Mars 2021"},
		{"2021-08", DateFull, "Août 2021"},
		{"2021-12-01", DateFull, "Décembre 2021"},
		{"2019", DateFull, "2019"},
		{"2019", DateYearOnly, "2019"},
		{"2021-03-15", DateYearOnly, "2021"},
		{"", DateFull, ""},
		{"", DateYearOnly, ""},
		{"not-a-date", DateFull, "not-a-date"},
		{"2021-13", DateFull, "2021-13"},
		{"2021-00", DateFull, " 2021"},
		{"2021--05", DateFull, "2021--05"},
		{"Jan 2020", DateFull, "Jan 2020"},
		{"Jan 2020", DateYearOnly, "Jan 2020"},
	}

	for _, tc := range testCases {
		got := FormatLinkedInDate(tc.input, tc.mode, monthsFR)
		assert.Equal(t, tc.want, got, "FormatLinkedInDate(%q, %v)", tc.input, tc.mode)
	}
}

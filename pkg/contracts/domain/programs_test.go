package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramOrder(t *testing.T) {
	order := ProgramOrder()

	require.Len(t, order, 15)
	assert.Equal(t, "Informatics", order[0])
	assert.Equal(t, "MSNNL", order[14])

	// Mutating the returned slice must not affect the canonical list
	order[0] = "tampered"
	assert.Equal(t, "Informatics", ProgramOrder()[0])
}

func TestProgramRank(t *testing.T) {
	tests := []struct {
		program string
		rank    int
		known   bool
	}{
		{"Informatics", 0, true},
		{"CyberOps", 1, true},
		{"Data Science", 5, true},
		{"MSNNL", 14, true},
		{"Unknown", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			rank, ok := ProgramRank(tt.program)
			assert.Equal(t, tt.known, ok)
			if tt.known {
				assert.Equal(t, tt.rank, rank)
			}
		})
	}
}

func TestProgramDisplayName(t *testing.T) {
	assert.Equal(t, "Health Care Informatics", ProgramDisplayName("Informatics"))
	assert.Equal(t, "Law Enforcement and Public Safety Leadership", ProgramDisplayName("LEPSL"))
	assert.Equal(t, "MSN Nursing Leadership", ProgramDisplayName("MSNNL"))
	// Unknown programs fall back to the code
	assert.Equal(t, "XYZ", ProgramDisplayName("XYZ"))
}

func TestEveryProgramHasDisplayName(t *testing.T) {
	for _, program := range ProgramOrder() {
		assert.NotEqual(t, program, ProgramDisplayName(program), "program %s has no display name", program)
	}
}

func TestPageRecord_Key(t *testing.T) {
	rec := PageRecord{Program: "MED", Channel: "Paid Search", LandingPage: "/apply", Sessions: 10}
	assert.Equal(t, PageKey{Program: "MED", Channel: "Paid Search", LandingPage: "/apply"}, rec.Key())

	row := SummaryRow{Program: "MED", Channel: "Paid Search", LandingPage: "/apply"}
	assert.Equal(t, rec.Key(), row.Key())
}

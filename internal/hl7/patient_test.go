package hl7

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPatient(t *testing.T) {
	req := require.New(t)

	p := ExtractPatient(Parse(sampleMessage))

	req.True(p.Found)
	req.Equal("M177323145^^^MAYO", p.ID)
	req.Equal("John Doe", p.Name)
	req.Equal("19000101", p.DateOfBirth)
	req.Equal("M", p.Gender)
	req.Equal("100 Main St^^Rochester^MN", p.Address)
}

func TestExtractPatient_NoPID(t *testing.T) {
	req := require.New(t)

	p := ExtractPatient(Parse("MSH|^~\\&|LAB\nOBX|1|CE"))

	req.False(p.Found)
	for _, v := range []string{p.ID, p.Name, p.DateOfBirth, p.Gender, p.Address} {
		req.Equal(Unknown, v)
	}
}

func TestExtractPatient_NilMessage(t *testing.T) {
	p := ExtractPatient(nil)
	require.Equal(t, Patient{ID: "-", Name: "-", DateOfBirth: "-", Gender: "-", Address: "-"}, p)
}

func TestExtractPatient_ShortSegment(t *testing.T) {
	req := require.New(t)

	p := ExtractPatient(Parse("PID|1||M1"))

	req.True(p.Found)
	req.Equal("M1", p.ID)
	req.Equal(Unknown, p.Name)
	req.Equal(Unknown, p.DateOfBirth)
	req.Equal(Unknown, p.Gender)
	req.Equal(Unknown, p.Address)
}

func TestExtractPatient_FirstPIDWins(t *testing.T) {
	p := ExtractPatient(Parse("PID|1||FIRST\nPID|2||SECOND"))
	require.Equal(t, "FIRST", p.ID)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Doe^John", "John Doe"},
		{"Doe^John^Q^Jr", "John Doe"},
		{"Doe", "Doe"},
		{"Doe^", " Doe"},
		{"^John", "John "},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, displayName(tt.raw), tt.raw)
	}
}

func TestExtractHeader(t *testing.T) {
	req := require.New(t)

	h := ExtractHeader(Parse(sampleMessage))

	req.Equal("LAB", h.SendingApp)
	req.Equal("MAYO", h.SendingFacility)
	req.Equal("20220802003337", h.Timestamp)
	req.Equal("ORU^R01", h.MessageType)
	req.Equal("CTRL123", h.ControlID)
	req.Equal("2.5.1", h.Version)
}

func TestExtractHeader_NoMSH(t *testing.T) {
	h := ExtractHeader(Parse("PID|1"))
	require.Equal(t, Unknown, h.MessageType)
	require.Equal(t, Unknown, h.ControlID)
}

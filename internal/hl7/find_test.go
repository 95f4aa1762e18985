package hl7

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	msg := Parse(sampleMessage)
	tests := []struct {
		name  string
		term  string
		want  int
		found bool
	}{
		{"third of five", "B523004918", 2, true},
		{"case insensitive", "undetected", 3, true},
		{"upper term", "NON-VARIOLA", 4, true},
		{"segment name", "obx", 3, true},
		{"across separator", "OBR|1", 2, true},
		{"first match wins", "Orthopoxvirus", 2, true},
		{"surrounding whitespace trimmed", "  doe^john  ", 1, true},
		{"no match", "influenza", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, found, err := Find(msg, tt.term)
			require.NoError(t, err)
			require.Equal(t, tt.found, found)
			require.Equal(t, tt.want, idx)
		})
	}
}

func TestFind_NameOnlySegmentProbe(t *testing.T) {
	// the probe carries a separator even when there are no fields
	idx, found, err := Find(Parse("MSH|a\nEVN"), "evn|")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, idx)
}

func TestFind_EmptyTerm(t *testing.T) {
	for _, term := range []string{"", "   ", "\t\n"} {
		idx, found, err := Find(Parse(sampleMessage), term)
		require.ErrorIs(t, err, ErrEmptySearchTerm)
		require.False(t, found)
		require.Equal(t, -1, idx)
	}
}

func TestFind_EmptyTermBeforeMessageCheck(t *testing.T) {
	_, _, err := Find(nil, " ")
	require.ErrorIs(t, err, ErrEmptySearchTerm)
}

func TestFind_NoMessage(t *testing.T) {
	_, _, err := Find(nil, "PID")
	require.ErrorIs(t, err, ErrNoMessage)

	_, _, err = Find(Parse(""), "PID")
	require.ErrorIs(t, err, ErrNoMessage)
}

func TestFind_RepeatedCallsRestart(t *testing.T) {
	msg := Parse(sampleMessage)
	for i := 0; i < 3; i++ {
		idx, found, err := Find(msg, "orthopoxvirus")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 2, idx)
	}
}

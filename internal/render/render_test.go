package render

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/stretchr/testify/require"
)

func TestHighlight(t *testing.T) {
	req := require.New(t)

	req.Equal("no change", Highlight("no change", ""))
	req.Equal("no change", Highlight("no change", "   "))
	req.Equal("a "+colorBoldRed+"DOE"+colorReset+" b "+colorBoldRed+"doe"+colorReset,
		Highlight("a DOE b doe", "doe"))
	req.Equal("missing", Highlight("missing", "zzz"))
}

func TestHighlight_MultiByteText(t *testing.T) {
	req := require.New(t)

	// KELVIN SIGN lower-cases to a one-byte "k"
	out := Highlight("\u212aa", "a")
	req.True(utf8.ValidString(out))
	req.Equal("\u212a"+colorBoldRed+"a"+colorReset, out)

	out = Highlight("\u0130stanbul", "stan")
	req.True(utf8.ValidString(out))
	req.Equal("\u0130"+colorBoldRed+"stan"+colorReset+"bul", out)

	// folded matches keep the original bytes
	out = Highlight("\u212aelvin", "k")
	req.True(utf8.ValidString(out))
	req.Equal(colorBoldRed+"\u212a"+colorReset+"elvin", out)

	out = Highlight("Stra\u00dfe STRASSE", "strasse")
	req.True(utf8.ValidString(out))
	req.Equal("Stra\u00dfe "+colorBoldRed+"STRASSE"+colorReset, out)
}

func TestSegments(t *testing.T) {
	var buf bytes.Buffer
	msg := hl7.Parse("MSH|a\nPID|b\nOBX|c")

	Segments(&buf, msg, 1, Options{})

	require.Equal(t, "  0  MSH\n> 1  PID\n  2  OBX\n", buf.String())
}

func TestFields(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	Fields(&buf, hl7.ParseSegment("PID|1||M177"), Options{})

	out := buf.String()
	req.True(strings.HasPrefix(out, "Segment: PID\n"))
	req.Contains(out, "Field #")
	req.Contains(out, "M177")
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	// title, header, three fields
	req.Len(lines, 5)
	req.True(strings.HasPrefix(lines[2], "1"))
	req.True(strings.HasPrefix(lines[4], "3"))
}

func TestPatient(t *testing.T) {
	var buf bytes.Buffer

	Patient(&buf, hl7.ExtractPatient(nil))

	require.Equal(t, "Patient Information\n"+
		"  Patient ID: -\n"+
		"  Name: -\n"+
		"  DOB: -\n"+
		"  Gender: -\n"+
		"  Address: -\n", buf.String())
}

func TestMessage(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	msg := hl7.Parse("MSH|^~\\&|LAB||||20240101||ADT^A01|C9\nPID|1||7||Doe^Jane")

	Message(&buf, "a.hl7", msg, Options{})

	out := buf.String()
	req.Contains(out, "--- a.hl7 [ADT^A01] C9 20240101 ---")
	req.Contains(out, "1  PID")
	req.Contains(out, "Name: Jane Doe")
}

package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
)

// SegmentLine returns the 1-based file line of the segment at index seg.
// Out-of-range indexes fall back to line 1.
func SegmentLine(path string, seg int) (int, error) {
	text, err := hl7.Load(path)
	if err != nil {
		return 0, err
	}
	lines := hl7.SegmentLines(text)
	if seg < 0 || seg >= len(lines) {
		return 1, nil
	}
	return lines[seg], nil
}

// OpenSegment opens path in editor, positioned on segment seg.
func OpenSegment(editor, path string, seg int) error {
	lineNum, err := SegmentLine(path, seg)
	if err != nil {
		return err
	}

	cmd := EditorCommand(editor, path, lineNum)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// EditorCommand builds the editor invocation for the editors that accept a
// start line. Other editors just get the file.
func EditorCommand(editor, filePath string, lineNum int) *exec.Cmd {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		fields = []string{"less"}
	}
	name, extra := fields[0], fields[1:]

	var args []string
	switch {
	case strings.Contains(name, "vim") || strings.Contains(name, "nvim"):
		args = []string{fmt.Sprintf("+%d", lineNum), filePath}
	case strings.Contains(name, "code"):
		args = []string{"--goto", filePath + ":" + strconv.Itoa(lineNum)}
	case strings.Contains(name, "less"):
		args = []string{"+" + strconv.Itoa(lineNum), filePath}
	default:
		args = []string{filePath}
	}

	return exec.Command(name, append(extra, args...)...)
}

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLoggingWriter_Levels(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingWriter(&buf, LogConfig{})
	t.Cleanup(func() { SetupLogging(LogConfig{}) })

	Debug("hidden at info level")
	Info("visible message", "module", "ads")

	out := buf.String()
	assert.NotContains(t, out, "hidden at info level")
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "module=ads")
}

func TestSetupLoggingWriter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingWriter(&buf, LogConfig{Verbose: true})
	t.Cleanup(func() { SetupLogging(LogConfig{}) })

	Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}

func TestSetupLoggingWriter_TimestampsOverride(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingWriter(&buf, LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	t.Cleanup(func() { SetupLogging(LogConfig{}) })

	Info("no clock")
	line := buf.String()
	assert.Contains(t, line, "no clock")
	// A timestamp would put a digit before the level word.
	assert.True(t, strings.HasPrefix(strings.TrimSpace(stripANSI(line)), "INFO"), "got %q", line)
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}

func TestFormatArtifactLine(t *testing.T) {
	line := stripANSI(FormatArtifactLine("file", "modules/ads/ads_manager.go", StatusCreated))
	assert.True(t, strings.HasPrefix(line, "a:file/modules/ads/ads_manager.go"), line)
	assert.True(t, strings.HasSuffix(line, StatusCreated), line)
}

func TestFormatArtifactLine_LongPathStillPadded(t *testing.T) {
	long := strings.Repeat("x", 80)
	line := stripANSI(FormatArtifactLine("asset", long, StatusMissing))
	assert.Contains(t, line, "  "+StatusMissing)
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, stripANSI(FormatCheckmark("done")), "✔ done")
}

func TestStatusStyle_UnknownIsUnstyled(t *testing.T) {
	assert.Equal(t, "whatever", StatusStyle("whatever").Render("whatever"))
}

// stripANSI removes escape sequences so assertions see plain text.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

package basia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// excerpt
// ---------------------------------------------------------------------------

func TestExcerpt_LongText(t *testing.T) {

	text := strings.Repeat("abcde", 50)

	require.Equal(t, text[:100], excerpt(text, 100))
	require.Equal(t, text[:150], excerpt(text, 150))
	require.Equal(t, text[:200], excerpt(text, 200))
}

func TestExcerpt_ShortTextUntouched(t *testing.T) {
	require.Equal(t, "hello", excerpt("hello", 100))
	require.Equal(t, "", excerpt("", 100))
}

func TestExcerpt_ExactBoundary(t *testing.T) {
	text := strings.Repeat("x", 100)
	require.Equal(t, text, excerpt(text, 100))
}

func TestExcerpt_CountsRunesNotBytes(t *testing.T) {

	text := strings.Repeat("ä", 120)

	got := excerpt(text, 100)
	require.Equal(t, 100, len([]rune(got)))
	require.Equal(t, strings.Repeat("ä", 100), got)
}

// ---------------------------------------------------------------------------
// status / variant / failure enums
// ---------------------------------------------------------------------------

func TestCheckStatus_StringParse(t *testing.T) {

	require.Equal(t, "pass", CheckStatus(CheckStatusPass).String())
	require.Equal(t, "fail", CheckStatus(CheckStatusFail).String())

	require.Equal(t, CheckStatus(CheckStatusPass), ParseCheckStatus("pass"))
	require.Equal(t, CheckStatus(CheckStatusFail), ParseCheckStatus("fail"))
	require.Equal(t, CheckStatus(CheckStatusFail), ParseCheckStatus("garbage"))
}

func TestCheckVariant_String(t *testing.T) {
	require.Equal(t, "text", VariantText.String())
	require.Equal(t, "vision", VariantVision.String())
	require.Equal(t, "vision-text-only", VariantVisionTextOnly.String())
}

func TestFailureKind_String(t *testing.T) {
	require.Equal(t, "none", FailureNone.String())
	require.Equal(t, "transport", FailureTransport.String())
	require.Equal(t, "malformed", FailureMalformed.String())
}

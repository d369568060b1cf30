package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("   \n\t  "))
}

func TestNormalizeText_CRLF(t *testing.T) {
	assert.Equal(t, "first line second line", NormalizeText("first line\r\nsecond line"))
	assert.Equal(t, "a b c", NormalizeText("a\rb\rc"))
}

func TestNormalizeText_BoldMarkers(t *testing.T) {
	assert.Equal(t, "Led migration to AWS", NormalizeText("**Led** migration to **AWS**"))
}

func TestNormalizeText_LeadingBullets(t *testing.T) {
	input := "• Built pipelines\n• Shipped features"
	assert.Equal(t, "Built pipelines Shipped features", NormalizeText(input))
}

func TestNormalizeText_InlineBullet(t *testing.T) {
	assert.Equal(t, "Go Python Rust", NormalizeText("Go • Python • Rust"))
}

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeText("a   b\t\tc"))
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"**Led** migration\r\n• reduced costs by 23%",
		"plain text",
		"  spaced   out  ",
	}
	for _, input := range inputs {
		once := NormalizeText(input)
		assert.Equal(t, once, NormalizeText(once))
	}
}

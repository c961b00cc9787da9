package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "Rice", fitText("Rice", 10))
	assert.Equal(t, "Basmat...", fitText("Basmati Rice", 9))
	assert.Equal(t, "Bas", fitText("Basmati", 3))
	assert.Equal(t, "Basmati", fitText("Basmati", 0))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "Dal   ", padRight("Dal", 6))
	assert.Equal(t, "Bas...", padRight("Basmati Rice", 6))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹120", formatAmount(120))
	assert.Equal(t, "₹99.5", formatAmount(99.5))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("PRODUCTS", "", "q: quit")

	assert.Contains(t, page, "PRODUCTS")
	assert.Contains(t, page, "  -\n")
	assert.Contains(t, page, "q: quit")
	assert.Contains(t, page, "ctrl+c: quit")
}

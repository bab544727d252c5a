package color

import (
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			assert.Equal(t, tt.expected, lipgloss.HasDarkBackground())
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "PASS", stripansi.Strip(Status(true)))
	assert.Equal(t, "FAIL", stripansi.Strip(Status(false)))
}

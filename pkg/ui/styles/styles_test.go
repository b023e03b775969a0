package styles_test

import (
	"testing"

	"github.com/arthur-debert/mwbotctl/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Bold", "Muted", "MutedItalic", "Label", "FilePath", "DryRunBanner",
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := styles.StyleRegistry[name]
			assert.True(t, ok, "style %s should be defined", name)
		})
	}

	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.Equal(t, 2, styles.GetStyle("Label").GetPaddingLeft())
}

func TestGetStyleUnknown(t *testing.T) {
	assert.Equal(t, "text", styles.GetStyle("DoesNotExist").Render("text"))
}

func TestLoadStylesFromData(t *testing.T) {
	data := []byte(`
colors:
  red: {light: "#ff0000", dark: "#ff8888"}
styles:
  Alarm:
    bold: true
    foreground: red
  Plain:
    foreground: missing
`)
	require.NoError(t, styles.LoadStylesFromData(data))
	t.Cleanup(func() {
		// Restore the embedded set for other tests
		require.NoError(t, styles.LoadStylesFromData(styles.EmbeddedStyles()))
	})

	alarm := styles.GetStyle("Alarm")
	assert.True(t, alarm.GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ff8888"}, alarm.GetForeground())

	_, isNoColor := styles.GetStyle("Plain").GetForeground().(lipgloss.NoColor)
	assert.True(t, isNoColor)
}

func TestLoadStylesFromDataRejectsBadInput(t *testing.T) {
	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
	assert.Error(t, styles.LoadStylesFromData([]byte("colors: {}\n")))
}

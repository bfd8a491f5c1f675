package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	data := WelcomeData{Name: "Ada", Email: "ada@example.com", AppName: "readlog", AppURL: "https://readlog.test"}.ToMap()

	text, html, err := Render(Welcome, data)
	require.NoError(t, err)

	assert.Contains(t, text, "Hi Ada,")
	assert.Contains(t, text, "ada@example.com")
	assert.Contains(t, text, "https://readlog.test")
	assert.Contains(t, html, `<a href="https://readlog.test">`)
}

func TestRenderWelcome_Defaults(t *testing.T) {
	text, _, err := Render(Welcome, map[string]any{"Email": "x@example.com"})
	require.NoError(t, err)
	assert.Contains(t, text, "Hi reader,")
	assert.Contains(t, text, "Your reading log account")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, err := Render("missing", nil)
	assert.Error(t, err)
}

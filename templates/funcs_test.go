package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrappend(t *testing.T) {
	assert.Equal(t, "", strappend())
	assert.Equal(t, "/component/c1/files", strappend("/component/", "c1", "/files"))
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, hasPrefix("folder/file.txt", "folder/"))
	assert.False(t, hasPrefix("folder/file.txt", "other/"))
}

func TestToFuzzyTime(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "just now", toFuzzyTime(now))
	assert.Equal(t, "just now", toFuzzyTime(now.Unix()))
	assert.Equal(t, "just now", toFuzzyTime(int(now.Unix())))
	assert.Equal(t, "", toFuzzyTime("not a time"))
}

func TestToPreciseTime(t *testing.T) {
	assert.Equal(t, "2021-01-01T00:00:00Z", toPreciseTime(int64(1609459200)))
	assert.Equal(t, "", toPreciseTime(nil))
}

func TestLoadTemplateContainsAllViews(t *testing.T) {
	master := LoadTemplate()
	for _, name := range []string{
		"index", "files", "grid-rows", "file-history", "blob",
		"login", "error", "redirect", "base/header", "base/footer",
	} {
		assert.NotNilf(t, master.Lookup(name), "missing view %s", name)
	}
}

func TestErrorViewRendering(t *testing.T) {
	master := LoadTemplate()
	var sb strings.Builder
	err := master.Lookup("error").Execute(&sb, ErrorTemplateModel{
		ErrorCode: 404,
		ErrorMessage: "Component c1 not found",
	})
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "Error 404")
	assert.Contains(t, sb.String(), "Component c1 not found")
}

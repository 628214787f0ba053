package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKind(t *testing.T) {
	assert.True(t, Format("table").IsTable())
	assert.True(t, Format("table {{.Name}}").IsTable())
	assert.False(t, Format("json").IsTable())

	assert.True(t, Format("json").IsJSON())
	assert.False(t, Format("table").IsJSON())

	assert.True(t, Format("pretty").IsPrettyJSON())
	assert.True(t, Format("yaml").IsYAML())

	assert.True(t, Format("table {{.Name}}").Contains("{{.Name}}"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("", 8))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "short", Truncate("short", 8))
	assert.Equal(t, "exactly", Truncate("exactly", 7))
	assert.Equal(t, "a 64-bit...", Truncate("a 64-bit SmartOS image", 8))
}

func TestSubHeaderContextLabel(t *testing.T) {
	header := SubHeaderContext{}
	assert.Equal(t, "uuid", header.Label("uuid"))
	assert.Equal(t, "image size", header.Label("image_size"))
	assert.Equal(t, "size", header.Label("files.size"))
	assert.Equal(t, "billing tags", header.Label("billing-tags"))
}

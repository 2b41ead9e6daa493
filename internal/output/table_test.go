package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	out := NewTable("NAME", "STATE").
		Row("ads", "installed").
		Row("auth", "missing").
		String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "ads")
	assert.Contains(t, out, "missing")
}

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree([]FileEntry{
		{Path: "modules/ads/ads_manager.go", Description: "Ad mediation entry point"},
		{Path: "x.go", Description: "short"},
	}, 30)

	assert.Contains(t, out, "modules/ads/ads_manager.go    Ad mediation entry point")
	assert.Contains(t, out, "x.go")
}

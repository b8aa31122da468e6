package accounts

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTree_Golden(t *testing.T) {
	tests := map[string]*Chart{
		"three_level": threeLevelChart(),
		"default":     DefaultChart(),
	}
	for name, chart := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderTree(&buf, chart, RenderOptions{}))
			goldie.New(t).Assert(t, name, buf.Bytes())
		})
	}
}

func TestRenderTree_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTree(&buf, threeLevelChart(), RenderOptions{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[", "placeholders should be colored")
}

func TestRenderTree_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTree(&buf, NewChart(), RenderOptions{}))
	assert.Empty(t, buf.String())
}

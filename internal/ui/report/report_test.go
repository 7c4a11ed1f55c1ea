package report

import (
	"bytes"
	"testing"

	"callscan/internal/core/config"
	"callscan/internal/core/errors"
	"callscan/internal/core/ports"
	"callscan/internal/engine/parser"
	"callscan/internal/engine/usage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() ports.AnalyzeResult {
	return ports.AnalyzeResult{
		Origin:   "<sample>",
		Language: "typescript",
		Target:   "app",
		Usages:   usage.Result{"app": {CallNum: 2, CallLines: []int{6, 10}}},
		Stats:    usage.Stats{NodesVisited: 120, Matches: 2},
	}
}

func TestFormatNode(t *testing.T) {
	assert.Equal(t, "{ app: { callNum: 2, callLines: [ 6, 10 ] } }", FormatNode(sampleResult().Usages))
	assert.Equal(t, "{}", FormatNode(usage.Result{}))
	assert.Equal(t, "{}", FormatNode(nil))

	multi := usage.Result{
		"b":   {CallNum: 1, CallLines: []int{3}},
		"a-b": {CallNum: 1, CallLines: []int{2}},
	}
	assert.Equal(t, "{ 'a-b': { callNum: 1, callLines: [ 2 ] }, b: { callNum: 1, callLines: [ 3 ] } }", FormatNode(multi))

	assert.Equal(t, "{ '$app': { callNum: 1, callLines: [ 4 ] } }", FormatNode(usage.Result{"$app": {CallNum: 1, CallLines: []int{4}}}))
	assert.Equal(t, "{ _app1: { callNum: 1, callLines: [ 4 ] } }", FormatNode(usage.Result{"_app1": {CallNum: 1, CallLines: []int{4}}}))
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON(sampleResult().Usages)
	require.NoError(t, err)
	assert.Equal(t, `{"app":{"callNum":2,"callLines":[6,10]}}`, out)

	out, err = FormatJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, `{}`, out)
}

func TestFormatPretty(t *testing.T) {
	res := sampleResult()
	res.SyntaxErrors = []parser.Location{{Line: 3, Column: 5}}

	out := FormatPretty(res)
	assert.Contains(t, out, `References to "app" in <sample>`)
	assert.Contains(t, out, "2 references on lines 6, 10")
	assert.Contains(t, out, "1 syntax error, first at 3:5")
	assert.Contains(t, out, "typescript · 120 nodes · 0 skipped")

	res.Usages = usage.Result{}
	assert.Contains(t, FormatPretty(res), "no references found")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, config.FormatNode, sampleResult()))
	assert.Equal(t, "{ app: { callNum: 2, callLines: [ 6, 10 ] } }\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, config.FormatJSON, sampleResult()))
	assert.Equal(t, "{\"app\":{\"callNum\":2,\"callLines\":[6,10]}}\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, config.FormatPretty, sampleResult()))
	assert.Contains(t, buf.String(), "2 references")

	err := Render(&buf, "xml", sampleResult())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotSupported))
}

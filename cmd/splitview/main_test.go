package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRun_ScriptFileJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-s", "testdata/shared.yaml", "-format", "json"}, nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	js := stdout.String()
	assert.Equal(t, "package main\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}", gjson.Get(js, "buffers.0.text").String())
	assert.Equal(t, int64(1), gjson.Get(js, "buffers.0.undo").Int())

	local := gjson.Get(js, `views.#(name=="local")`)
	assert.Equal(t, int64(3), local.Get("cursors.0.position.0").Int())
	assert.Equal(t, int64(18), local.Get("cursors.0.position.1").Int())

	remote := gjson.Get(js, `views.#(name=="remote")`)
	assert.Equal(t, "remote-client", remote.Get("target").String())
	assert.Equal(t, int64(4), remote.Get("cursors.0.position.0").Int())
	assert.Equal(t, int64(1), remote.Get("cursors.0.position.1").Int())
}

func TestRun_StdinYAML(t *testing.T) {
	script := "buffers: [{name: m, text: abc}]\nviews: [{name: a, buffer: m}]\nsteps: [{action: insert, text: x}]\n"

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-log-level", "error"}, strings.NewReader(script), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "text: xabc")
}

func TestRun_Version(t *testing.T) {
	var stdout bytes.Buffer
	code := run(context.Background(), []string{"-v"}, nil, &stdout, &bytes.Buffer{})

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "splitview dev")
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-h"}, nil, &bytes.Buffer{}, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Usage: splitview")
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"bad flag", []string{"-nope"}, "", "flag provided but not defined"},
		{"bad format", []string{"-format", "xml"}, "", "unknown format"},
		{"bad log level", []string{"-log-level", "loud"}, "", "invalid log level"},
		{"missing script", []string{"-s", "testdata/missing.yaml"}, "", "opening script"},
		{"bad step", nil, "steps: [{action: close-buffer, buffer: x}]", "step 0 (close-buffer)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := run(context.Background(), tt.args, strings.NewReader(tt.stdin), &bytes.Buffer{}, &stderr)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

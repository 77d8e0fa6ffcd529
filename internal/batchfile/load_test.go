// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchfile

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/xdt/xdotool"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFs(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)
}

func TestLoad_LocalFs(t *testing.T) {
	memFs(t, map[string]string{
		"/batches/desktop.yaml": "name: desktop\nsteps:\n  - command: get_desktop\n",
		"/batches/desktop.hcl":  "step \"get_num_desktops\" {}\n",
	})

	def, err := Load(context.Background(), "/batches/desktop.yaml")
	require.NoError(t, err)
	assert.Equal(t, "desktop", def.Label())
	assert.Equal(t, "/batches/desktop.yaml", def.Source)
	assert.Equal(t, []Step{{Command: xdotool.CmdGetDesktop}}, def.Steps)

	def, err = Load(context.Background(), "/batches/desktop.hcl")
	require.NoError(t, err)
	assert.Equal(t, "/batches/desktop.hcl", def.Label(), "unnamed definitions use their source")
	assert.Equal(t, []Step{{Command: xdotool.CmdGetNumDesktops}}, def.Steps)
}

func TestLoad_DecodeErrorNamesSource(t *testing.T) {
	memFs(t, map[string]string{"/bad.yaml": "steps:\n  - command: nope\n"})

	_, err := Load(context.Background(), "/bad.yaml")
	require.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "/bad.yaml")
}

func TestLoad_Getter(t *testing.T) {
	memFs(t, nil)

	for _, src := range []string{"./testdata/focus.yaml", "./testdata/focus.hcl"} {
		t.Run(src, func(t *testing.T) {
			def, err := Load(context.Background(), src)
			require.NoError(t, err)

			assert.Equal(t, "focus terminal", def.Name)
			assert.Equal(t, []string{
				"search", "--class", "--onlyvisible", "xterm",
				"windowactivate", "--sync",
				"getwindowgeometry",
			}, sorted(def.Batch().Args()))
		})
	}
}

// sorted puts the two search switches in a fixed order, HCL sorts flags by name.
func sorted(argv []string) []string {
	if len(argv) > 2 && argv[1] == "--onlyvisible" && argv[2] == "--class" {
		argv[1], argv[2] = argv[2], argv[1]
	}

	return argv
}

func TestFetch_Errors(t *testing.T) {
	memFs(t, nil)

	tests := []struct {
		name string
		url  string
	}{
		{name: "empty url", url: ""},
		{name: "missing local file", url: "./testdata/does-not-exist.yaml"},
		{name: "unreachable git repository", url: "git::http://notexist//file.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _, err := fetch(context.Background(), tt.url)
			require.ErrorIs(t, err, ErrGetBatchFile)
			assert.Nil(t, data)
		})
	}
}

func TestSplitFileNameFromGetterURL(t *testing.T) {
	tests := []struct {
		url      string
		wantURL  string
		wantFile string
	}{
		{
			url:      "git::https://github.com/org/repo.git//batches/focus.yaml?ref=main",
			wantURL:  "git::https://github.com/org/repo.git//batches?ref=main",
			wantFile: "focus.yaml",
		},
		{
			url:      "git::https://github.com/org/repo.git//focus.hcl",
			wantURL:  "git::https://github.com/org/repo.git",
			wantFile: "focus.hcl",
		},
		{url: "https://example.com/focus.yaml"},
		{url: "git::https://github.com/org/repo.git//"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, f := splitFileNameFromGetterURL(tt.url)
			assert.Equal(t, tt.wantURL, u)
			assert.Equal(t, tt.wantFile, f)
		})
	}
}

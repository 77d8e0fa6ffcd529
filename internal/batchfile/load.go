// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
	"github.com/spf13/afero"
)

// ErrGetBatchFile is returned when a definition file cannot be fetched.
var ErrGetBatchFile = errors.New("failed to get batch file")

// FsFactory returns the filesystem local definition files are read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Load fetches and decodes a definition. The source is a local path or a
// go-getter URL such as git::https://example.com/repo.git//batches/focus.yaml?ref=main.
// Files ending in .hcl are decoded as HCL, anything else as YAML.
func Load(ctx context.Context, src string) (*Definition, error) {
	data, name, err := fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	var def *Definition

	switch strings.ToLower(path.Ext(name)) {
	case ".hcl":
		def, err = DecodeHCL(name, data)
	default:
		def, err = DecodeYAML(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	def.Source = src
	ctxlog.Debug(ctx, "loaded batch definition", "source", src, "name", def.Name, "steps", len(def.Steps))

	return def, nil
}

// fetch reads local files through FsFactory and everything else with go-getter.
// It also returns the file name, used to pick the decoder.
func fetch(ctx context.Context, src string) ([]byte, string, error) {
	if src == "" {
		return nil, "", ErrGetBatchFile
	}

	fs := FsFactory()
	if ok, _ := afero.Exists(fs, src); ok {
		data, err := afero.ReadFile(fs, src)
		if err != nil {
			return nil, "", errors.Join(ErrGetBatchFile, err)
		}

		return data, filepath.Base(src), nil
	}

	return getURL(ctx, src)
}

// getURL retrieves a file with go-getter, which can only fetch directories
// for most sources, and reads the file from a temporary download directory.
func getURL(ctx context.Context, url string) ([]byte, string, error) {
	tmpDir, err := os.MkdirTemp("", "xdt-getter-*")
	if err != nil {
		return nil, "", errors.Join(ErrGetBatchFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrGetBatchFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, "", errors.Join(ErrGetBatchFile, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return nil, "", fmt.Errorf("%w: invalid URL format: %s", ErrGetBatchFile, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrGetBatchFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrGetBatchFile, err)
	}

	return data, fileName, nil
}

const (
	getterPathSeparator = "//"
	getterRefSeparator  = "?"
	minimumGetterParts  = 3 // scheme, host and path
)

// splitFileNameFromGetterURL returns the getter URL of the directory holding
// the file, with any query kept, and the file name.
func splitFileNameFromGetterURL(url string) (string, string) {
	var query string

	parts := strings.Split(url, getterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]
	if p, q, ok := strings.Cut(last, getterRefSeparator); ok {
		last, query = p, q
	}

	if last == "" || filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)

	dir := filepath.Dir(last)
	if dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	newURL := strings.Join(parts, getterPathSeparator)

	if query != "" {
		newURL += getterRefSeparator + query
	}

	return newURL, fileName
}

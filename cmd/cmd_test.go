// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Commands(t *testing.T) {
	names := make([]string, 0, len(RootCmd.Commands))
	for _, c := range RootCmd.Commands {
		names = append(names, c.Name)
		assert.NotNil(t, c.Before, "%s resolves the shared state", c.Name)
	}

	assert.Equal(t, []string{"run", "exec", "commands", "watch", "schema"}, names)

	flags := make([]string, 0, len(RootCmd.Flags))
	for _, f := range RootCmd.Flags {
		flags = append(flags, f.Names()[0])
	}

	assert.Subset(t, flags, []string{"display", "binary", "timeout", "format", "dry-run", "out"})
}

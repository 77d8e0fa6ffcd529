// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCursor(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   []string
	}{
		{name: "empty", stdout: "", want: nil},
		{name: "only whitespace", stdout: "\n \n\t", want: nil},
		{name: "single line", stdout: "42\n", want: []string{"42"}},
		{name: "trailing whitespace stripped", stdout: "1\n2\n\n  ", want: []string{"1", "2"}},
		{name: "inner blank line kept", stdout: "a\n\nb\n", want: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.stdout)
			assert.Equal(t, len(tt.want), c.Remaining())

			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, c.Rest())
			}

			assert.True(t, c.Done())
		})
	}
}

func TestCursor_Next(t *testing.T) {
	c := NewCursor("one\ntwo\n")

	line, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	_, err = c.Next()
	require.ErrorIs(t, err, ErrOutputExhausted)
}

func TestCursor_Take(t *testing.T) {
	c := NewCursor("1\n2\n3\n")

	lines, err := c.Take(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, lines)

	_, err = c.Take(2)
	require.ErrorIs(t, err, ErrOutputExhausted)
	assert.Equal(t, 1, c.Remaining(), "short take consumes nothing")

	assert.Equal(t, []string{"3"}, c.Rest())
	assert.Empty(t, c.Rest())
}

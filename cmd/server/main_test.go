package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr string
	}{
		{name: "serve by default", args: nil, want: options{}},
		{name: "migrate up", args: []string{"-migrate", "up"}, want: options{migrate: "up"}},
		{name: "seed", args: []string{"-seed"}, want: options{seed: true}},
		{
			name: "migrate and seed",
			args: []string{"-migrate=up", "-seed"},
			want: options{migrate: "up", seed: true},
		},
		{name: "unknown migration", args: []string{"-migrate", "sideways"}, wantErr: "unknown migration command"},
		{name: "stray argument", args: []string{"serve"}, wantErr: "unexpected arguments"},
		{name: "unknown flag", args: []string{"-port", "1"}, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseFlags(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command line with output redirected to a temporary
// file and returns the file's contents.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out")
	root := newRootCmd()
	root.SetArgs(append(args, "-o", out))
	if err := root.Execute(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(data), nil
}

// csvFile writes data to a file in a temporary directory and returns
// its path.
func csvFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0666))
	return path
}

func TestJoinCmd(t *testing.T) {
	left := csvFile(t, "bands.csv", "name,band\nMick,Stones\nJohn,Beatles\n")
	right := csvFile(t, "instruments.csv", "name,plays\nJohn,guitar\nKeith,guitar\n")

	// Inner join on the inferred shared key.
	got, err := run(t, "join", left, right)
	require.NoError(t, err)
	assert.Equal(t, "name,band,plays\nJohn,Beatles,guitar\n", got)

	// Left join keeps unmatched left rows with missing fills.
	got, err = run(t, "join", "--how", "left", left, right)
	require.NoError(t, err)
	assert.Equal(t, "name,band,plays\nMick,Stones,\nJohn,Beatles,guitar\n", got)

	// Anti join keeps only unmatched rows.
	got, err = run(t, "join", "--how", "anti", "--on", "name", left, right)
	require.NoError(t, err)
	assert.Equal(t, "name,band\nMick,Stones\n", got)
}

func TestJoinCmdCross(t *testing.T) {
	suits := csvFile(t, "suits.csv", "suit\nspades\nhearts\n")
	ranks := csvFile(t, "ranks.csv", "rank\nace\nking\n")

	got, err := run(t, "join", "--how", "cross", suits, ranks)
	require.NoError(t, err)
	assert.Equal(t, "suit,rank\nspades,ace\nspades,king\nhearts,ace\nhearts,king\n", got)

	_, err = run(t, "join", "--how", "cross", "--on", "suit", suits, ranks)
	assert.ErrorContains(t, err, "--on does not apply")
}

func TestJoinCmdErrors(t *testing.T) {
	left := csvFile(t, "a.csv", "a\n1\n")
	right := csvFile(t, "b.csv", "b\n2\n")

	_, err := run(t, "join", "--how", "sideways", left, right)
	assert.ErrorContains(t, err, "unknown join variant")

	// No shared columns to infer keys from.
	_, err = run(t, "join", left, right)
	assert.Error(t, err)
}

func TestBindCmd(t *testing.T) {
	a := csvFile(t, "a.csv", "name,band\nMick,Stones\n")
	b := csvFile(t, "b.csv", "name,plays\nJohn,guitar\n")

	got, err := run(t, "bind", a, b)
	require.NoError(t, err)
	assert.Equal(t, "name,band,plays\nMick,Stones,\nJohn,,guitar\n", got)

	got, err = run(t, "bind", "--cols", a, b)
	require.NoError(t, err)
	assert.Equal(t, "name,band,name.2,plays\nMick,Stones,John,guitar\n", got)

	_, err = run(t, "bind", "--rows", "--cols", a, b)
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestAggCmd(t *testing.T) {
	in := csvFile(t, "members.csv", "name,band,plays\nMick,Stones,10\nJohn,Beatles,20\nPaul,Beatles,40\n")

	got, err := run(t, "agg", "--by", "band", "--mean", "plays", "--count", in)
	require.NoError(t, err)
	assert.Equal(t, "band,mean plays,count\nStones,10,1\nBeatles,30,2\n", got)

	_, err = run(t, "agg", "--by", "band", in)
	assert.ErrorContains(t, err, "no statistics requested")
}

func TestPrintCmd(t *testing.T) {
	in := csvFile(t, "in.csv", "name,terms\nWashington,2\nAdams,\n")

	got, err := run(t, "print", in)
	require.NoError(t, err)
	want := strings.Join([]string{
		"name        terms",
		"Washington      2",
		"Adams          NA",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestPlotCmd(t *testing.T) {
	in := csvFile(t, "points.csv", "x,y,band\n0,0,a\n1,1,b\n2,4,a\n3,9,b\n")

	got, err := run(t, "plot", in)
	require.NoError(t, err)
	assert.Contains(t, got, "<svg")
	assert.Equal(t, 4, strings.Count(got, "<circle"))

	spec := csvFile(t, "plot.yaml", "color: band\nlayers:\n  - mark: lines\n")
	got, err = run(t, "plot", "--spec", spec, in)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(got, "<polyline"))

	bad := csvFile(t, "bad.yaml", "layers:\n  - mark: squiggles\n")
	_, err = run(t, "plot", "--spec", bad, in)
	assert.ErrorContains(t, err, "unknown mark")

	empty := csvFile(t, "empty.csv", "")
	_, err = run(t, "plot", empty)
	assert.ErrorContains(t, err, "no columns")
}

func TestFormatFlag(t *testing.T) {
	in := csvFile(t, "in.csv", "a,b\n1,2\n")

	got, err := run(t, "join", "--format", "text", in, in)
	require.NoError(t, err)
	assert.Equal(t, "a  b\n1  2\n", got)

	_, err = run(t, "join", "--format", "sideways", in, in)
	assert.ErrorContains(t, err, "unknown format")
}

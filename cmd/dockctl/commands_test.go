package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGmapCmd(t *testing.T) {
	dir := t.TempDir()
	gmap := writeFile(t, dir, "gmap.csv", "part,part_name,plant,plant_doh,asl_qty,in_transit_asl_to_plant\nP1,Bracket,AR,3,10,0\n")
	scale := writeFile(t, dir, "scale.csv", "item,location,oh_quantity,al_quantity,av_quantity\n")

	out, err := run(t, "gmap", "--gmap", gmap, "--scale", scale)
	require.NoError(t, err)
	assert.Contains(t, out, "P1,0,0,0,0,10,-10,0,AR,3\n")
}

func TestFixPartsCmd_OutFile(t *testing.T) {
	dir := t.TempDir()
	details := writeFile(t, dir, "details.csv", "item,ctn_qty,pal_qty\nA,10,4\n")
	master := writeFile(t, dir, "master.csv", "part,desc,std_pk,pal_qty\nA,Bolt,5,3\n")
	dest := filepath.Join(dir, "fix.csv")

	out, err := run(t, "fix-parts", "--details", details, "--master", master, "--out", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "A,Bolt,GM,,,,A,,,,1,1,1,1,1,10,0,0,0,0,4,0,0,0,0,\n", string(written))
}

func TestItemsCmd_MissingFlag(t *testing.T) {
	_, err := run(t, "items")
	assert.Error(t, err)
}

func TestItemsCmd_MissingFile(t *testing.T) {
	_, err := run(t, "items", "--file", filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorContains(t, err, "failed to open")
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	items := writeFile(t, dir, "items.csv", "part\n")

	_, err := run(t, "--log-level", "loud", "items", "--file", items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

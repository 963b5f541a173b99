package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

func TestSum(t *testing.T) {
	r, err := sum("-", strings.NewReader("abc"))
	assert.NoError(t, err)
	assert.Equal(t, r.name, "-")
	assert.Equal(t, r.size, int64(3))

	var buf bytes.Buffer
	printList(&buf, []result{r})
	assert.Equal(t, buf.String(), "900150983cd24fb0d6963f7d28e17f72  -\n")
}

func TestSumFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "empty")
	assert.NoError(t, os.WriteFile(name, nil, 0o644))

	r, err := sumFile(name)
	assert.NoError(t, err)
	assert.Equal(t, r.size, int64(0))

	var buf bytes.Buffer
	printTable(&buf, []result{r})
	assert.That(t, strings.Contains(buf.String(), "d41d8cd98f00b204e9800998ecf8427e"))
	assert.That(t, strings.Contains(buf.String(), name))

	_, err = sumFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

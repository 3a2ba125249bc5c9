package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CountTestSuite struct {
	suite.Suite
}

func writeEmptyFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

// buildTestTree creates three files at the root and two subdirectories
// holding one file each.
func buildTestTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	for _, name := range []string{"a.xml", "b.xml", "c.xml"} {
		writeEmptyFile(t, filepath.Join(root, name))
	}

	for _, dir := range []string{"2023", "2024"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
		writeEmptyFile(t, filepath.Join(root, dir, "d.xml"))
	}

	return root
}

func (suite *CountTestSuite) TestCountEmptyDirectory() {
	count, err := Count(suite.T().TempDir(), false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, count)
}

func (suite *CountTestSuite) TestCountFilesOnly() {
	root := buildTestTree(suite.T())

	count, err := Count(root, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, count)
}

func (suite *CountTestSuite) TestCountIncludingFolders() {
	root := buildTestTree(suite.T())

	count, err := Count(root, true)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, count)
}

func (suite *CountTestSuite) TestCountMissingRoot() {
	_, err := Count(filepath.Join(suite.T().TempDir(), "nope"), false)

	assert.ErrorIs(suite.T(), err, fs.ErrNotExist)
}

func TestCount(t *testing.T) {
	suite.Run(t, new(CountTestSuite))
}

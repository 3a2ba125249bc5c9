package revision

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PathTestSuite struct {
	suite.Suite
}

func (suite *PathTestSuite) TestBuildPath() {
	path, err := BuildPath("data", "Example page", testFragment)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), filepath.Join("data", "Example page", "2023", "11", "1183562929.xml"), path)
}

func (suite *PathTestSuite) TestBuildPathZeroPadsMonth() {
	fragment := `<revision><id>42</id><timestamp>2019-03-02T08:00:00Z</timestamp></revision>`

	path, err := BuildPath("root", "Page", fragment)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), filepath.Join("root", "Page", "2019", "03", "42.xml"), path)
}

func (suite *PathTestSuite) TestBuildPathIsDeterministic() {
	first, err := BuildPath("data", "Example page", testFragment)
	assert.NoError(suite.T(), err)

	second, err := BuildPath("data", "Example page", testFragment)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), first, second)
}

func (suite *PathTestSuite) TestBuildPathMissingID() {
	fragment := `<revision><timestamp>2019-03-02T08:00:00Z</timestamp></revision>`

	_, err := BuildPath("root", "Page", fragment)

	assert.ErrorIs(suite.T(), err, ErrAttributeNotFound)
}

func (suite *PathTestSuite) TestBuildPathBadTimestamp() {
	fragment := `<revision><id>42</id><timestamp>yesterday</timestamp></revision>`

	_, err := BuildPath("root", "Page", fragment)

	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrAttributeNotFound)
}

func TestPath(t *testing.T) {
	suite.Run(t, new(PathTestSuite))
}

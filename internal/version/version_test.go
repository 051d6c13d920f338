package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanVersion(t *testing.T) {
	defer func(v, c string) { Version, GitCommit = v, c }(Version, GitCommit)

	Version, GitCommit = "1.2.3", ""
	assert.Equal(t, "v1.2.3", HumanVersion())

	GitCommit = "abc1234"
	assert.Equal(t, "v1.2.3 (abc1234)", HumanVersion())
}

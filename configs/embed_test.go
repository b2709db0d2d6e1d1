//go:build unit

package configs

import (
	"testing"

	"github.com/lerenn/orphans/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigYAML_MatchesBuiltInDefaults(t *testing.T) {
	var parsed config.Config
	require.NoError(t, yaml.Unmarshal(DefaultConfigYAML, &parsed))

	assert.Equal(t, config.DefaultConfig(), parsed)
}

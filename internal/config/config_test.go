package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/highcard/internal/deck"
	"github.com/arcanaland/highcard/internal/types"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("XDG_CONFIG_HOME", s.dir)
	s.T().Setenv(EnvSeed, "")
	s.T().Setenv(EnvNoColor, "")
}

func (s *ConfigTestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))
	return path
}

func (s *ConfigTestSuite) TestDefaultPathUsesXDG() {
	s.Equal(filepath.Join(s.dir, "highcard", "config.toml"), GetConfigFilePath())
}

func (s *ConfigTestSuite) TestLoadMissingFileUsesDefaultsWithoutWriting() {
	cfg, err := LoadConfig("")
	s.Require().NoError(err)

	s.Equal(deck.DefaultSeed, cfg.Seed)
	s.Equal(DefaultInitialShuffles, cfg.InitialShuffles)
	s.False(cfg.NoColor)
	s.NoFileExists(GetConfigFilePath())
	s.NoDirExists(filepath.Join(s.dir, "highcard"))
}

func (s *ConfigTestSuite) TestInitCreatesDefault() {
	cfg, err := InitConfig("")
	s.Require().NoError(err)
	s.Equal(Default(), cfg)

	var onDisk Config
	_, err = toml.DecodeFile(GetConfigFilePath(), &onDisk)
	s.Require().NoError(err)
	s.Equal(*cfg, onDisk)
}

func (s *ConfigTestSuite) TestLoadExistingFile() {
	path := s.writeFile("custom.toml", "seed = 7\ninitial_shuffles = 5\nno_color = true\n")

	cfg, err := LoadConfig(path)
	s.Require().NoError(err)
	s.Equal(&Config{Seed: 7, InitialShuffles: 5, NoColor: true}, cfg)
}

func (s *ConfigTestSuite) TestMissingKeysKeepDefaults() {
	path := s.writeFile("partial.toml", "seed = 11\n")

	cfg, err := LoadConfig(path)
	s.Require().NoError(err)
	s.Equal(int64(11), cfg.Seed)
	s.Equal(DefaultInitialShuffles, cfg.InitialShuffles)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "malformed toml", content: "seed = = 3"},
		{name: "wrong type", content: "seed = \"abc\""},
		{name: "negative shuffles", content: "initial_shuffles = -1"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			path := s.writeFile("bad.toml", tc.content)
			_, err := LoadConfig(path)
			s.True(types.IsGameError(err, types.ErrInvalidConfig), "got %v", err)
		})
	}
}

func (s *ConfigTestSuite) TestEnvOverrides() {
	path := s.writeFile("env.toml", "seed = 1\n")
	s.T().Setenv(EnvSeed, "123")
	s.T().Setenv(EnvNoColor, "true")

	cfg, err := LoadConfig(path)
	s.Require().NoError(err)
	s.Equal(int64(123), cfg.Seed)
	s.True(cfg.NoColor)
}

func (s *ConfigTestSuite) TestInvalidEnvSeed() {
	s.T().Setenv(EnvSeed, "lots")

	_, err := LoadConfig("")
	s.True(types.IsGameError(err, types.ErrInvalidConfig))
}

func (s *ConfigTestSuite) TestInitKeepsExistingFile() {
	path := s.writeFile("existing.toml", "seed = 5\n")

	cfg, err := InitConfig(path)
	s.Require().NoError(err)
	s.Equal(int64(5), cfg.Seed)

	content, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("seed = 5\n", string(content))
}

func (s *ConfigTestSuite) TestSetSeed() {
	path := s.writeFile("seed.toml", "seed = 1\ninitial_shuffles = 3\n")

	s.Require().NoError(SetSeed(path, 99))

	cfg, err := LoadConfig(path)
	s.Require().NoError(err)
	s.Equal(int64(99), cfg.Seed)
	s.Equal(3, cfg.InitialShuffles)
}

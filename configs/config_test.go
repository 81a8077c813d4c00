package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"ramsvik.no/Olsmak/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("redis.local:6380", config.Redis.Address)
	suite.Equal("redis123", config.Redis.Password)
	suite.Equal(2, config.Redis.DB)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(12, config.Auth.TokenExpiry)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("OLSMAK_DB_HOST", "test.local")
	suite.T().Setenv("OLSMAK_DB_PORT", "1234")
	suite.T().Setenv("OLSMAK_DB_USER", "testuser")
	suite.T().Setenv("OLSMAK_DB_PASSWORD", "test123")
	suite.T().Setenv("OLSMAK_DB_DATABASE", "testdb")
	suite.T().Setenv("OLSMAK_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("OLSMAK_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("OLSMAK_SERVER_PORT", "666")
	suite.T().Setenv("OLSMAK_REDIS_ADDRESS", "redis.local:6380")
	suite.T().Setenv("OLSMAK_AUTH_SECRETKEY", "secret")
	suite.T().Setenv("OLSMAK_AUTH_TOKENEXPIRY", "12")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("redis.local:6380", config.Redis.Address)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(12, config.Auth.TokenExpiry)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("OLSMAK_DB_HOST", "env.local")
	suite.T().Setenv("OLSMAK_DB_USER", "envuser")
	suite.T().Setenv("OLSMAK_DB_PASSWORD", "env123")
	suite.T().Setenv("OLSMAK_AUTH_SECRETKEY", "envsecret")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(666, config.Server.Port)
	suite.Equal("envsecret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Error(err)
}

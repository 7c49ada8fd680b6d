package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "attestry/pkg/domain-errors"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

const testOwner = "0x1111111111111111111111111111111111111111"

// setenv resets every variable FromEnv reads so tests do not leak state into
// each other, then applies the overrides.
func (s *ConfigSuite) setenv(vars map[string]string) {
	for _, key := range []string{
		"ATTESTRY_ADDR", "ATTESTRY_OWNER_ADDRESS", "ATTESTRY_ENV",
		"JWT_SIGNING_KEY", "TOKEN_TTL", "EVENT_BUFFER", "CLIENT_INFO_DISABLED",
	} {
		s.T().Setenv(key, "")
	}
	for key, value := range vars {
		s.T().Setenv(key, value)
	}
}

func (s *ConfigSuite) TestDefaults() {
	s.setenv(map[string]string{"ATTESTRY_OWNER_ADDRESS": testOwner})

	cfg, err := FromEnv()
	s.Require().NoError(err)
	s.Equal(":8080", cfg.Addr)
	s.Equal(testOwner, cfg.OwnerAddress.String())
	s.Equal(15*time.Minute, cfg.TokenTTL)
	s.Equal(256, cfg.EventBuffer)
	s.True(cfg.ClientInfoEnabled)
	s.Equal("development", cfg.Environment)
}

func (s *ConfigSuite) TestOverrides() {
	s.setenv(map[string]string{
		"ATTESTRY_OWNER_ADDRESS": testOwner,
		"ATTESTRY_ADDR":          ":9090",
		"ATTESTRY_ENV":           "production",
		"TOKEN_TTL":              "1h",
		"EVENT_BUFFER":           "32",
		"CLIENT_INFO_DISABLED":   "true",
	})

	cfg, err := FromEnv()
	s.Require().NoError(err)
	s.Equal(":9090", cfg.Addr)
	s.Equal("production", cfg.Environment)
	s.Equal(time.Hour, cfg.TokenTTL)
	s.Equal(32, cfg.EventBuffer)
	s.False(cfg.ClientInfoEnabled)
}

func (s *ConfigSuite) TestOwnerAddressRequired() {
	s.setenv(nil)

	_, err := FromEnv()
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ConfigSuite) TestOwnerAddressMalformed() {
	s.setenv(map[string]string{"ATTESTRY_OWNER_ADDRESS": "not-an-address"})

	_, err := FromEnv()
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ConfigSuite) TestMalformedTokenTTL() {
	s.setenv(map[string]string{
		"ATTESTRY_OWNER_ADDRESS": testOwner,
		"TOKEN_TTL":              "soon",
	})

	_, err := FromEnv()
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ConfigSuite) TestNegativeTokenTTL() {
	s.setenv(map[string]string{
		"ATTESTRY_OWNER_ADDRESS": testOwner,
		"TOKEN_TTL":              "-5m",
	})

	_, err := FromEnv()
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ConfigSuite) TestMalformedEventBuffer() {
	s.setenv(map[string]string{
		"ATTESTRY_OWNER_ADDRESS": testOwner,
		"EVENT_BUFFER":           "many",
	})

	_, err := FromEnv()
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ConfigSuite) TestNonPositiveEventBuffer() {
	s.setenv(map[string]string{
		"ATTESTRY_OWNER_ADDRESS": testOwner,
		"EVENT_BUFFER":           "0",
	})

	_, err := FromEnv()
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

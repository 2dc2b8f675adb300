package kv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigValidateRequiresNATSURL(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, errNatsURLRequired)
}

func TestConfigValidateRejectsCertWithoutKey(t *testing.T) {
	cfg := &Config{
		NATSURL:     "nats://127.0.0.1:4222",
		TLSCertFile: "cert.pem",
	}

	err := cfg.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, errTLSCertKeyMismatch)
}

func TestConfigValidateAppliesDefaults(t *testing.T) {
	cfg := &Config{NATSURL: "nats://127.0.0.1:4222"}

	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultBucket, cfg.Bucket)
	require.Equal(t, 10*time.Second, cfg.ConnectTimeout)
}

func TestConfigValidateKeepsExplicitBucket(t *testing.T) {
	cfg := &Config{
		NATSURL: "nats://127.0.0.1:4222",
		Bucket:  "integrations-test",
	}

	require.NoError(t, cfg.Validate())
	require.Equal(t, "integrations-test", cfg.Bucket)
}

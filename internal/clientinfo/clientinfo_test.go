package clientinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUserAgent(t *testing.T) {
	svc := NewService(true)

	t.Run("empty user agent returns nil", func(t *testing.T) {
		assert.Nil(t, svc.FromUserAgent(""))
	})

	t.Run("disabled service returns nil", func(t *testing.T) {
		disabled := NewService(false)
		assert.Nil(t, disabled.FromUserAgent("Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"))
	})

	t.Run("firefox on linux desktop", func(t *testing.T) {
		info := svc.FromUserAgent("Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")
		require.NotNil(t, info)
		assert.Equal(t, "firefox", info.Browser)
		assert.Equal(t, "desktop", info.Platform)
		assert.Len(t, info.Fingerprint, 64)
	})

	t.Run("safari on iphone is mobile", func(t *testing.T) {
		info := svc.FromUserAgent("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1")
		require.NotNil(t, info)
		assert.Equal(t, "mobile", info.Platform)
	})

	t.Run("fingerprint is stable for the same agent", func(t *testing.T) {
		ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
		first := svc.FromUserAgent(ua)
		second := svc.FromUserAgent(ua)
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, first.Fingerprint, second.Fingerprint)
	})

	t.Run("unknown agent falls back to unknown fields", func(t *testing.T) {
		info := svc.FromUserAgent("Unknown/1.0")
		require.NotNil(t, info)
		assert.Equal(t, "unknown", info.Browser)
		assert.NotEmpty(t, info.Fingerprint)
	})
}

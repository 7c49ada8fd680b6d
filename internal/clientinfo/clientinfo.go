// Package clientinfo derives audit metadata about the submitting client from
// its User-Agent. The audit trail records which kind of client submitted a
// credential without storing the raw UA string.
package clientinfo

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mssola/useragent"

	"attestry/internal/registry/events"
)

type Service struct {
	enabled bool
}

func NewService(enabled bool) *Service {
	return &Service{enabled: enabled}
}

// FromUserAgent parses the User-Agent into coarse client facts plus a stable
// fingerprint. Returns nil when disabled or the header is empty.
// Note: does NOT include IP address (too volatile and too identifying for an
// append-only trail).
func (s *Service) FromUserAgent(userAgentString string) *events.ClientInfo {
	if s == nil || !s.enabled || userAgentString == "" {
		return nil
	}

	ua := useragent.New(userAgentString)
	browser, version := ua.Browser()

	majorVersion := "unknown"
	if version != "" {
		parts := strings.Split(version, ".")
		if len(parts) > 0 && parts[0] != "" {
			majorVersion = parts[0]
		}
	}

	os := ua.OS()
	platform := "desktop"
	if ua.Mobile() {
		platform = "mobile"
	}

	browser = strings.ToLower(strings.TrimSpace(browser))
	if browser == "" {
		browser = "unknown"
	}
	os = strings.ToLower(strings.TrimSpace(os))
	if os == "" {
		os = "unknown"
	}

	data := fmt.Sprintf("%s|%s|%s|%s", browser, majorVersion, os, platform)
	hash := sha256.Sum256([]byte(data))

	return &events.ClientInfo{
		Browser:     browser,
		OS:          os,
		Platform:    platform,
		Fingerprint: hex.EncodeToString(hash[:]),
	}
}

package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Platform is the social network a saved item originates from.
type Platform string

// Platform constants
const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformOther     Platform = "other"
)

// Platforms lists every known platform in display order.
var Platforms = []Platform{
	PlatformTikTok,
	PlatformInstagram,
	PlatformYouTube,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformOther,
}

// ParsePlatform converts user input into a Platform. Matching is exact.
func ParsePlatform(s string) (Platform, error) {
	if p := Platform(s); lo.Contains(Platforms, p) {
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// platformHosts maps registrable domains to their platform.
var platformHosts = map[string]Platform{
	"tiktok.com":    PlatformTikTok,
	"instagram.com": PlatformInstagram,
	"youtube.com":   PlatformYouTube,
	"youtu.be":      PlatformYouTube,
	"twitter.com":   PlatformTwitter,
	"x.com":         PlatformTwitter,
	"linkedin.com":  PlatformLinkedIn,
}

// DetectPlatform guesses the platform from a URL host.
// Unparseable or unknown hosts map to PlatformOther.
func DetectPlatform(rawURL string) Platform {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return PlatformOther
	}
	host := strings.ToLower(u.Hostname())
	for domain, p := range platformHosts {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return p
		}
	}
	return PlatformOther
}

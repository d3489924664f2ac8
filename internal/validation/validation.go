package validation

import (
	"errors"
	"net"
	"net/url"
	"strings"
)

// Error is the single user-facing error kind: a required field is missing or
// malformed. It is reported to the user and never treated as fatal.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsValidationError returns true if err is or wraps a *Error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Messages shown to the user when a creation form is incomplete.
const (
	MsgCollectionName = "Please provide a name for your collection."
	MsgInspoRequired  = "Please provide a URL and select a calendar."
)

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateCollection checks the fields of a new collection.
// The name must contain something other than whitespace.
func ValidateCollection(name string) error {
	if strings.TrimSpace(name) == "" {
		return &Error{Field: "name", Message: MsgCollectionName}
	}
	return nil
}

// ValidateInspoItem checks the fields of a new inspiration item: a URL and a
// destination calendar are both required, and the URL must be http(s).
func ValidateInspoItem(rawURL, calendar string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return &Error{Field: "url", Message: MsgInspoRequired}
	}
	if strings.TrimSpace(calendar) == "" {
		return &Error{Field: "calendar", Message: MsgInspoRequired}
	}
	if valid, msg := ValidateURL(rawURL); !valid {
		return &Error{Field: "url", Message: msg}
	}
	return nil
}

// Cloud metadata endpoints (AWS/GCP and Azure).
var metadataIPs = []net.IP{
	net.ParseIP("169.254.169.254"),
	net.ParseIP("168.63.129.16"),
}

// IsPrivateIP reports whether ip is loopback, link-local, private,
// unspecified or a cloud metadata address.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsPrivate() || ip.IsUnspecified() {
		return true
	}
	for _, m := range metadataIPs {
		if ip.Equal(m) {
			return true
		}
	}
	return false
}

// ValidateURLForProbe checks that a saved URL is safe for the server to
// request itself. Hosts that fail to resolve or resolve to a private address
// are refused.
func ValidateURLForProbe(urlStr string, lookup func(host string) ([]net.IP, error)) (bool, string) {
	if valid, msg := ValidateURL(urlStr); !valid {
		return false, msg
	}
	if lookup == nil {
		lookup = net.LookupIP
	}

	u, _ := url.Parse(urlStr)
	ips, err := lookup(u.Hostname())
	if err != nil {
		return false, "Cannot resolve hostname"
	}
	for _, ip := range ips {
		if IsPrivateIP(ip) {
			return false, "URL points to a private or reserved IP address"
		}
	}
	return true, ""
}

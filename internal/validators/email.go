package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailShape checks the address syntax only, no network lookups. Used for
// optional booking contact emails.
func IsEmailShape(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsEmailDomainValid resolves the domain's MX (or A) records. Used on account
// registration, where a dead domain is worth rejecting early.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

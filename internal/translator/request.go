package translator

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
)

const maxNonce = 10000

// Builder turns user input into a request URL for a profile.
type Builder struct {
	Profile     Profile
	Credentials Credentials
	// Nonce returns the salt for signed requests. Nil uses a random integer
	// in [0, 10000].
	Nonce func() string
}

func NewBuilder(profile Profile, creds Credentials) *Builder {
	return &Builder{Profile: profile, Credentials: creds}
}

// Build returns the request URL for query. ok is false when the trimmed query
// is empty and no request should be issued.
func (b *Builder) Build(query string) (apiURL string, ok bool) {
	word := strings.TrimSpace(query)
	if word == "" {
		return "", false
	}

	if b.Profile.Scheme == SchemeSigned {
		salt := b.nonce()
		sign := Sign(b.Credentials.Key, word, salt, b.Credentials.KeyFrom)
		return fmt.Sprintf("%s?q=%s&from=auto&to=auto&appKey=%s&salt=%s&sign=%s",
			b.Profile.Endpoint,
			url.QueryEscape(word),
			url.QueryEscape(b.Credentials.Key),
			salt,
			sign), true
	}

	return fmt.Sprintf("%s?keyfrom=%s&key=%s&type=data&doctype=json&version=1.1&q=%s",
		b.Profile.Endpoint,
		url.QueryEscape(b.Credentials.KeyFrom),
		url.QueryEscape(b.Credentials.Key),
		url.QueryEscape(word)), true
}

func (b *Builder) nonce() string {
	if b.Nonce != nil {
		return b.Nonce()
	}
	return NewNonce()
}

// NewNonce returns a random integer in [0, 10000] as a decimal string.
func NewNonce() string {
	return strconv.Itoa(rand.Intn(maxNonce + 1))
}

// Sign returns the uppercase hex MD5 of appKey+query+nonce+secret.
func Sign(appKey, query, nonce, secret string) string {
	sum := md5.Sum([]byte(appKey + query + nonce + secret))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

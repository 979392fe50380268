// Package services holds pure domain services shared by several aggregates.
package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultTokenBytes    = 32
	DefaultSuffixBytes   = 4
	DefaultMaxSlugLength = 30

	minSlugLength   = 2
	slugPlaceholder = "p"
)

// CredentialGenerator produces entitlement access credentials.
type CredentialGenerator interface {
	NewToken() (string, error)
	NewLink(seed string) (string, error)
	HashToken(token string) string
}

// CredentialOptions sizes the generated credentials. Zero values fall back to defaults.
type CredentialOptions struct {
	TokenBytes    int
	SuffixBytes   int
	MaxSlugLength int
}

type credentialGenerator struct {
	opts   CredentialOptions
	random io.Reader
}

// NewCredentialGenerator returns a generator backed by crypto/rand.
func NewCredentialGenerator(opts CredentialOptions) CredentialGenerator {
	return NewCredentialGeneratorWithSource(opts, rand.Reader)
}

// NewCredentialGeneratorWithSource lets tests inject a deterministic random source.
func NewCredentialGeneratorWithSource(opts CredentialOptions, random io.Reader) CredentialGenerator {
	if opts.TokenBytes <= 0 {
		opts.TokenBytes = DefaultTokenBytes
	}
	if opts.SuffixBytes <= 0 {
		opts.SuffixBytes = DefaultSuffixBytes
	}
	if opts.MaxSlugLength <= 0 {
		opts.MaxSlugLength = DefaultMaxSlugLength
	}
	return &credentialGenerator{opts: opts, random: random}
}

// NewToken returns hex-encoded random bytes. Uniqueness is not checked.
func (g *credentialGenerator) NewToken() (string, error) {
	return g.randomHex(g.opts.TokenBytes)
}

// NewLink returns "{slug}-{hex}" derived from seed, or the bare hex suffix when seed is empty.
func (g *credentialGenerator) NewLink(seed string) (string, error) {
	suffix, err := g.randomHex(g.opts.SuffixBytes)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(seed) == "" {
		return suffix, nil
	}
	return Slugify(seed, g.opts.MaxSlugLength) + "-" + suffix, nil
}

// HashToken is the at-rest form of an access token.
func (g *credentialGenerator) HashToken(token string) string {
	return HashToken(token)
}

func (g *credentialGenerator) randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashToken returns the sha256 hex digest of token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Slugify lower-cases seed, folds accents and keeps [a-z0-9] runs joined by single dashes.
// Results shorter than two characters become the placeholder "p".
func Slugify(seed string, maxLen int) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), seed)
	if err != nil {
		folded = seed
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	slug := b.String()
	if maxLen > 0 && len(slug) > maxLen {
		slug = strings.TrimRight(slug[:maxLen], "-")
	}
	if len(slug) < minSlugLength {
		return slugPlaceholder
	}
	return slug
}

// GenerateUniqueLink draws links until taken reports a free one or attempts run out.
func GenerateUniqueLink(gen CredentialGenerator, seed string, attempts int, taken func(link string) (bool, error)) (string, error) {
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		link, err := gen.NewLink(seed)
		if err != nil {
			return "", err
		}
		used, err := taken(link)
		if err != nil {
			return "", err
		}
		if !used {
			return link, nil
		}
	}
	return "", ErrLinkSpaceExhausted
}

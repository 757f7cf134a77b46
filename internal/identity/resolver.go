package identity

import (
	"bati-server/internal/observability"
	"bati-server/internal/store"
	"context"
	"errors"
	"strings"
)

// MemberDirectory defines the directory lookup the resolver needs.
type MemberDirectory interface {
	GetMemberByPhone(ctx context.Context, phone string) (store.Member, error)
}

// Caller is the result of identity resolution. A zero Member means the caller
// is an unknown client and the call proceeds in secretary mode.
type Caller struct {
	Phone  string
	Member *store.Member
}

// Known reports whether the caller resolved to a staff member.
func (c Caller) Known() bool {
	return c.Member != nil
}

// Resolver maps a caller's phone number to a staff member. Lookup failures are
// absorbed: the call must proceed even when the directory is unreachable.
type Resolver struct {
	directory MemberDirectory
	logger    *observability.Logger
}

func NewResolver(directory MemberDirectory, logger *observability.Logger) *Resolver {
	return &Resolver{directory: directory, logger: logger}
}

// Resolve looks the normalized number up in the membres directory.
func (r *Resolver) Resolve(ctx context.Context, phone string) Caller {
	normalized := NormalizePhone(phone)
	caller := Caller{Phone: normalized}

	member, err := r.directory.GetMemberByPhone(ctx, normalized)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			// Directory outage: treat as unknown so the call still goes through.
			r.logger.Error(ctx, "member directory lookup failed, treating caller as unknown", err)
		}
		return caller
	}

	caller.Member = &member
	return caller
}

// NormalizePhone canonicalizes a French phone number for directory lookup:
// formatting characters are stripped and a leading national 0 becomes +33.
// Numbers that already carry a country code, or foreign numbers, pass through
// unchanged apart from the formatting strip.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		switch r {
		case ' ', '.', '-', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	s := b.String()
	if strings.HasPrefix(s, "00") {
		s = "+" + s[2:]
	}
	if len(s) == 10 && strings.HasPrefix(s, "0") {
		s = "+33" + s[1:]
	}
	return s
}

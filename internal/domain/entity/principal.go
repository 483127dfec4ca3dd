package entity

import "github.com/google/uuid"

// PrincipalKind tags the Principal union.
type PrincipalKind string

const (
	// KindAnonymous indicates a request carrying no authenticated identity.
	KindAnonymous PrincipalKind = "anonymous"
	// KindMember indicates an authenticated member.
	KindMember PrincipalKind = "member"
	// KindAdministrator indicates an authenticated administrator.
	KindAdministrator PrincipalKind = "administrator"
)

// String returns the string representation of the PrincipalKind.
func (k PrincipalKind) String() string {
	return string(k)
}

// Principal is the tagged union of the identities a request may carry:
// Anonymous, Member or Administrator. Guards are total functions over this
// union instead of relying on nullable session lookups, so every admission
// decision can be tested without a simulated request.
type Principal struct {
	Kind PrincipalKind
	// ID identifies the member or administrator. It is the zero UUID for
	// anonymous principals.
	ID uuid.UUID
}

// Anonymous returns the principal for an unauthenticated request.
func Anonymous() Principal {
	return Principal{Kind: KindAnonymous}
}

// MemberPrincipal returns the principal for an authenticated member.
func MemberPrincipal(id uuid.UUID) Principal {
	return Principal{Kind: KindMember, ID: id}
}

// AdministratorPrincipal returns the principal for an authenticated administrator.
func AdministratorPrincipal(id uuid.UUID) Principal {
	return Principal{Kind: KindAdministrator, ID: id}
}

// IsMember reports whether the principal is an authenticated member.
func (p Principal) IsMember() bool {
	return p.Kind == KindMember
}

// IsAdministrator reports whether the principal is an authenticated administrator.
func (p Principal) IsAdministrator() bool {
	return p.Kind == KindAdministrator
}

// IsAnonymous reports whether the principal carries no identity.
func (p Principal) IsAnonymous() bool {
	return p.Kind == KindAnonymous
}

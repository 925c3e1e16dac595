// Package entity contains the core business objects of the project.
package entity

// MembershipLevel represents the membership tier of a user.
type MembershipLevel string

const (
	// MembershipStandard is the default tier assigned at registration.
	MembershipStandard MembershipLevel = "standard"
	// MembershipVIP is the first paid tier.
	MembershipVIP MembershipLevel = "vip"
	// MembershipVIPPlus is the highest tier.
	MembershipVIPPlus MembershipLevel = "vip_plus"
)

// String returns the string representation of the MembershipLevel.
func (m MembershipLevel) String() string {
	return string(m)
}

// IsValid checks if the MembershipLevel is a valid value.
func (m MembershipLevel) IsValid() bool {
	switch m {
	case MembershipStandard, MembershipVIP, MembershipVIPPlus:
		return true
	default:
		return false
	}
}

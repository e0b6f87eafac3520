package domain

// Role is the closed set of roles a token may carry.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
)

// ParseRole maps a raw claim value to a Role. Only exact matches are accepted;
// anything else yields ok == false.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCandidate:
		return RoleCandidate, true
	case RoleRecruiter:
		return RoleRecruiter, true
	}
	return "", false
}

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleRecruiter
}

func (r Role) String() string {
	return string(r)
}

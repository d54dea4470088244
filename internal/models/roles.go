package models

// Role wire values. "student" is the job-seeker role; the names are part of
// the stored data and the API contract, so they are not renamed.
const (
	RoleJobSeeker = "student"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the enumerated account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

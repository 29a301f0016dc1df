package domain

// CurrentUser is the cached projection of the last successful sign-in
// response. Its lifetime is tied to the stored session token; both are
// invalidated together on logout.
type CurrentUser struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
	StudentIDNum string   `json:"studentIdNum,omitempty"`
	TeacherIDNum string   `json:"teacherIdNum,omitempty"`
}

// HasRole reports whether the user's role-tag set contains the tag for role.
func (u *CurrentUser) HasRole(role Role) bool {
	if u == nil {
		return false
	}
	tag := role.Tag()
	for _, t := range u.Roles {
		if t == tag {
			return true
		}
	}
	return false
}

// IDNum returns the role-specific identifier (student or teacher ID number),
// falling back to the username when neither is set.
func (u *CurrentUser) IDNum() string {
	switch {
	case u == nil:
		return ""
	case u.StudentIDNum != "":
		return u.StudentIDNum
	case u.TeacherIDNum != "":
		return u.TeacherIDNum
	}
	return u.Username
}

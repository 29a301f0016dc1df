package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/gradebook-console/internal/domain"
)

func TestRole_Tag(t *testing.T) {
	assert.Equal(t, "ROLE_ADMIN", domain.RoleAdmin.Tag())
	assert.Equal(t, "ROLE_TEACHER", domain.RoleTeacher.Tag())
	assert.Equal(t, "ROLE_STUDENT", domain.RoleStudent.Tag())
}

func TestRoleFromTag(t *testing.T) {
	t.Run("round trips every role", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleTeacher, domain.RoleStudent} {
			got, ok := domain.RoleFromTag(role.Tag())
			assert.True(t, ok)
			assert.Equal(t, role, got)
		}
	})

	t.Run("rejects tags outside the convention", func(t *testing.T) {
		for _, tag := range []string{"ADMIN", "ROLE_", "ROLE_PRINCIPAL", "role_admin", ""} {
			_, ok := domain.RoleFromTag(tag)
			assert.False(t, ok, "tag %q", tag)
		}
	})
}

func TestCurrentUser_HasRole(t *testing.T) {
	user := &domain.CurrentUser{Roles: []string{"ROLE_TEACHER"}}

	assert.True(t, user.HasRole(domain.RoleTeacher))
	assert.False(t, user.HasRole(domain.RoleAdmin))

	var none *domain.CurrentUser
	assert.False(t, none.HasRole(domain.RoleAdmin))
}

func TestCurrentUser_IDNum(t *testing.T) {
	t.Run("student id wins", func(t *testing.T) {
		user := &domain.CurrentUser{Username: "jdoe", StudentIDNum: "S-100", TeacherIDNum: "T-200"}
		assert.Equal(t, "S-100", user.IDNum())
	})

	t.Run("teacher id next", func(t *testing.T) {
		user := &domain.CurrentUser{Username: "jdoe", TeacherIDNum: "T-200"}
		assert.Equal(t, "T-200", user.IDNum())
	})

	t.Run("falls back to username", func(t *testing.T) {
		user := &domain.CurrentUser{Username: "jdoe"}
		assert.Equal(t, "jdoe", user.IDNum())
	})

	t.Run("nil user yields empty", func(t *testing.T) {
		var none *domain.CurrentUser
		assert.Equal(t, "", none.IDNum())
	})
}

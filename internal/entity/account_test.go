package entity

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		ok       bool
	}{
		{"admin", RoleAdmin, true},
		{"  FOUNDER ", RoleFounder, true},
		{"co_founder", RoleCoFounder, true},
		{"Core_Developer", RoleCoreDeveloper, true},
		{"member", RoleMember, true},
		{"superuser", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		role, ok := ParseRole(tt.input)
		if ok != tt.ok || role != tt.expected {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.input, role, ok, tt.expected, tt.ok)
		}
	}
}

func TestRoleElevated(t *testing.T) {
	elevated := []Role{RoleAdmin, RoleFounder, RoleCoFounder}
	for _, role := range elevated {
		if !role.Elevated() {
			t.Errorf("expected %s to be elevated", role)
		}
	}

	regular := []Role{RoleCoreDeveloper, RoleMember, Role("SUPERUSER")}
	for _, role := range regular {
		if role.Elevated() {
			t.Errorf("expected %s not to be elevated", role)
		}
	}
}

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRole determines what a user may do within a household.
type MembershipRole string

const (
	RoleOwner  MembershipRole = "owner"
	RoleAdmin  MembershipRole = "admin"
	RoleMember MembershipRole = "member"
	RoleViewer MembershipRole = "viewer"
)

// Valid reports whether the role is one of the known roles.
func (r MembershipRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}

	return false
}

// CanModify reports whether the role allows mutating household resources.
// Only owners and admins may modify.
func (r MembershipRole) CanModify() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanView reports whether the role allows reading a resource with the
// given sharing setting. Owners and admins see everything, members and
// viewers only see shared resources.
func (r MembershipRole) CanView(shared bool) bool {
	if r.CanModify() {
		return true
	}

	return shared
}

// Membership ties a user to a household with a role.
//
// Users are managed by the identity provider in front of this backend,
// the membership only stores their ID.
type Membership struct {
	DefaultModel
	Household   Household `json:"-"`
	HouseholdID uuid.UUID `gorm:"uniqueIndex:membership_household_user"`
	UserID      uuid.UUID `gorm:"uniqueIndex:membership_household_user"`
	Role        MembershipRole
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Membership)
	return m.checkIntegrity(tx, *toSave)
}

func (m *Membership) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Membership)
	if tx.Statement.Changed("HouseholdID") {
		return m.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (m *Membership) checkIntegrity(tx *gorm.DB, toSave Membership) error {
	return tx.First(&Household{}, toSave.HouseholdID).Error
}

func (m *Membership) AfterSave(_ *gorm.DB) error {
	if !m.Role.Valid() {
		return ErrMembershipRoleInvalid
	}

	return nil
}

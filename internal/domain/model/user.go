package model

import "slices"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleVolunteer   Role = "volunteer"
	RoleDonor       Role = "donor"
	RoleUser        Role = "user"
	RoleDriver      Role = "driver"
	RoleBeneficiary Role = "beneficiary"
)

var Roles = []Role{RoleAdmin, RoleVolunteer, RoleDonor, RoleUser, RoleDriver, RoleBeneficiary}

func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

type Permission string

const (
	PermAll             Permission = "all"
	PermManageUsers     Permission = "manage_users"
	PermApproveUsers    Permission = "approve_users"
	PermManageCamps     Permission = "manage_camps"
	PermUpdateCamps     Permission = "update_camps"
	PermViewCamps       Permission = "view_camps"
	PermManageRequests  Permission = "manage_requests"
	PermViewRequests    Permission = "view_requests"
	PermRequestAid      Permission = "request_aid"
	PermManageDonations Permission = "manage_donations"
	PermViewDonations   Permission = "view_donations"
	PermManageLogistics Permission = "manage_logistics"
	PermUpdateLogistics Permission = "update_logistics"
	PermViewLogistics   Permission = "view_logistics"
	PermReportIncident  Permission = "report_incident"
	PermViewReports     Permission = "view_reports"
	PermExportData      Permission = "export_data"
)

// PermissionSet keeps the order permissions were granted in, which is also
// the order they are serialized in the session slot.
type PermissionSet []Permission

func (ps PermissionSet) Contains(p Permission) bool {
	return slices.Contains(ps, p)
}

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusPending UserStatus = "pending"
)

// User is a directory entry. Passwords are plaintext; the directory is a demo
// identity source, not a credential store.
type User struct {
	ID          int64         `yaml:"id" json:"id"`
	Username    string        `yaml:"username" json:"username"`
	Password    string        `yaml:"password" json:"-"`
	FullName    string        `yaml:"full_name" json:"fullName"`
	Email       string        `yaml:"email" json:"email"`
	Phone       string        `yaml:"phone" json:"phone"`
	Role        Role          `yaml:"role" json:"role"`
	Status      UserStatus    `yaml:"status" json:"status"`
	Permissions PermissionSet `yaml:"permissions" json:"permissions"`
}

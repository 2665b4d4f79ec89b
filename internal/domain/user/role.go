// Package user holds the role model carried in tokens issued by the external
// identity provider. This backend never stores credentials; it only reads
// claims.
package user

import "errors"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleViewer     Role = "viewer"
)

var (
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrRoleNotAllowed         = errors.New("role not allowed for this operation")
)

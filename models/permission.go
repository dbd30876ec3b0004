package models

// Statik rol -> izin matrisi. Satırlar migrate sırasında seed edilir,
// middleware.RequirePermission buradan okur.
type Permission struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Role       string `gorm:"size:20;not null;uniqueIndex:idx_role_perm" json:"role"`
	Permission string `gorm:"size:50;not null;uniqueIndex:idx_role_perm" json:"permission"`
}

func (Permission) TableName() string {
	return "permissions"
}

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleMember = "member"
)

const (
	PermUsersManage   = "users.manage"
	PermContentManage = "content.manage"
	PermFormsManage   = "forms.manage"
	PermResponsesRead = "responses.read"
	PermActivityRead  = "activity.read"
	PermUploadsWrite  = "uploads.write"
)

// SeedPermissions tablonun beklediği satır kümesi; config.ConnectDB migrate
// sonrası eksikleri ekler.
func SeedPermissions() []Permission {
	grants := map[string][]string{
		RoleAdmin: {
			PermUsersManage, PermContentManage, PermFormsManage,
			PermResponsesRead, PermActivityRead, PermUploadsWrite,
		},
		RoleEditor: {
			PermContentManage, PermFormsManage, PermResponsesRead, PermUploadsWrite,
		},
	}
	var rows []Permission
	for role, perms := range grants {
		for _, p := range perms {
			rows = append(rows, Permission{Role: role, Permission: p})
		}
	}
	return rows
}

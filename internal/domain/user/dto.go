package user

type RegisterInput struct {
	Username  string `json:"username" form:"username" binding:"required,min=3,max=150" example:"maria.lopez"`
	Password  string `json:"password" form:"password" binding:"required,min=8" example:"s3cretpass"`
	Email     string `json:"email" form:"email" binding:"omitempty,email" example:"maria@example.com"`
	FirstName string `json:"first_name" form:"first_name" binding:"max=150" example:"Maria"`
	LastName  string `json:"last_name" form:"last_name" binding:"max=150" example:"Lopez"`
}

// CreateUserInput is the admin-side creation form; any role may be assigned.
type CreateUserInput struct {
	RegisterInput
	Role        Role `json:"role" form:"role" binding:"required,oneof=ADMIN COMPANY APPRENTICE INSTRUCTOR" example:"COMPANY"`
	IsSuperuser bool `json:"is_superuser" form:"is_superuser"`
}

type UpdateUserInput struct {
	Email     *string `json:"email,omitempty" form:"email" binding:"omitempty,email" example:"user@example.com"`
	FirstName *string `json:"first_name,omitempty" form:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" form:"last_name" binding:"omitempty,max=150"`
	IsActive  *bool   `json:"is_active,omitempty" form:"is_active"`
	Password  *string `json:"password,omitempty" form:"password" binding:"omitempty,min=8"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required" example:"oldPass123"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=8" example:"newPass1234"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ListUsersQuery struct {
	Search string `form:"search"`
	Role   string `form:"role" binding:"omitempty,oneof=ADMIN COMPANY APPRENTICE INSTRUCTOR"`
	Page   int    `form:"page"`
}

type UserDTO struct {
	UID         uint   `json:"u_id" example:"123"`
	Username    string `json:"username" example:"maria.lopez"`
	Email       string `json:"email" example:"maria@example.com"`
	FullName    string `json:"full_name" example:"Maria Lopez"`
	Role        Role   `json:"role" example:"APPRENTICE"`
	RoleLabel   string `json:"role_label" example:"Aprendiz"`
	IsSuperuser bool   `json:"is_superuser"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"create_at" example:"2025-07-17 15:20:41"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		UID:         u.UID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName(),
		Role:        u.Role,
		RoleLabel:   u.Role.Label(),
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

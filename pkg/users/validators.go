package users

type ListUsersQuery struct {
	Limit  string `query:"limit"`
	Offset string `query:"offset"`
}

type CreateUserPayload struct {
	UserName string  `json:"userName" validate:"required,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type UpdateUserPayload struct {
	UserName *string `json:"userName" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

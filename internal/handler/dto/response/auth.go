package response

import (
	"tripslot/internal/usecase/queries"
)

type LoginResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}

type UserResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}

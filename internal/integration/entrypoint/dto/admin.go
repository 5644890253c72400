package dto

import (
	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// PendingUserListResponse represents the response for listing accounts
// awaiting admin approval.
type PendingUserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ToPendingUserListResponse converts pending users to the list DTO.
func ToPendingUserListResponse(users []*entity.User) PendingUserListResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return PendingUserListResponse{Users: responses}
}

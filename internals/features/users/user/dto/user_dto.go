package dto

import (
	"time"

	userModel "newfizzbuzz_backend/internals/features/users/user/model"
)

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse — representasi user tanpa kolom sensitif (password hash).
type UserResponse struct {
	UserID    uint      `json:"user_id"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID,
		UserEmail: m.UserEmail,
		CreatedAt: m.CreatedAt,
	}
}

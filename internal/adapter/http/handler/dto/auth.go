package dto

import (
	"uberclone/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLogin checks presence only. The credential policy itself (password
// length) belongs to the authentication service.
func ValidateLogin(v *validator.Validator, r *LoginRequest) {
	v.Check(r.Email != "", "email", "must be provided")
	v.Check(len(r.Email) <= 255, "email", "must not be more than 255 characters long")
	v.Check(r.Password != "", "password", "must be provided")
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func ValidateRefreshToken(v *validator.Validator, r *RefreshTokenRequest) {
	v.Check(r.RefreshToken != "", "refresh_token", "must be provided")
}

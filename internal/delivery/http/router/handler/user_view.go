package handler

import (
	"time"

	"qkart/internal/domain/entity"
	"qkart/internal/usecase"
)

// UserView is the public JSON shape of a user. The password hash never leaves the service.
type UserView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	WalletMoney float64   `json:"walletMoney"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LoginView is the login payload: the user plus their tokens.
type LoginView struct {
	User   *UserView          `json:"user"`
	Tokens usecase.AuthTokens `json:"tokens"`
}

func newUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		WalletMoney: user.WalletMoney,
		Address:     user.Address,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

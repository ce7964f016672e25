package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterUserRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreatePlayerRequest struct {
	Name         string          `json:"name" binding:"required"`
	Age          int             `json:"age" binding:"required,gt=0"`
	Gender       string          `json:"gender" binding:"required"`
	Role         string          `json:"role" binding:"required"`
	BattingOrder string          `json:"batting_order"`
	BattingHand  string          `json:"batting_hand"`
	BowlingHand  string          `json:"bowling_hand"`
	SkillRating  int             `json:"skill_rating" binding:"gte=0,lte=5"`
	BasePrice    decimal.Decimal `json:"base_price" binding:"required"`
}

type CreateTeamRequest struct {
	Name    string          `json:"name" binding:"required"`
	OwnerID string          `json:"owner_id" binding:"required"`
	Logo    string          `json:"logo"`
	Budget  decimal.Decimal `json:"budget" binding:"required"`
}

type CreateTournamentRequest struct {
	Name      string    `json:"name" binding:"required"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type CreateOwnerRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Points int    `json:"points"`
}

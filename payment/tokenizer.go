package payment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// CardDetails are accepted for tokenization only and are never persisted
type CardDetails struct {
	Number   string `json:"card_number" binding:"required"`
	ExpMonth int    `json:"exp_month" binding:"required,min=1,max=12"`
	ExpYear  int    `json:"exp_year" binding:"required,min=2024"`
	CVC      string `json:"cvc" binding:"required,min=3,max=4"`
}

// Tokenizer exchanges card details for an opaque reusable payment-method
// identifier. No charge is ever submitted by this system.
type Tokenizer interface {
	Tokenize(card CardDetails) (string, error)
}

var ErrInvalidCard = errors.New("invalid card details")

// ProviderTokenizer mimics the provider contract: validate superficially,
// hand back an opaque pm_ identifier, forget the card.
type ProviderTokenizer struct{}

func NewTokenizer() *ProviderTokenizer {
	return &ProviderTokenizer{}
}

func (p *ProviderTokenizer) Tokenize(card CardDetails) (string, error) {
	digits := strings.ReplaceAll(strings.ReplaceAll(card.Number, " ", ""), "-", "")
	if len(digits) < 12 || len(digits) > 19 {
		return "", ErrInvalidCard
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", ErrInvalidCard
		}
	}
	return "pm_" + uuid.NewString(), nil
}

package profile

// RegisterProfileRequest represents the request to register a profile
type RegisterProfileRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required"`
	Nickname      string `json:"nickname" validate:"required,min=1,max=50"`
}

// UpdateProfileRequest represents the request to change a profile's nickname
type UpdateProfileRequest struct {
	Nickname string `json:"nickname" validate:"required,min=1,max=50"`
}

// ProfileResponse represents the response for a profile
type ProfileResponse struct {
	WalletAddress string `json:"wallet_address"`
	Nickname      string `json:"nickname"`
	CreatedAt     string `json:"created_at"`
}

// ToResponse converts a Profile model to a ProfileResponse DTO
func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		WalletAddress: p.WalletAddress,
		Nickname:      p.Nickname,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

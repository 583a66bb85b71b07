package group

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	Currency string   `json:"currency" validate:"required,len=3"`
	Members  []string `json:"members"` // invited nicknames, creator added automatically
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	Nickname      string  `json:"nickname" validate:"required,min=1,max=50"`
	WalletAddress *string `json:"wallet_address,omitempty"`
}

// CloseGroupRequest carries the optional mint metadata reported by the
// on-chain layer when a settled group is closed
type CloseGroupRequest struct {
	NFTTokenID *string `json:"nft_token_id,omitempty"`
	NFTTxHash  *string `json:"nft_tx_hash,omitempty"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Currency   string            `json:"currency"`
	Closed     bool              `json:"closed"`
	NFTTokenID *string           `json:"nft_token_id,omitempty"`
	NFTTxHash  *string           `json:"nft_tx_hash,omitempty"`
	CreatedAt  string            `json:"created_at"`
	Members    []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents a member in a group response
type MemberResponse struct {
	Nickname      string  `json:"nickname"`
	WalletAddress *string `json:"wallet_address,omitempty"`
	JoinedAt      string  `json:"joined_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:         g.ID,
		Name:       g.Name,
		Currency:   g.Currency,
		Closed:     g.Closed,
		NFTTokenID: g.NFTTokenID,
		NFTTxHash:  g.NFTTxHash,
		CreatedAt:  g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		Nickname:      m.Nickname,
		WalletAddress: m.WalletAddress,
		JoinedAt:      m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

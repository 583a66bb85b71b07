package group

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrGroupClosed         = errors.New("group is closed")
	ErrGroupNotSettled     = errors.New("group has outstanding balances")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("nickname is already a member of this group")
	ErrNotOwner            = errors.New("only the group owner can do this")
	ErrInvalidCurrency     = errors.New("currency must be a 3-letter code")
	ErrInvalidNickname     = errors.New("nickname is required")
)

// SettlementChecker reports whether every balance in a group is zero. It is
// implemented by the settlement read-side and injected here to keep the
// close operation honest without a package cycle.
type SettlementChecker interface {
	AllSettled(ctx context.Context, groupID string) (bool, error)
}

// Service handles group business logic
type Service struct {
	repo    *Repository
	settled SettlementChecker
}

// NewService creates a new group service
func NewService(repo *Repository, settled SettlementChecker) *Service {
	return &Service{repo: repo, settled: settled}
}

// Create creates a new group with the creator and invited nicknames as the
// initial member set. The creator's nickname always joins first.
func (s *Service) Create(ctx context.Context, ownerWallet, ownerNickname string, req *CreateGroupRequest) (*Group, []*Member, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(currency) != 3 {
		return nil, nil, ErrInvalidCurrency
	}
	if strings.TrimSpace(ownerNickname) == "" {
		return nil, nil, ErrInvalidNickname
	}

	g, err := s.repo.Create(ctx, req.Name, currency, ownerWallet)
	if err != nil {
		return nil, nil, err
	}

	nicknames := append([]string{ownerNickname}, req.Members...)
	seen := make(map[string]bool, len(nicknames))
	var members []*Member
	for _, nick := range nicknames {
		nick = strings.TrimSpace(nick)
		if nick == "" || seen[nick] {
			continue
		}
		seen[nick] = true

		var wallet *string
		if nick == ownerNickname {
			wallet = &ownerWallet
		}
		m, err := s.repo.AddMember(ctx, g.ID, nick, wallet)
		if err != nil {
			return nil, nil, err
		}
		members = append(members, m)
	}

	return g, members, nil
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Group, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

// GetByIDWithMembers retrieves a group with all its members
func (s *Service) GetByIDWithMembers(ctx context.Context, id string) (*Group, []*Member, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return g, members, nil
}

// ListByNickname retrieves all groups a nickname belongs to
func (s *Service) ListByNickname(ctx context.Context, nickname string) ([]*Group, error) {
	return s.repo.ListByNickname(ctx, nickname)
}

// AddMember adds a nickname to an open group
func (s *Service) AddMember(ctx context.Context, groupID string, req *AddMemberRequest) (*Member, error) {
	g, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g.Closed {
		return nil, ErrGroupClosed
	}

	nick := strings.TrimSpace(req.Nickname)
	if nick == "" {
		return nil, ErrInvalidNickname
	}

	existing, err := s.repo.GetMember(ctx, groupID, nick)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberAlreadyExists
	}

	return s.repo.AddMember(ctx, groupID, nick, req.WalletAddress)
}

// Close marks a fully settled group as closed. Only the owner may close, and
// only once every member's balance is zero.
func (s *Service) Close(ctx context.Context, groupID, callerWallet string, req *CloseGroupRequest) (*Group, error) {
	g, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g.Closed {
		return nil, ErrGroupClosed
	}
	if !strings.EqualFold(g.OwnerWallet, callerWallet) {
		return nil, ErrNotOwner
	}

	settled, err := s.settled.AllSettled(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !settled {
		return nil, ErrGroupNotSettled
	}

	closed, err := s.repo.Close(ctx, groupID, req.NFTTokenID, req.NFTTxHash)
	if err != nil {
		return nil, err
	}
	if closed == nil {
		return nil, ErrGroupNotFound
	}
	return closed, nil
}

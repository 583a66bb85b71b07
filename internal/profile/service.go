package profile

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrNicknameTaken       = errors.New("nickname already in use")
	ErrWalletAlreadyExists = errors.New("wallet already has a profile")
	ErrInvalidWallet       = errors.New("wallet address is required")
	ErrInvalidNickname     = errors.New("nickname is required")
)

// Service handles profile business logic
type Service struct {
	repo *Repository
}

// NewService creates a new profile service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a profile for a wallet, enforcing nickname uniqueness
func (s *Service) Register(ctx context.Context, req *RegisterProfileRequest) (*Profile, error) {
	if strings.TrimSpace(req.WalletAddress) == "" {
		return nil, ErrInvalidWallet
	}
	if strings.TrimSpace(req.Nickname) == "" {
		return nil, ErrInvalidNickname
	}

	existing, err := s.repo.GetByWallet(ctx, req.WalletAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrWalletAlreadyExists
	}

	taken, err := s.repo.GetByNickname(ctx, req.Nickname)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, ErrNicknameTaken
	}

	return s.repo.Create(ctx, req)
}

// GetByWallet retrieves a profile by wallet address
func (s *Service) GetByWallet(ctx context.Context, wallet string) (*Profile, error) {
	p, err := s.repo.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// GetByNickname retrieves a profile by nickname
func (s *Service) GetByNickname(ctx context.Context, nickname string) (*Profile, error) {
	p, err := s.repo.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// UpdateNickname changes a wallet's nickname, enforcing uniqueness
func (s *Service) UpdateNickname(ctx context.Context, wallet string, req *UpdateProfileRequest) (*Profile, error) {
	if strings.TrimSpace(req.Nickname) == "" {
		return nil, ErrInvalidNickname
	}

	taken, err := s.repo.GetByNickname(ctx, req.Nickname)
	if err != nil {
		return nil, err
	}
	if taken != nil && !strings.EqualFold(taken.WalletAddress, wallet) {
		return nil, ErrNicknameTaken
	}

	p, err := s.repo.UpdateNickname(ctx, wallet, req.Nickname)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

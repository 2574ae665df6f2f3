package account

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrPatientCodeRequired = errors.New("caregiver signup requires a patient code")
	ErrInvalidPatientCode = errors.New("patient code does not match a patient account")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service implements account registration, authentication and lookup.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("component", "account").Logger(),
	}
}

// Signup registers a new account. Patients receive a generated shareable
// code; caregivers must present the code of an existing patient.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*Account, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	role, err := ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	a := &Account{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     role,
	}

	switch role {
	case RolePatient:
		code, err := s.generatePatientCode(ctx)
		if err != nil {
			return nil, err
		}
		a.PatientCode = &code
	case RoleCaregiver:
		if req.PatientCode == "" {
			return nil, ErrPatientCodeRequired
		}
		patient, err := s.repo.GetByPatientCode(ctx, req.PatientCode)
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidPatientCode
		}
		if err != nil {
			return nil, err
		}
		if patient.Role != RolePatient {
			return nil, ErrInvalidPatientCode
		}
		code := req.PatientCode
		a.LinkedPatientCode = &code
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("account_id", a.ID.String()).
		Str("role", string(a.Role)).
		Msg("account created")
	return a, nil
}

// Login authenticates by email and password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Account, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	a, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if a.Password != req.Password {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// Get returns an account by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of accounts and the total count.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Account, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// generatePatientCode produces a shareable SC-NNNN code, retrying on the
// unlikely collision with an existing patient.
func (s *Service) generatePatientCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10000))
		if err != nil {
			return "", fmt.Errorf("generating patient code: %w", err)
		}
		code := fmt.Sprintf("SC-%04d", n.Int64())

		_, err = s.repo.GetByPatientCode(ctx, code)
		if errors.Is(err, ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate a unique patient code")
}

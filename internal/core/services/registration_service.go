package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type RegistrationService struct {
	repo ports.HostelRepository
}

var _ ports.RegistrationService = (*RegistrationService)(nil)

func NewRegistrationService(repo ports.HostelRepository) *RegistrationService {
	return &RegistrationService{repo: repo}
}

// RegisterStudent creates a student account. The academic year must fall in
// the 1-4 range the buildings partition; the room/building cache stays empty
// until a booking stamps it.
func (s *RegistrationService) RegisterStudent(ctx context.Context, name, email, password string, academicYear int) (*domain.User, error) {
	if _, ok := domain.BuildingForYear(academicYear); !ok {
		return nil, domain.ErrInvalidAcademicYear
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Password:     password,
		Role:         domain.RoleStudent,
		AcademicYear: academicYear,
	}
	if err := s.repo.AppendUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RegistrationService) RegisterManager(ctx context.Context, name, email, password string) (*domain.User, error) {
	user := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     domain.RoleManager,
	}
	if err := s.repo.AppendUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

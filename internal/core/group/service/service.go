package groupapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"yatube/internal/core/errs"
	groupEntity "yatube/internal/core/group"
	groupPort "yatube/internal/ports/group"
)

type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

// CreateGroup is the administrative seeding path; there is no public endpoint
// for it.
func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("%w: title and slug are required", errs.ErrValidation)
	}

	g := &groupEntity.Group{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	created, err := s.GroupRepository.Create(g)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return toDTO(created), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	return toDTO(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.FindAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, toDTO(g))
	}
	return dtos, nil
}

func toDTO(g *groupEntity.Group) *groupPort.GroupDTO {
	return &groupPort.GroupDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}

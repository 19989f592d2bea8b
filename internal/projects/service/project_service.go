package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/devportfolio/portfolio-backend/internal/projects/domain"
	"github.com/devportfolio/portfolio-backend/internal/projects/repository"
)

// ProjectInput carries the mutable project fields of a request payload.
// Nil fields were absent from the payload; no required-field validation
// happens here, the store's constraints decide.
type ProjectInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	GithubURL   *string `json:"github_url"`
	LiveURL     *string `json:"live_url"`
}

// ProjectService wraps the repository with the failure-absorbing contract
// the HTTP layer relies on: store faults are logged and collapsed into
// empty/false/nil results, never propagated.
//
// Note this makes a store fault indistinguishable from a legitimately empty
// result on the read paths; the log is the only place the difference shows.
type ProjectService struct {
	repo *repository.ProjectRepository
	log  *logrus.Logger
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository, log *logrus.Logger) *ProjectService {
	return &ProjectService{
		repo: repo,
		log:  log,
	}
}

// ListAll returns every project, or an empty slice on any store fault.
func (s *ProjectService) ListAll(ctx context.Context) []domain.Project {
	projects, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list projects")
		return []domain.Project{}
	}
	return projects
}

// GetByID returns the project with the given id, or nil when it does not
// exist or the store fails.
func (s *ProjectService) GetByID(ctx context.Context, id int64) *domain.Project {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("project_id", id).Error("failed to fetch project")
		return nil
	}
	return p
}

// Create builds a transient project from the payload and persists it.
// Returns true iff the insert succeeded.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) bool {
	p := &domain.Project{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
	}
	if err := s.repo.Add(ctx, p); err != nil {
		s.log.WithError(err).Error("failed to create project")
		return false
	}
	s.log.WithField("project_id", *p.ID).Info("project created")
	return true
}

// Update replaces the mutable fields of the project with the given id.
// Returns false when the project does not exist or the store fails.
func (s *ProjectService) Update(ctx context.Context, id int64, in ProjectInput) bool {
	p := &domain.Project{
		ID:          &id,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
	}
	found, err := s.repo.Update(ctx, p)
	if err != nil {
		s.log.WithError(err).WithField("project_id", id).Error("failed to update project")
		return false
	}
	if !found {
		s.log.WithField("project_id", id).Warn("project not found for update")
		return false
	}
	s.log.WithField("project_id", id).Info("project updated")
	return true
}

// Delete removes the project with the given id. Returns false when the
// project does not exist or the store fails.
func (s *ProjectService) Delete(ctx context.Context, id int64) bool {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("project_id", id).Error("failed to delete project")
		return false
	}
	if !found {
		s.log.WithField("project_id", id).Warn("project not found for deletion")
		return false
	}
	s.log.WithField("project_id", id).Info("project deleted")
	return true
}

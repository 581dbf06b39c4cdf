package service

import (
	"context"

	"github.com/taskhive/taskhive-api/internal/core"
	"github.com/taskhive/taskhive-api/internal/domain/model"
)

// LabelServiceOptions groups dependencies for LabelService.
type LabelServiceOptions struct {
	Labels core.LabelRepository
}

// LabelService serves the shared label catalog: public reads, admin writes.
type LabelService struct {
	labels core.LabelRepository
}

// NewLabelService constructs a new LabelService.
func NewLabelService(opts LabelServiceOptions) *LabelService {
	if opts.Labels == nil {
		panic("label service requires a label repository")
	}
	return &LabelService{labels: opts.Labels}
}

// Create creates a label.
func (s *LabelService) Create(ctx context.Context, req *model.CreateLabelRequest) (*model.Label, error) {
	return s.labels.Create(ctx, req)
}

// GetByID retrieves a label by ID.
func (s *LabelService) GetByID(ctx context.Context, id string) (*model.Label, error) {
	return s.labels.GetByID(ctx, id)
}

// List returns a page of labels.
func (s *LabelService) List(ctx context.Context, limit, offset int) ([]*model.Label, error) {
	return s.labels.List(ctx, limit, offset)
}

// Update updates a label.
func (s *LabelService) Update(ctx context.Context, id string, req model.UpdateLabelRequest) (*model.Label, error) {
	return s.labels.Update(ctx, id, req)
}

// Delete deletes a label.
func (s *LabelService) Delete(ctx context.Context, id string) (bool, error) {
	return s.labels.Delete(ctx, id)
}

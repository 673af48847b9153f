package services

import (
	"context"
	"fmt"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
)

// categoryService implements CategorySvcFacade.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, req dto.GetCategoriesRequest) (*dto.CategoriesResult, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, domain.TransactionType(req.Type))
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	rows := make([]dto.CategoryRow, len(categories))
	for i, c := range categories {
		rows[i] = dto.CategoryRow{Name: c.Name, Type: string(c.Type)}
	}
	return &dto.CategoriesResult{Categories: rows}, nil
}

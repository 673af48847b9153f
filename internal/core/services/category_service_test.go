package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all active categories", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("ListCategories", ctx, domain.TransactionType("")).Return([]domain.Category{
			{Name: "Food & Dining", Type: domain.Expense, IsActive: true},
			{Name: "Salary", Type: domain.Income, IsActive: true},
		}, nil)
		service := services.NewCategoryService(repo)

		result, err := service.ListCategories(ctx, dto.GetCategoriesRequest{})

		require.NoError(t, err)
		require.Len(t, result.Categories, 2)
		assert.Equal(t, "Food & Dining", result.Categories[0].Name)
		assert.Equal(t, "expense", result.Categories[0].Type)
	})

	t.Run("filters by type", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("ListCategories", ctx, domain.Income).Return([]domain.Category{
			{Name: "Salary", Type: domain.Income, IsActive: true},
		}, nil)
		service := services.NewCategoryService(repo)

		result, err := service.ListCategories(ctx, dto.GetCategoriesRequest{Type: "income"})

		require.NoError(t, err)
		require.Len(t, result.Categories, 1)
		assert.Equal(t, "Salary", result.Categories[0].Name)
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("ListCategories", ctx, domain.TransactionType("")).Return(nil, errors.New("connection reset"))
		service := services.NewCategoryService(repo)

		result, err := service.ListCategories(ctx, dto.GetCategoriesRequest{})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrUpstream)
	})
}

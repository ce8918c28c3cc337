package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/memory"
	"newsdesk/internal/testutil/fixtures"
	catUC "newsdesk/internal/usecase/category"
)

func newService() *catUC.Service {
	return &catUC.Service{
		Repo: memory.NewCategoryRepo(memory.NewStore()),
		Now:  fixtures.Clock(fixtures.Epoch),
	}
}

func TestService_Create(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	got, err := svc.Create(ctx, catUC.CreateInput{Name: "Olah Raga"})
	require.NoError(t, err)
	assert.Equal(t, "olah-raga", got.Slug)
	assert.Equal(t, entity.DefaultCategoryColor, got.Color)
	assert.Equal(t, fixtures.Epoch, got.CreatedAt)

	colored, err := svc.Create(ctx, catUC.CreateInput{Name: "Dunia", Color: "#2D3748"})
	require.NoError(t, err)
	assert.Equal(t, "#2D3748", colored.Color)

	bySlug, err := svc.GetBySlug(ctx, "olah-raga")
	require.NoError(t, err)
	assert.Equal(t, got.ID, bySlug.ID)

	byID, err := svc.Get(ctx, colored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dunia", byID.Name)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_Create_DefaultClock(t *testing.T) {
	svc := &catUC.Service{Repo: memory.NewCategoryRepo(memory.NewStore())}

	before := time.Now()
	got, err := svc.Create(context.Background(), catUC.CreateInput{Name: "Hiburan"})
	require.NoError(t, err)
	assert.WithinRange(t, got.CreatedAt, before, time.Now())
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    catUC.CreateInput
		field string
	}{
		{"missing name", catUC.CreateInput{Name: " "}, "name"},
		{"symbols only", catUC.CreateInput{Name: "!!!"}, "name"},
		{"bad color", catUC.CreateInput{Name: "Sains", Color: "blue"}, "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService().Create(context.Background(), tt.in)
			require.ErrorIs(t, err, entity.ErrValidationFailed)
			assert.Equal(t, tt.field, entity.Fields(err)[0].Field)
		})
	}
}

func TestService_Create_Duplicate(t *testing.T) {
	svc := newService()
	_, err := svc.Create(context.Background(), catUC.CreateInput{Name: "Politik"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), catUC.CreateInput{Name: "politik"})
	require.ErrorIs(t, err, entity.ErrValidationFailed)
	assert.Equal(t, "name", entity.Fields(err)[0].Field)
}

func TestService_NotFound(t *testing.T) {
	svc := newService()
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, catUC.ErrCategoryNotFound)
	_, err = svc.GetBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

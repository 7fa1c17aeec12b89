package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExistenceChecker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	stores := mocks.NewMemoryStores()

	user, err := domain.NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, stores.Users.Create(ctx, user))
	category, err := domain.NewCategory("Work", user.ID)
	require.NoError(t, err)
	require.NoError(t, stores.Categories.Create(ctx, category))
	board, err := domain.NewBoard("Roadmap", nil, "")
	require.NoError(t, err)
	require.NoError(t, stores.Boards.Create(ctx, board))
	priority, err := domain.NewPriority("High", 1, user.ID)
	require.NoError(t, err)
	require.NoError(t, stores.Priorities.Create(ctx, priority))

	gate := NewExistenceChecker(stores.Categories, stores.Users, stores.Boards, stores.Priorities, nil)
	missing := domain.NewID()

	tests := []struct {
		name       string
		refs       References
		wantKind   Kind
		wantErr    bool
		wantDetail string
		wantMsg    string
	}{
		{name: "nothing to check", refs: References{}},
		{
			name: "all present",
			refs: References{
				Category:   &category.ID,
				AssignedTo: &user.ID,
				Board:      &board.ID,
				Priority:   &priority.ID,
			},
		},
		{
			name: "upper-case ids resolve",
			refs: References{
				Category: strPtr(strings.ToUpper(category.ID)),
				Board:    strPtr(strings.ToUpper(board.ID)),
			},
		},
		{
			name:     "missing category",
			refs:     References{Category: &missing},
			wantErr:  true,
			wantKind: KindNotFound,
			wantMsg:  "Category with id " + missing + " not found",
		},
		{
			name:       "malformed assignee",
			refs:       References{AssignedTo: strPtr("42")},
			wantErr:    true,
			wantKind:   KindValidation,
			wantDetail: "assignedTo",
		},
		{
			name:     "category checked before board",
			refs:     References{Category: &missing, Board: strPtr("bad")},
			wantErr:  true,
			wantKind: KindNotFound,
			wantMsg:  "Category with id " + missing + " not found",
		},
		{
			name:     "board checked before priority",
			refs:     References{Board: &missing, Priority: strPtr("bad")},
			wantErr:  true,
			wantKind: KindNotFound,
			wantMsg:  "Board with id " + missing + " not found",
		},
		{
			name:     "missing priority",
			refs:     References{Category: &category.ID, Priority: &missing},
			wantErr:  true,
			wantKind: KindNotFound,
			wantMsg:  "Priority with id " + missing + " not found",
		},
		{
			name:     "missing user",
			refs:     References{AssignedTo: &missing},
			wantErr:  true,
			wantKind: KindNotFound,
			wantMsg:  "User with id " + missing + " not found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := gate.Check(ctx, tt.refs)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var serr *Error
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.wantKind, serr.Kind)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, serr.Detail)
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, serr.Message)
			}
		})
	}
}

func TestExistenceCheckerStoreFailure(t *testing.T) {
	t.Parallel()
	stores := mocks.NewMemoryStores()
	stores.Categories.Err = errors.New("connection reset")

	gate := NewExistenceChecker(stores.Categories, stores.Users, stores.Boards, stores.Priorities, nil)
	id := domain.NewID()
	err := gate.Check(context.Background(), References{Category: &id})
	assert.Equal(t, KindInternal, KindOf(err))
}

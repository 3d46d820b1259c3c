package core

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ugcctl/internal/app"
	"github.com/thenoetrevino/ugcctl/internal/config"
	"github.com/thenoetrevino/ugcctl/internal/testutil"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

func TestApp_DelegatesToModel(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	cfg := config.Default()
	cfg.API.BaseURL = backend.BaseURL()

	a, err := app.New(cfg, nil)
	require.NoError(t, err)

	wrapper := New(context.Background(), a)

	cmd := wrapper.Init()
	require.NotNil(t, cmd)
	_, _ = wrapper.Update(cmd())
	assert.Equal(t, state.Loaded, wrapper.GetModel().CatalogState.Status())
	assert.Len(t, wrapper.GetModel().CatalogState.Projects(), 5)

	next, _ := wrapper.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Same(t, wrapper, next)
	assert.Equal(t, 120, wrapper.GetModel().UiState.Width())
	assert.Contains(t, wrapper.View().Content, "UGC-Paris")
}

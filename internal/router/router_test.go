package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-client/internal/logging"
)

func TestRouter_GoNotifiesListeners(t *testing.T) {
	r := New(logging.Discard())
	var seen []Navigation
	r.Subscribe(func(_ context.Context, nav Navigation) { seen = append(seen, nav) })

	require.NoError(t, r.Go(context.Background(), "/statements/", WithParam(ParamAccountNumber, "1000000001")))

	require.Len(t, seen, 1)
	assert.Equal(t, PathStatements, seen[0].Path)
	assert.Equal(t, "1000000001", seen[0].Param(ParamAccountNumber))
	assert.Equal(t, PathStatements, r.Current().Path)
}

func TestRouter_RootRedirectsToDashboard(t *testing.T) {
	r := New(logging.Discard())

	require.NoError(t, r.Go(context.Background(), "/"))

	assert.Equal(t, PathDashboard, r.Current().Path)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := New(logging.Discard())
	called := false
	r.Subscribe(func(context.Context, Navigation) { called = true })

	err := r.Go(context.Background(), "admin")

	assert.ErrorIs(t, err, ErrUnknownRoute)
	assert.False(t, called)
}

func TestRouter_NestedNavigationFromListener(t *testing.T) {
	r := New(logging.Discard())
	var paths []string
	r.Subscribe(func(ctx context.Context, nav Navigation) {
		paths = append(paths, nav.Path)
		if nav.Path == PathProfile {
			require.NoError(t, r.Go(ctx, PathSignIn))
		}
	})

	require.NoError(t, r.Go(context.Background(), PathProfile))

	assert.Equal(t, []string{PathProfile, PathSignIn}, paths)
	assert.Equal(t, PathSignIn, r.Current().Path)
}

func TestNavRoutes(t *testing.T) {
	var paths []string
	for _, route := range NavRoutes() {
		paths = append(paths, route.Path)
	}

	assert.Equal(t, []string{
		PathDashboard, PathMyAccounts, PathStatements, PathCreateAccount, PathTransfer, PathProfile,
	}, paths)
}

func TestParsePath(t *testing.T) {
	path, params, err := ParsePath("/statements?accountNumber=1000000001")

	require.NoError(t, err)
	assert.Equal(t, PathStatements, path)
	assert.Equal(t, []Param{WithParam(ParamAccountNumber, "1000000001")}, params)
}

package runtime_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"zero.dev/zero/internal/config"
	"zero.dev/zero/internal/runtime"
	"zero.dev/zero/internal/tui"
)

func TestContextRoundTrip(t *testing.T) {
	var out bytes.Buffer
	input := tui.NewBufferedReader(strings.NewReader("y\n"), &out)
	rc := runtime.NewContext(context.Background(), tui.NewSplogWithWriter(&out, false), &config.Config{}, nil, input)

	ctx := runtime.WithContext(context.Background(), rc)
	got, err := runtime.GetContext(ctx)
	require.NoError(t, err)
	require.Same(t, rc, got)

	confirmed, err := got.Gate.Confirm("Proceed? ")
	require.NoError(t, err)
	require.True(t, confirmed)
}

func TestGetContextMissing(t *testing.T) {
	_, err := runtime.GetContext(context.Background())
	require.Error(t, err)
}

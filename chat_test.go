package basia

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeChatClient is a ChatClient stub for check tests.
type fakeChatClient struct {
	onChat func(ctx context.Context, prompt string, images [][]byte) (string, error)
	calls  int
}

func (this *fakeChatClient) Chat(ctx context.Context, prompt string, images [][]byte) (string, error) {
	this.calls++
	return this.onChat(ctx, prompt, images)
}

// ---------------------------------------------------------------------------
// ChatCheck
// ---------------------------------------------------------------------------

func TestChatCheck_Pass(t *testing.T) {

	response := strings.Repeat("microscopy ", 20)

	client := &fakeChatClient{
		onChat: func(ctx context.Context, prompt string, images [][]byte) (string, error) {
			require.Equal(t, connectionPrompt, prompt)
			require.Nil(t, images)
			return response, nil
		},
	}

	check := &ChatCheck{Label: "connection", Client: client}

	result, err := check.Exec(context.Background())
	require.NoError(t, err)

	require.True(t, result.Passed())
	require.Equal(t, VariantText, result.Variant)
	require.Equal(t, FailureNone, result.Failure)
	require.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))

	// the excerpt must be exactly the first 100 characters
	require.Equal(t, response[:100], result.Excerpt)
}

func TestChatCheck_ShortResponseKeptWhole(t *testing.T) {

	client := &fakeChatClient{
		onChat: func(ctx context.Context, prompt string, images [][]byte) (string, error) {
			return "sure!", nil
		},
	}

	check := &ChatCheck{Label: "connection", Client: client}

	result, err := check.Exec(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sure!", result.Excerpt)
}

func TestChatCheck_TransportFailure(t *testing.T) {

	wantErr := errors.New("connection refused")

	client := &fakeChatClient{
		onChat: func(ctx context.Context, prompt string, images [][]byte) (string, error) {
			return "", wantErr
		},
	}

	check := &ChatCheck{Label: "connection", Client: client}

	result, err := check.Exec(context.Background())
	require.NoError(t, err, "a failing call must fold into the result, not propagate")

	require.False(t, result.Passed())
	require.Equal(t, FailureTransport, result.Failure)
	require.ErrorIs(t, result.Err, wantErr)
	require.Empty(t, result.Excerpt)
	require.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))
}

func TestChatCheck_MalformedResponse(t *testing.T) {

	client := &fakeChatClient{
		onChat: func(ctx context.Context, prompt string, images [][]byte) (string, error) {
			return "", ErrEmptyResponse
		},
	}

	check := &ChatCheck{Label: "connection", Client: client}

	result, err := check.Exec(context.Background())
	require.NoError(t, err)

	require.False(t, result.Passed())
	require.Equal(t, FailureMalformed, result.Failure)
}

func TestChatCheck_InvalidConfig(t *testing.T) {

	_, err := (&ChatCheck{Client: &fakeChatClient{}}).Exec(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "label")

	_, err = (&ChatCheck{Label: "connection"}).Exec(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "client")
}

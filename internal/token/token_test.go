package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueVerify(t *testing.T) {
	svc := NewService([]byte("test-secret"))

	raw, err := svc.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	email, err := svc.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", email)
}

func TestVerifyExpired(t *testing.T) {
	svc := &Service{Secret: []byte("test-secret"), TTL: -time.Minute}

	raw, err := svc.Issue("user@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	require.Error(t, err)
}

func TestVerifyTamperedSignature(t *testing.T) {
	svc := NewService([]byte("test-secret"))
	other := NewService([]byte("other-secret"))

	raw, err := other.Issue("user@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	require.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewService([]byte("test-secret"))

	_, err := svc.Verify("not-a-token")
	require.Error(t, err)
}

package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/afosan/inhereth/internal/pb/v1"
)

// TestFormatState covers the readable rendering including the empty heir.
func TestFormatState(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<nil state>", formatState(nil))

	endAt := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)
	state := &pb.VaultStateResponse{
		Owner:         "0xa11ce",
		Heir:          "",
		PeriodEndAt:   endAt.Unix(),
		Balance:       3,
		PeriodSeconds: int64((30 * 24 * time.Hour).Seconds()),
	}

	rendered := formatState(state)
	require.Contains(t, rendered, "owner 0xa11ce")
	require.Contains(t, rendered, "heir <none>")
	require.Contains(t, rendered, "balance 3")
	require.Contains(t, rendered, "2026-03-31T12:00:00Z")
	require.Contains(t, rendered, "720h0m0s")
}

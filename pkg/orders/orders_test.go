package orders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	got := Render("faye", "2", "custom embed", "cashapp")

	require.Contains(t, got, "faye's order")
	require.Contains(t, got, "2x custom embed")
	require.Contains(t, got, "paid w: cashapp")
	require.Contains(t, got, "status: pending")
}

func TestUpdateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		status  Status
		want    string
		matched bool
	}{
		{
			name:    "PendingToPaid",
			content: "order for x\n  status: pending\nthanks",
			status:  StatusPaid,
			want:    "order for x\n  status: paid\nthanks",
			matched: true,
		},
		{
			name:    "PaidToProcessing",
			content: "status: paid",
			status:  StatusProcessing,
			want:    "status: processing",
			matched: true,
		},
		{
			name:    "CaseInsensitiveMatch",
			content: "Status:  PENDING",
			status:  StatusDone,
			want:    "status: done",
			matched: true,
		},
		{
			name:    "Idempotent",
			content: "status: done",
			status:  StatusDone,
			want:    "status: done",
			matched: true,
		},
		{
			name:    "NoStatusField",
			content: "just a regular message",
			status:  StatusPaid,
			want:    "just a regular message",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UpdateContent(tt.content, tt.status)
			require.Equal(t, tt.matched, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateContentPreservesSurroundingText(t *testing.T) {
	content := Render("faye", "1", "greet", "nitro")

	for _, s := range []Status{StatusPaid, StatusProcessing, StatusDone} {
		got, ok := UpdateContent(content, s)
		require.True(t, ok)

		// Only the status word may differ.
		wantRest := strings.Replace(content, "status: pending", "", 1)
		gotRest := strings.Replace(got, "status: "+string(s), "", 1)
		require.Equal(t, wantRest, gotRest)

		parsed, ok := ContentStatus(got)
		require.True(t, ok)
		require.Equal(t, s, parsed)
	}
}

func TestFromSuffix(t *testing.T) {
	tests := []struct {
		suffix string
		want   Status
		ok     bool
	}{
		{suffix: "paid", want: StatusPaid, ok: true},
		{suffix: "processing", want: StatusProcessing, ok: true},
		{suffix: "done", want: StatusDone, ok: true},
		{suffix: "pending", want: "", ok: false},
		{suffix: "refunded", want: "", ok: false},
		{suffix: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.suffix, func(t *testing.T) {
			got, ok := FromSuffix(tt.suffix)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTerminal(t *testing.T) {
	require.True(t, StatusDone.Terminal())
	require.False(t, StatusPending.Terminal())
	require.False(t, StatusPaid.Terminal())
	require.False(t, StatusProcessing.Terminal())
}

package qualify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prospect-engine/internal/domain"
)

func rating(v float64) *float64 { return &v }

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		c    domain.Candidate
		want Verdict
	}{
		{
			name: "accept",
			c:    domain.Candidate{Name: "Acme Spa", Phone: "+1-555-0100", Rating: rating(4.6)},
			want: Accept,
		},
		{
			name: "website wins over everything",
			c:    domain.Candidate{HasWebsite: true, Phone: "+1-555-0100", Rating: rating(4.9)},
			want: RejectHasWebsite,
		},
		{
			name: "low rating",
			c:    domain.Candidate{Phone: "+1-555-0100", Rating: rating(3.9)},
			want: RejectLowRating,
		},
		{
			name: "missing rating counts as low",
			c:    domain.Candidate{Phone: "+1-555-0100"},
			want: RejectLowRating,
		},
		{
			name: "rating exactly at threshold passes",
			c:    domain.Candidate{Phone: "+1-555-0100", Rating: rating(4.0)},
			want: Accept,
		},
		{
			name: "no phone",
			c:    domain.Candidate{Rating: rating(4.5)},
			want: RejectNoPhone,
		},
		{
			name: "low rating reported before missing phone",
			c:    domain.Candidate{Rating: rating(2.0)},
			want: RejectLowRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Evaluate(tt.c, 4.0))
		})
	}
}

func TestEvaluateZeroThresholdUsesDefault(t *testing.T) {
	c := domain.Candidate{Phone: "+1-555-0100", Rating: rating(3.5)}
	require.Equal(t, RejectLowRating, Evaluate(c, 0))
}

func TestVerdictReason(t *testing.T) {
	require.Equal(t, "Has Website", RejectHasWebsite.Reason())
	require.Equal(t, "Low Rating", RejectLowRating.Reason())
	require.Equal(t, "No Phone", RejectNoPhone.Reason())
	require.True(t, Accept.Accepted())
	require.False(t, RejectNoPhone.Accepted())
}

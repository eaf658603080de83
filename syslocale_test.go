package lingua

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimarySubtag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"de_DE.UTF-8", "de"},
		{"fr.ISO8859-1", "fr"},
		{"zh-Hans-CN", "zh"},
		{"C", "C"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, primarySubtag(tt.locale))
		})
	}
}

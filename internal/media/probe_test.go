package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbeDuration(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    time.Duration
		wantErr bool
	}{
		{name: "plain seconds", output: "30.048000\n", want: 30048 * time.Millisecond},
		{name: "integer seconds", output: "10", want: 10 * time.Second},
		{name: "surrounding whitespace", output: "  2.5 \n", want: 2500 * time.Millisecond},
		{name: "empty output", output: "", wantErr: true},
		{name: "garbage", output: "N/A", wantErr: true},
		{name: "zero duration", output: "0.000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProbeDuration(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

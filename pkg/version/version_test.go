package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.NotEmpty(t, GetGitCommit())
	assert.NotEmpty(t, GetBuildDate())
	assert.Contains(t, String(), GetVersion())
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name    string
		other   string
		want    bool
		wantErr bool
	}{
		{name: "same", other: GetVersion(), want: true},
		{name: "older", other: "0.0.1", want: true},
		{name: "v prefix", other: "v0.9.0", want: true},
		{name: "newer major", other: "99.0.0", want: false},
		{name: "garbage", other: "banana", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compatible(tt.other)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

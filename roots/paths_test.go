package roots

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateBlobPath(t *testing.T) {
	logID := uuid.MustParse("01947000-3456-7890-8abc-def012345678")
	assert.Equal(t,
		"v1/xmtlogs/01947000-3456-7890-8abc-def012345678/state.cbor",
		StateBlobPath(logID))
}

func TestParseLogID(t *testing.T) {
	logID := uuid.New()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"state blob path", StateBlobPath(logID), false},
		{"bare prefix path", LogStoragePrefix(logID), false},
		{"missing prefix", logID.String() + "/state.cbor", true},
		{"truncated uuid", V1LogsPrefix + logID.String()[:12], true},
		{"garbage uuid", V1LogsPrefix + "not-a-uuid-at-all-really-not-one-x/state.cbor", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogID(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, logID, got)
		})
	}
}

package roots

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	V1LogsPrefix = "v1/xmtlogs/"

	// V1StateBlobName is the single trusted state record for a log. There is
	// exactly one per log; republication overwrites it under an ETag guard.
	V1StateBlobName = "state.cbor"

	// lenUUIDString is the length of the UUID string representation, per
	// https://www.rfc-editor.org/rfc/rfc9562.html#name-uuid-format
	lenUUIDString = 36
)

// LogStoragePrefix returns the path under which all blobs for the given log
// live. Log identities are uuids so that blob listings group and sort
// lexically per log.
func LogStoragePrefix(logID uuid.UUID) string {
	return fmt.Sprintf("%s%s/", V1LogsPrefix, logID.String())
}

// StateBlobPath returns the blob path of the trusted state record for the log.
func StateBlobPath(logID uuid.UUID) string {
	return LogStoragePrefix(logID) + V1StateBlobName
}

// ParseLogID recovers the log identity from a storage path produced by
// LogStoragePrefix or StateBlobPath.
func ParseLogID(storagePath string) (uuid.UUID, error) {
	i := strings.Index(storagePath, V1LogsPrefix)
	if i == -1 {
		return uuid.UUID{}, fmt.Errorf("log prefix not found in %s", storagePath)
	}
	rest := storagePath[i+len(V1LogsPrefix):]
	if len(rest) < lenUUIDString {
		return uuid.UUID{}, fmt.Errorf("log id truncated in %s", storagePath)
	}
	return uuid.Parse(rest[:lenUUIDString])
}

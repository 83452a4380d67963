package roots

import (
	"errors"
	"fmt"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

const (
	azblobBlobNotFound = "BlobNotFound"
)

func asStorageError(err error) (azStorageBlob.StorageError, bool) {
	serr := &azStorageBlob.StorageError{}
	//nolint
	ierr, ok := err.(*azStorageBlob.InternalError)
	if ierr == nil || !ok {
		return azStorageBlob.StorageError{}, false
	}
	if !ierr.As(&serr) {
		return azStorageBlob.StorageError{}, false
	}
	return *serr, true
}

// WrapRootNotFound translates err to ErrRootNotFound if the actual error is
// the azure sdk blob not found error: an absent state blob simply means no
// root has been published yet. In all other cases the original err is
// returned as is, including the case where it is nil.
func WrapRootNotFound(err error) error {
	if err == nil {
		return nil
	}
	serr, ok := asStorageError(err)
	if !ok {
		return err
	}
	if serr.ErrorCode != azblobBlobNotFound {
		return err
	}
	return fmt.Errorf("%s: %w", err.Error(), ErrRootNotFound)
}

func IsRootNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRootNotFound) {
		return true
	}
	serr, ok := asStorageError(err)
	if !ok {
		return false
	}
	return serr.ErrorCode == azblobBlobNotFound
}

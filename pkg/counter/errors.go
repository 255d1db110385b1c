package counter

import "fmt"

// NotDirectoryError reports that the configured root path exists but does not
// name a directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

// BinaryFileError reports that a file's content could not be decoded as text.
type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return fmt.Sprintf("binary content: %s", e.Path)
}

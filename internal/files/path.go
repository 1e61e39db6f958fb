package files

import "fmt"

// RenditionPath derives the on-disk path of a resized rendition from
// the original artifact's path. Both the thumbnail worker (writer) and
// the content handler (reader) must go through this function.
func RenditionPath(basePath string, width int) string {
	return fmt.Sprintf("%s_%d", basePath, width)
}

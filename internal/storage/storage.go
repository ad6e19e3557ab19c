package storage

import "io"

// Store persists presentation uploads and returns a publicly resolvable URL,
// so file-mode submissions end up interchangeable with URL-mode ones.
type Store interface {
	SavePresentation(teamName, filename string, r io.Reader) (string, error)
}

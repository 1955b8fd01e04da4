package assets

import "io"

// Store is the asset collaborator: it persists uploaded images and reclaims
// them when their post expires. The returned reference is an opaque locator
// (a URL for the disk store); the rest of the service never interprets it.
//
// Delete is best-effort by contract: a failed deletion is logged and
// discarded by callers, never escalated. Post lifecycle must not depend on
// storage backend reliability.
type Store interface {
	Save(name string, r io.Reader) (string, error)
	Delete(ref string) error
}

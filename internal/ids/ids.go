package ids

import "github.com/segmentio/ksuid"

// New returns a k-sortable unique identifier. Entities created later
// sort after earlier ones, which keeps created_at ordering stable for
// rows inserted in the same instant.
func New() string {
	return ksuid.New().String()
}

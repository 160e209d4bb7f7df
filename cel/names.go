package cel

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// NameSource produces animation identifiers. Every call must return a value
// never returned before - generated keyframe rules from separate generator
// runs can end up on the same page, so collisions are not allowed even
// across invocations. Implementations must be safe for concurrent use.
type NameSource interface {
	Next() string
}

// namePrefix slugs a human-readable prefix into a CSS-identifier-safe form,
// falling back to fallback when nothing usable remains.
func namePrefix(prefix, fallback string) string {
	if s := slug.Make(prefix); s != "" {
		return s
	}
	return fallback
}

// UUIDSource issues UUIDv7 backed names with a fixed prefix. UUIDv7 keeps
// names unique across processes and page loads, so separately generated
// sheets can always coexist.
type UUIDSource struct {
	prefix string
}

// NewUUIDSource creates a UUID backed name source. The prefix is slugged;
// empty or unusable prefixes become "cel".
func NewUUIDSource(prefix string) *UUIDSource {
	return &UUIDSource{prefix: namePrefix(prefix, "cel")}
}

// Next implements NameSource.
func (s *UUIDSource) Next() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 fails only when the random source does; v4 keeps the
		// uniqueness guarantee without the time ordering
		id = uuid.New()
	}
	return s.prefix + "-" + id.String()
}

// SequenceSource issues names from a process-local monotonic counter. Names
// are deterministic and readable, but unique only within the process - use
// it when one process owns all generated output for a page.
type SequenceSource struct {
	prefix string
	n      atomic.Uint64
}

// NewSequenceSource creates a counter backed name source. The prefix is
// slugged; empty or unusable prefixes become "cel".
func NewSequenceSource(prefix string) *SequenceSource {
	return &SequenceSource{prefix: namePrefix(prefix, "cel")}
}

// Next implements NameSource.
func (s *SequenceSource) Next() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

// Package idgen issues entity identifiers: one monotonically increasing
// sequence per prefix (PAT, DOC, APT, CON, INV, PAY). The generator is
// injected into usecases so tests can supply deterministic sequences.
package idgen

import (
	"fmt"
	"sync"
)

// Entity kind prefixes
const (
	PrefixPatient      = "PAT"
	PrefixDoctor       = "DOC"
	PrefixAppointment  = "APT"
	PrefixConsultation = "CON"
	PrefixInvoice      = "INV"
	PrefixPayment      = "PAY"
)

// Generator issues the next unique id for a prefix. Uniqueness is required
// within a prefix only.
type Generator interface {
	Next(prefix string) string
}

type sequence struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewSequence returns a Generator starting every prefix at 1.
func NewSequence() Generator {
	return &sequence{counters: make(map[string]int64)}
}

// NewSeededSequence returns a Generator whose prefixes continue after the
// given counts, so ids keep increasing across restarts of a durable store.
func NewSeededSequence(seeds map[string]int64) Generator {
	counters := make(map[string]int64, len(seeds))
	for prefix, count := range seeds {
		counters[prefix] = count
	}
	return &sequence{counters: counters}
}

func (s *sequence) Next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[prefix]++
	return fmt.Sprintf("%s-%04d", prefix, s.counters[prefix])
}

package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencePerPrefix(t *testing.T) {
	ids := NewSequence()

	assert.Equal(t, "PAT-0001", ids.Next(PrefixPatient))
	assert.Equal(t, "PAT-0002", ids.Next(PrefixPatient))

	// Each prefix counts independently
	assert.Equal(t, "APT-0001", ids.Next(PrefixAppointment))
	assert.Equal(t, "PAT-0003", ids.Next(PrefixPatient))
}

func TestSeededSequenceContinues(t *testing.T) {
	ids := NewSeededSequence(map[string]int64{
		PrefixInvoice: 41,
	})

	assert.Equal(t, "INV-0042", ids.Next(PrefixInvoice))
	assert.Equal(t, "PAY-0001", ids.Next(PrefixPayment))
}

func TestSequenceWidth(t *testing.T) {
	ids := NewSeededSequence(map[string]int64{PrefixPayment: 9998})

	assert.Equal(t, "PAY-9999", ids.Next(PrefixPayment))
	// Width grows past four digits instead of wrapping
	assert.Equal(t, "PAY-10000", ids.Next(PrefixPayment))
}

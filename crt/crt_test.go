//go:build unit

package crt

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestName(t *testing.T) {
	t.Run("names round trip", func(t *testing.T) {
		for _, technique := range []int{LinearProbing, QuadraticProbing} {
			// Execute
			got, ok := FromName(Name(technique))

			// Check
			assert.Truef(t, ok, "name of technique %d recognized", technique)
			assert.Equal(t, technique, got, "same technique")
		}
	})

	t.Run("unknown technique and name", func(t *testing.T) {
		// Execute
		_, ok := FromName("double")

		// Check
		assert.False(t, ok, "unknown name not recognized")
		assert.Equal(t, "unknown", Name(0), "unknown technique")
	})
}

func TestErrors(t *testing.T) {
	t.Run("errors have default messages and match with errors.Is", func(t *testing.T) {
		// Prepare
		tests := []error{NoRecordFound{}, TableFull{}, InvalidCapacity{}, CapacityTooLarge{}, KeyTooLong{}, UnknownHandle{}, ProbingAlgorithm{}}

		for _, e := range tests {
			// Execute
			wrapped := fmt.Errorf("wrapped: %w", e)

			// Check
			assert.NotEmpty(t, e.Error(), "has message")
			assert.Truef(t, errors.Is(wrapped, e), "%T matches through wrapping", e)
		}

		assert.False(t, errors.Is(TableFull{}, NoRecordFound{}), "different errors do not match")
	})
}

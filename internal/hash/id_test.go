package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestID_Deterministic(t *testing.T) {
	first := ID("flow/0->1")
	for range 10 {
		assert.Equal(t, first, ID("flow/0->1"))
	}
}

func TestID_DistinctFlows(t *testing.T) {
	assert.NotEqual(t, ID("flow/0->1"), ID("flow/1->0"))
}

package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-1")

	assert.Equal(t, "run-1", RunID(ctx))
	assert.Empty(t, RunID(context.Background()))
}

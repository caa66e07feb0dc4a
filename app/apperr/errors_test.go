package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFound("post %s not found", "abc")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "post abc not found", err.Error())

	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(KindStoreUnavailable, cause, "saving post")

	assert.Equal(t, KindStoreUnavailable, KindOf(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "disk full")
}

func TestKindOfWrappedDeep(t *testing.T) {
	inner := Validation("title is required")
	outer := fmt.Errorf("create draft: %w", inner)

	assert.Equal(t, KindValidation, KindOf(outer))
}

func TestIsMatchesByKind(t *testing.T) {
	a := Authorization("token expired")
	b := Authorization("no token")
	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, NotFound("x")))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "upstream_timeout", KindUpstreamTimeout.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

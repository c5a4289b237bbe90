package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestIsUpstreamError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsUpstreamError(stdErr))
	assert.False(t, IsUpstreamError(InvalidRequestError("invalid")))

	upErr := &UpstreamError{Op: "fetching repository", Err: stdErr}
	assert.True(t, IsUpstreamError(upErr))
	assert.Equal(t, "fetching repository: simple error", upErr.Error())
	assert.True(t, errors.Is(upErr, stdErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", upErr)
	assert.True(t, IsUpstreamError(wrapperErr))
}

func TestDocument(t *testing.T) {
	d := Document{
		KeyProjectOverview: "overview",
		KeyTechStack:       []interface{}{"Go", 3, "SQL"},
		KeyKeyFeatures:     []string{"a"},
	}

	assert.Equal(t, "overview", d.String(KeyProjectOverview))
	assert.Equal(t, "", d.String(KeyTechStack))
	assert.Equal(t, []string{"Go", "SQL"}, d.Strings(KeyTechStack))
	assert.Equal(t, []string{"a"}, d.Strings(KeyKeyFeatures))
	assert.Nil(t, d.Strings(KeyProjectStructure))
	assert.False(t, d.Degraded())

	degraded := DegradedDocument("no json", "raw text")
	assert.True(t, degraded.Degraded())
	assert.Equal(t, "raw text", degraded.String(KeyRawContent))
}

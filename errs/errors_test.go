package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatError(t *testing.T) {
	cause := fmt.Errorf("%w: missing \"data\" member", ErrMalformedValue)
	err := NewFormatError(cause, []byte(`{"oops": 1}`), "map")

	assert.True(t, errors.Is(err, ErrMalformedValue))
	assert.Contains(t, err.Error(), "map")
	assert.Contains(t, err.Error(), `{"oops": 1}`)

	var fe *FormatError
	require.ErrorAs(t, error(err), &fe)
	assert.Equal(t, "map", fe.Tag)
}

func TestFormatError_UntaggedAndTruncated(t *testing.T) {
	long := strings.Repeat("x", 1000)
	err := NewFormatError(ErrMalformedValue, []byte(long), "")

	msg := err.Error()
	assert.Contains(t, msg, "<none>")
	assert.Less(t, len(msg), 300, "long blobs are truncated in the message")
}

func TestReferenceError(t *testing.T) {
	err := &ReferenceError{Candidate: "D", Allowed: []string{"A", "B", "C"}}

	assert.Equal(t, "D is not in the list of allowed values [A, B, C]", err.Error())
	assert.True(t, errors.Is(err, ErrNotInList))
}

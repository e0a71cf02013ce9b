package clipboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	texts []string
	err   error
}

func (f *fakeWriter) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.texts = append(f.texts, text)
	return nil
}

func TestAction_CopyConfirmsAndExpires(t *testing.T) {
	w := &fakeWriter{}
	a := NewAction(w, 0)
	assert.Equal(t, DefaultConfirmDuration, a.Duration())

	ticket, err := a.Copy("![x](y)")
	require.NoError(t, err)
	assert.Equal(t, []string{"![x](y)"}, w.texts)
	assert.True(t, a.Confirmed())
	assert.Equal(t, 2*time.Second, ticket.After)

	assert.True(t, a.Expire(ticket))
	assert.False(t, a.Confirmed())
	assert.False(t, a.Expire(ticket))
}

func TestAction_RecopyRestartsWindow(t *testing.T) {
	a := NewAction(&fakeWriter{}, 500*time.Millisecond)
	first, err := a.Copy("a")
	require.NoError(t, err)
	second, err := a.Copy("a")
	require.NoError(t, err)
	assert.NotEqual(t, first.Seq, second.Seq)

	assert.False(t, a.Expire(first), "earlier timer must not clear a newer confirmation")
	assert.True(t, a.Confirmed())
	assert.True(t, a.Expire(second))
	assert.False(t, a.Confirmed())
}

func TestAction_FailureLeavesConfirmationUnset(t *testing.T) {
	a := NewAction(&fakeWriter{err: errors.New("no display")}, time.Second)
	_, err := a.Copy("text")
	require.Error(t, err)
	assert.False(t, a.Confirmed())

	_, err = a.Copy("")
	assert.ErrorIs(t, err, ErrEmptyText)
}

package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom %d!", 3)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom 3!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("runtime errors are not swallowed", func(t *testing.T) {
		var empty Polyline
		assert.Panics(t, func() {
			func() (err error) {
				defer func() {
					err = HandlePanicRecover(recover())
				}()
				_ = empty[3]
				return nil
			}()
		})
	})

	t.Run("error values are not swallowed", func(t *testing.T) {
		assert.PanicsWithError(t, "plain error", func() {
			func() (err error) {
				defer func() {
					err = HandlePanicRecover(recover())
				}()
				panic(errors.New("plain error"))
			}()
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

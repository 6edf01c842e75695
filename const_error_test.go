package containers

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstError_IsError(t *testing.T) {
	var _ error = ConstError("some error")
}

func TestConstError_MatchesWithErrorsIs(t *testing.T) {
	target := ConstError("target")
	tests := []struct {
		err     error
		matches bool
	}{
		{nil, false},
		{target, true},
		{ConstError("other"), false},
		{fmt.Errorf("unrelated"), false},
		{fmt.Errorf("%w: with detail", target), true},
		{fmt.Errorf("%w: outer", fmt.Errorf("%w: inner", target)), true},
		{errors.Join(target, fmt.Errorf("unrelated")), true},
		{errors.Join(fmt.Errorf("unrelated")), false},
	}

	for _, test := range tests {
		if want, got := test.matches, errors.Is(test.err, target); want != got {
			t.Errorf("unexpected result for %v, wanted %t, got %t", test.err, want, got)
		}
	}
}

func TestConstError_SentinelsAreDistinguishable(t *testing.T) {
	wrapped := fmt.Errorf("%w: 12", ErrNotInitialized)
	if !errors.Is(wrapped, ErrNotInitialized) {
		t.Errorf("wrapped sentinel not matched")
	}
	if errors.Is(wrapped, ErrIndexOutOfRange) {
		t.Errorf("sentinels must not match each other")
	}
}

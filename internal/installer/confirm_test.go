// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"
)

func TestUserConfirmed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"y \n", true},
		{"  Y\r\n", true},
		{"y", true},
		{"yes\n", false},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"yy\n", false},
		{"y y\n", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			t.Parallel()
			got, err := UserConfirmed(bufio.NewReader(strings.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("UserConfirmed(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("UserConfirmed(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUserConfirmed_EOFDeclines(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("y\n"))
	if ok, err := UserConfirmed(r); !ok || err != nil {
		t.Fatalf("first answer = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err := UserConfirmed(r)
	if err != nil {
		t.Fatalf("UserConfirmed(EOF) returned error: %v", err)
	}
	if ok {
		t.Error("UserConfirmed(EOF) = true, want false")
	}
}

func TestUserConfirmed_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("read failed")
	_, err := UserConfirmed(bufio.NewReader(iotest.ErrReader(boom)))
	if !errors.Is(err, boom) {
		t.Errorf("UserConfirmed() error = %v, want %v", err, boom)
	}
}

func TestUserConfirmed_ReadsOneLine(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("n\ny\n"))
	first, _ := UserConfirmed(r)
	second, _ := UserConfirmed(r)
	if first || !second {
		t.Errorf("answers = (%v, %v), want (false, true)", first, second)
	}
}

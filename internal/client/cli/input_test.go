package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("  Priya Sharma  \n"))

	got, err := GetSimpleText(r, "Name", out)
	require.NoError(t, err)
	require.Equal(t, "Priya Sharma", got)
	require.Contains(t, out.String(), "Name")
}

func TestGetSimpleText_PartialLineBeforeEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "Name", &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret123"), nil }
	t.Cleanup(func() { readPassword = orig })

	out := &bytes.Buffer{}
	got, err := GetPassword("Password", out)
	require.NoError(t, err)
	require.Equal(t, "secret123", got)
	require.Contains(t, out.String(), "Password: ")
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"n\n", false},
		{"whatever\n", false},
	}
	for _, tc := range tests {
		r := bufio.NewReader(strings.NewReader(tc.answer))
		got, err := GetYesNo(r, "Agree?", &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, tc.want, got, tc.answer)
	}
}

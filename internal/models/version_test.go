package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion_ExpandsComponents(t *testing.T) {
	cases := []struct {
		in       string
		expanded string
		so       string
	}{
		{"1", "1.0.0", "1.0"},
		{"1.2", "1.2.0", "1.2"},
		{"1.2.3", "1.2.3", "1.2"},
		{"0.0.0", "0.0.0", "0.0"},
		{"10.20.30", "10.20.30", "10.20"},
	}

	for _, tc := range cases {
		v, err := ParseVersion(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.expanded, v.String(), tc.in)
		require.Equal(t, tc.so, v.SOVersion(), tc.in)
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, in := range []string{"", "1.x", "1.2.3.4", "v1.2.3", "1.2-rc1", "1..2", "."} {
		_, err := ParseVersion(in)
		require.Error(t, err, in)
	}
}

func TestVersionCompare(t *testing.T) {
	mustParse := func(s string) *Version {
		v, err := ParseVersion(s)
		require.NoError(t, err)
		return v
	}

	require.Equal(t, 0, mustParse("1.2.3").Compare(mustParse("1.2.3")))
	require.Equal(t, -1, mustParse("1.2.3").Compare(mustParse("2.0.0")))
	require.Equal(t, 1, mustParse("1.10.0").Compare(mustParse("1.9.9")))
	require.Equal(t, -1, mustParse("1.2.3").Compare(mustParse("1.2.4")))

	// Expansion makes short and long forms of the same version equal.
	require.Equal(t, 0, mustParse("1.2").Compare(mustParse("1.2.0")))
}

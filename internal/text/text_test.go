package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	cases := []struct {
		Name     string
		Expected File
		Actual   File
		Contains []string
		Empty    bool
	}{
		{
			Name:     "identical files",
			Expected: File{Name: "current", Content: "{\n  \"replicas\": 1\n}\n"},
			Actual:   File{Name: "next", Content: "{\n  \"replicas\": 1\n}\n"},
			Empty:    true,
		},
		{
			Name:     "changed line",
			Expected: File{Name: "current", Content: "{\n  \"replicas\": 1\n}\n"},
			Actual:   File{Name: "next", Content: "{\n  \"replicas\": 3\n}\n"},
			Contains: []string{"--- current", "+++ next", "-  \"replicas\": 1", "+  \"replicas\": 3"},
		},
		{
			Name:     "new file",
			Expected: File{Name: "current"},
			Actual:   File{Name: "next", Content: "{}\n"},
			Contains: []string{"+{}"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			diff := Diff(tc.Expected, tc.Actual, 4)
			if tc.Empty {
				require.Empty(t, diff)
				return
			}
			for _, value := range tc.Contains {
				require.Contains(t, diff, value)
			}
		})
	}
}

func TestDiffColorizedKeepsContent(t *testing.T) {
	expected := File{Name: "current", Content: "a\nb\n"}
	actual := File{Name: "next", Content: "a\nc\n"}

	colorized := DiffColorized(expected, actual, 1)

	require.Contains(t, colorized, "--- current")
	require.Contains(t, colorized, "-b")
	require.Contains(t, colorized, "+c")
	require.Equal(t, len(strings.Split(Diff(expected, actual, 1), "\n")), len(strings.Split(colorized, "\n")))
}

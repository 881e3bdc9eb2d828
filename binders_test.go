package optmatch

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type clientSettings struct {
	Server        string
	Reverse       bool
	Width, Height int
	Retries       int
}

func settingsTable(cfg *clientSettings) Table {
	return Table{
		StringOpt("server", "address of server to connect to", &cfg.Server),
		BoolOpt("reverseFluxPolarity", "operate with flux polarity reversed", &cfg.Reverse),
		DimensionsOpt("screen", "screen width and height in pixels", &cfg.Width, &cfg.Height),
		IntOpt("retries", "connection attempts before giving up", &cfg.Retries),
	}
}

func TestTypedBinders(t *testing.T) {
	t.Parallel()

	defaults := clientSettings{Server: "localhost:10000", Width: 1280, Height: 1024, Retries: 3}

	testCases := []struct {
		name     string
		args     []string
		expectOK bool
		expected clientSettings
	}{
		{
			name:     "All binders set their destinations",
			args:     []string{"--server=host:1", "--reverseFluxPolarity", "--screen=640x480", "--retries=5"},
			expectOK: true,
			expected: clientSettings{Server: "host:1", Reverse: true, Width: 640, Height: 480, Retries: 5},
		},
		{
			name:     "Untouched flags keep their defaults",
			args:     []string{"--server=host:1"},
			expectOK: true,
			expected: clientSettings{Server: "host:1", Width: 1280, Height: 1024, Retries: 3},
		},
		{
			name:     "Empty string value is still a match",
			args:     []string{"--server="},
			expectOK: true,
			expected: clientSettings{Server: "", Width: 1280, Height: 1024, Retries: 3},
		},
		{
			name:     "Non-numeric int value is unrecognised",
			args:     []string{"--retries=lots"},
			expectOK: false,
			expected: defaults,
		},
		{
			name:     "Int value overflowing 64 bits is unrecognised",
			args:     []string{"--retries=99999999999999999999"},
			expectOK: false,
			expected: defaults,
		},
		{
			name:     "Overflowing dimension is unrecognised",
			args:     []string{"--screen=99999999999999999999x600"},
			expectOK: false,
			expected: defaults,
		},
		{
			name:     "Malformed dimensions are unrecognised",
			args:     []string{"--screen=640x"},
			expectOK: false,
			expected: defaults,
		},
		{
			name:     "Bool flag does not take a value",
			args:     []string{"--reverseFluxPolarity=yes"},
			expectOK: false,
			expected: defaults,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			cfg := defaults
			parser := NewParser(WithOutput(&bytes.Buffer{}), WithErrOutput(&bytes.Buffer{}))

			// --- Act ---
			ok := parser.Parse(tc.args, settingsTable(&cfg))

			// --- Assert ---
			require.Equal(t, tc.expectOK, ok)
			if diff := cmp.Diff(tc.expected, cfg); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBinders_QuoteFlagNameMetacharacters(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A name containing a regex metacharacter must be matched literally.
	var value string
	table := Table{StringOpt("log.level", "log verbosity", &value)}
	errOut := &bytes.Buffer{}
	parser := NewParser(WithOutput(&bytes.Buffer{}), WithErrOutput(errOut))

	// --- Act ---
	ok := parser.Parse([]string{"--logxlevel=debug"}, table)

	// --- Assert ---
	require.False(t, ok, "The dot must not act as a wildcard")
	require.Contains(t, errOut.String(), "Unrecognised option: --logxlevel=debug")

	require.True(t, parser.Parse([]string{"--log.level=debug"}, table))
	require.Equal(t, "debug", value)
}

package paper

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPresets_Order verifies the listing order used by the CLI.
func TestPresets_Order(t *testing.T) {
	got := Presets()
	require.Len(t, got, 4)
	assert.Equal(t, []string{"iso-a4", "us-legal", "ansi-tabloid", "us-letter"}, PresetNames())
	assert.True(t, ISOA4().Equal(got[0].Size))
	assert.True(t, USLegal().Equal(got[1].Size))
	assert.True(t, ANSITabloid().Equal(got[2].Size))
	assert.True(t, USLetter().Equal(got[3].Size))
}

// TestPresets_ReturnsCopyOfList checks that callers cannot reorder the
// package's own list.
func TestPresets_ReturnsCopyOfList(t *testing.T) {
	got := Presets()
	got[0] = NamedPreset{Name: "bogus", Size: NewPageSize(1, 1)}
	assert.Equal(t, PresetISOA4, Presets()[0].Name)
}

// TestParsePreset verifies name lookup, case normalization and errors.
func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected *PageSize
		hasError bool
	}{
		{"iso-a4", ISOA4(), false},
		{"us-legal", USLegal(), false},
		{"ansi-tabloid", ANSITabloid(), false},
		{"us-letter", USLetter(), false},
		{"US-Letter", USLetter(), false}, // case insensitive
		{" iso-a4 ", ISOA4(), false},     // surrounding space
		{"a5", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePreset(tt.input)
			if tt.hasError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				assert.Contains(t, err.Error(), "iso-a4, us-legal, ansi-tabloid, us-letter")
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got))
			assert.NotSame(t, tt.expected, got)
		})
	}
}

// TestPresets_ConcurrentReaders shares page sizes between goroutines.
// Run with -race to detect accidental mutation.
func TestPresets_ConcurrentReaders(t *testing.T) {
	shared := Presets()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, np := range shared {
				c, err := SetPageSize(np.Size)
				if err != nil || !c.Equal(np.Size) {
					t.Errorf("copy of %s differs", np.Name)
				}
				_ = np.Size.ToMap()
				_ = np.Size.String()
			}
		}()
	}
	wg.Wait()

	assert.True(t, ISOA4().Equal(shared[0].Size))
	assert.Equal(t, 29.7, ISOA4().Height())
	assert.Equal(t, 21.0, ISOA4().Width())
}

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMatches checks the offset-greater-than-zero rule.
func TestMatches(t *testing.T) {
	t.Parallel()

	require.True(t, Matches("#if canImport(ChainKitFFI)\n", "canImport"))
	require.True(t, Matches("#endif\n", "endif"))
	require.False(t, Matches("canImport(ChainKitFFI)\n", "canImport"))
	require.False(t, Matches("canImport and canImport\n", "canImport"))
	require.False(t, Matches("import Foundation\n", "canImport"))
}

// TestFilter_UnwrapDropsOnlyMarkers keeps the region body and removes both marker lines.
func TestFilter_UnwrapDropsOnlyMarkers(t *testing.T) {
	t.Parallel()

	lines := []string{
		"import Foundation\n",
		"#if canImport(ChainKitFFI)\n",
		"    import ChainKitFFI\n",
		"#endif\n",
		"public struct ChainPrivateKey {}\n",
	}

	res := Filter(lines, DefaultMarkers(), ModeUnwrap)

	require.Equal(t, []string{
		"import Foundation\n",
		"    import ChainKitFFI\n",
		"public struct ChainPrivateKey {}\n",
	}, res.Lines)
	require.Equal(t, Scanning, res.Final)
	require.Equal(t, 2, res.Dropped)
	require.Equal(t, 1, res.Regions)
	require.Equal(t, 2, res.OpenedAt)
	require.False(t, res.Unclosed())
}

// TestFilter_StripDropsRegion removes the whole region including its body.
func TestFilter_StripDropsRegion(t *testing.T) {
	t.Parallel()

	lines := []string{
		"import Foundation\n",
		"#if canImport(Something)\n",
		"import Something\n",
		"#endif\n",
		"class Foo {}\n",
	}

	res := Filter(lines, Markers{Open: "canImport", Close: "endif"}, ModeStrip)

	require.Equal(t, []string{"import Foundation\n", "class Foo {}\n"}, res.Lines)
	require.Equal(t, 3, res.Dropped)
}

// TestFilter_MarkerAtLineStartIgnored keeps a line that starts with the open marker.
func TestFilter_MarkerAtLineStartIgnored(t *testing.T) {
	t.Parallel()

	lines := []string{
		"canImport(Something)\n",
		"#endif\n",
	}

	res := Filter(lines, DefaultMarkers(), ModeUnwrap)

	require.Equal(t, lines, res.Lines)
	require.Equal(t, 0, res.Regions)
}

// TestFilter_CloseMarkerAtLineStartIgnored keeps a leading close marker and the region open.
func TestFilter_CloseMarkerAtLineStartIgnored(t *testing.T) {
	t.Parallel()

	lines := []string{
		"#if canImport(ChainKitFFI)\n",
		"endif(leading)\n",
		"import ChainKitFFI\n",
	}

	res := Filter(lines, DefaultMarkers(), ModeUnwrap)

	require.Equal(t, []string{"endif(leading)\n", "import ChainKitFFI\n"}, res.Lines)
	require.Equal(t, SkippingRegion, res.Final)
	require.True(t, res.Unclosed())
	require.Equal(t, 1, res.Dropped)
}

// TestFilter_CloseWithoutOpenKept keeps close markers when no region is open.
func TestFilter_CloseWithoutOpenKept(t *testing.T) {
	t.Parallel()

	lines := []string{
		"#if DEBUG\n",
		"let x = 1\n",
		"#endif\n",
	}

	res := Filter(lines, DefaultMarkers(), ModeStrip)

	require.Equal(t, lines, res.Lines)
	require.Zero(t, res.Dropped)
}

// TestFilter_Unclosed reports the open region and the behaviour of each mode.
func TestFilter_Unclosed(t *testing.T) {
	t.Parallel()

	lines := []string{
		"a\n",
		"#if canImport(X)\n",
		"b\n",
		"#if canImport(Y)\n",
		"c\n",
	}

	unwrap := Filter(lines, DefaultMarkers(), ModeUnwrap)
	require.True(t, unwrap.Unclosed())
	require.Equal(t, []string{"a\n", "b\n", "#if canImport(Y)\n", "c\n"}, unwrap.Lines)
	require.Equal(t, 2, unwrap.OpenedAt)

	strip := Filter(lines, DefaultMarkers(), ModeStrip)
	require.True(t, strip.Unclosed())
	require.Equal(t, []string{"a\n"}, strip.Lines)
}

// TestFilter_SequentialRegions handles repeated regions one at a time.
func TestFilter_SequentialRegions(t *testing.T) {
	t.Parallel()

	lines := []string{
		"#if canImport(A)\n",
		"import A\n",
		"#endif\n",
		"x\n",
		"#if canImport(B)\n",
		"import B\n",
		"#endif\n",
	}

	res := Filter(lines, DefaultMarkers(), ModeUnwrap)

	require.Equal(t, []string{"import A\n", "x\n", "import B\n"}, res.Lines)
	require.Equal(t, 2, res.Regions)
	require.Equal(t, Scanning, res.Final)
}

// TestParseMode covers accepted values and rejection of unknown ones.
func TestParseMode(t *testing.T) {
	t.Parallel()

	m, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeUnwrap, m)

	m, err = ParseMode(" Strip ")
	require.NoError(t, err)
	require.Equal(t, ModeStrip, m)

	_, err = ParseMode("delete")
	require.ErrorIs(t, err, ErrUnknownMode)
}

// TestMarkersValidate rejects blank markers.
func TestMarkersValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultMarkers().Validate())
	require.ErrorIs(t, Markers{Open: "canImport"}.Validate(), ErrEmptyMarker)
	require.ErrorIs(t, Markers{Open: " \t", Close: "endif"}.Validate(), ErrEmptyMarker)
}

// TestStateString names both states.
func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "scanning", Scanning.String())
	require.Equal(t, "skipping-region", SkippingRegion.String())
	require.Equal(t, "State(7)", State(7).String())
}

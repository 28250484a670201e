package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
)

func testConfig(t *testing.T, formats ...string) Config {
	return Config{
		OutputDir:   t.TempDir(),
		Formats:     formats,
		Segment:     segment.Geometry{Size: 64, Inset: 2, InnerRatio: 0.5},
		Bar:         bar.Frame{Width: 96, BoundingHeight: 64, Reserved: 16, Gap: 4},
		Supersample: 2,
		Workers:     3,
		Logger:      zaptest.NewLogger(t),
	}
}

func testSets() []dataset.Dataset {
	return []dataset.Dataset{
		{Name: "roles", Title: "Users by role", Kind: dataset.KindSegment, Entries: []dataset.Entry{
			{Label: "student", Value: 120},
			{Label: "advisor", Value: 12},
			{Label: "admin", Value: 2},
		}},
		{Name: "sessions", Kind: dataset.KindBar, Max: 50, Entries: []dataset.Entry{
			{Label: "mon", Value: 30},
			{Label: "tue", Value: 45},
		}},
		{Name: "broken", Kind: dataset.KindSegment, Entries: []dataset.Entry{
			{Label: "x", Value: -1},
		}},
		{Name: "empty", Kind: dataset.KindSegment},
	}
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig(t, "svg", "png", "webp", "tga")
	results := Run(context.Background(), cfg, testSets())
	require.Len(t, results, 4)

	assert.True(t, results[0].Success, results[0].Error)
	assert.Equal(t, 3, results[0].Descriptors)
	assert.Equal(t, []string{"roles.svg", "roles.png", "roles.webp", "roles.tga"}, results[0].Files)

	assert.True(t, results[1].Success, results[1].Error)
	assert.Equal(t, dataset.KindBar, results[1].Kind)

	assert.False(t, results[2].Success)
	assert.Contains(t, results[2].Error, "invalid value")

	assert.True(t, results[3].Success, results[3].Error)
	assert.Equal(t, 0, results[3].Descriptors)

	for _, f := range results[0].Files {
		info, err := os.Stat(filepath.Join(cfg.OutputDir, f))
		require.NoError(t, err)
		assert.Positive(t, info.Size(), f)
	}

	svgData, err := os.ReadFile(filepath.Join(cfg.OutputDir, "roles.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svgData), "Users by role")

	pf, err := os.Open(filepath.Join(cfg.OutputDir, "sessions.png"))
	require.NoError(t, err)
	defer pf.Close()
	img, err := png.Decode(pf)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestRunCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, testConfig(t, "svg"), testSets())
	require.Len(t, results, 4)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.Equal(t, context.Canceled.Error(), r.Error)
	}
}

func TestWriteManifest(t *testing.T) {
	results := []Result{
		{Name: "roles", Kind: dataset.KindSegment, Descriptors: 3, Files: []string{"roles.svg"}, Success: true},
		{Name: "broken", Error: "bad"},
	}
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, results))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(raw, &entries))
	assert.Equal(t, []ManifestEntry{
		{Name: "roles", Kind: dataset.KindSegment, Descriptors: 3, Files: []string{"roles.svg"}},
	}, entries)
}

func TestEncodeTGARoundTrip(t *testing.T) {
	cfg := testConfig(t)
	chart, err := Build(cfg, testSets()[0])
	require.NoError(t, err)
	img := chart.Image(cfg)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, "tga"))
	decoded, err := tga.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Size(), decoded.Bounds().Size())

	err = Encode(&buf, img, "bmp")
	assert.ErrorContains(t, err, "unknown raster format")
}

func TestWriteChartUnknownFormatLeavesNoFile(t *testing.T) {
	cfg := testConfig(t)
	chart, err := Build(cfg, testSets()[0])
	require.NoError(t, err)

	rel, err := writeChart(cfg, chart, "bmp")
	require.Error(t, err)
	assert.Empty(t, rel)
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "roles.bmp"))

	rel, err = writeChart(cfg, chart, "png")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(cfg.OutputDir, rel))
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build(testConfig(t), dataset.Dataset{Name: "x", Kind: "radar"})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "batch: x:"))
}

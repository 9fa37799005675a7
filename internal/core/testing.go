package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/the-slidewriter/internal/testutil"
	"github.com/julien-sobczak/the-slidewriter/pkg/clock"
	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"github.com/stretchr/testify/require"
)

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	configOnce.Reset()
	dbClientOnce.Reset()
	dbOnce.Reset()
	loggerOnce.Reset()
	repositoryOnce.Reset()
}

/* Fixtures */

// SetUpWorkspaceFromTempDir populates a temp directory containing a valid .sw workspace.
func SetUpWorkspaceFromTempDir(t *testing.T) string {
	dirname := t.TempDir()
	configureDir(t, dirname)
	return dirname
}

// SetUpWorkspaceFromGoldenDir populates a temp directory from testdata/ containing a valid .sw workspace.
func SetUpWorkspaceFromGoldenDir(t *testing.T) string {
	dirname := testutil.SetUpFromGoldenDir(t)
	configureDir(t, dirname)
	return dirname
}

func configureDir(t *testing.T, dirname string) {
	swDir := filepath.Join(dirname, ".sw")
	if _, err := os.Stat(swDir); os.IsNotExist(err) {
		// Create a default configuration if not exists for CurrentConfig() to work
		if err := os.Mkdir(swDir, os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(swDir, "config"), []byte(DefaultConfig), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Force the application to consider the temporary directory as the home
	t.Setenv("SW_HOME", dirname)
	t.Cleanup(func() {
		CurrentDB().Close()
		Reset()
	})

	// Force debug level in tests to diagnose more easily
	CurrentLogger().SetVerboseLevel(VerboseDebug)
	CurrentLogger().Debugf("✨ Set up directory %q", swDir)
}

/* Reproducible Tests */

// FreezeNow wraps the clock API to register the cleanup function at the end of the test.
func FreezeNow(t *testing.T) *clock.FrozenClock {
	frozen := clock.FreezeAt(time.Now().UTC().Truncate(time.Second))
	t.Cleanup(clock.Unfreeze)
	return frozen
}

// FreezeAt wraps the clock API to register the cleanup function at the end of the test.
func FreezeAt(t *testing.T, point time.Time) *clock.FrozenClock {
	frozen := clock.FreezeAt(point)
	t.Cleanup(clock.Unfreeze)
	return frozen
}

// SetNextOIDs configures a predefined list of OID
func SetNextOIDs(t *testing.T, oids ...string) {
	oid.UseNext(t, oids...)
}

// UseSequenceOID configures a predictable sequence of OIDs
func UseSequenceOID(t *testing.T) {
	oid.UseSequence(t)
}

/* Test Helpers */

func mustCreatePresentation(t *testing.T, title string) *Presentation {
	presentation, err := CurrentRepository().CreatePresentation(title)
	require.NoError(t, err)
	return presentation
}

func mustCreateSlideDeck(t *testing.T, title, content string) *SlideDeck {
	deck, err := CurrentRepository().CreateSlideDeck(title, content)
	require.NoError(t, err)
	return deck
}

func mustLoadPresentation(t *testing.T, o oid.OID) *Presentation {
	presentation, err := CurrentRepository().LoadPresentationByOID(o)
	require.NoError(t, err)
	require.NotNil(t, presentation)
	return presentation
}

func mustLoadSlideDeck(t *testing.T, o oid.OID) *SlideDeck {
	deck, err := CurrentRepository().LoadSlideDeckByOID(o)
	require.NoError(t, err)
	require.NotNil(t, deck)
	return deck
}

package walker

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smerrors "github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
	"github.com/arthur-debert/shortcut-maker/pkg/format"
	"github.com/arthur-debert/shortcut-maker/pkg/links"
	"github.com/arthur-debert/shortcut-maker/pkg/linkstate"
	"github.com/arthur-debert/shortcut-maker/pkg/testutil"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
)

const (
	targetRoot   = "/movies"
	shortcutRoot = "/shortcuts"
)

type fixture struct {
	fs    filesystem.FS
	links links.Provider
	trees types.Trees
}

func newFixture(t *testing.T, targetFormat, shortcutFormat string, tree testutil.FileTree) *fixture {
	t.Helper()

	fsys := filesystem.NewMemoryFS()
	testutil.CreateFileTree(t, fsys, targetRoot, tree)

	return &fixture{
		fs:    fsys,
		links: links.NewTOML(fsys, links.Options{}),
		trees: types.Trees{
			Target:   types.NewDescriptor(types.RoleTarget, targetRoot, format.MustParse(targetFormat)),
			Shortcut: types.NewDescriptor(types.RoleShortcut, shortcutRoot, format.MustParse(shortcutFormat)),
		},
	}
}

func (f *fixture) walker(opts Options) *Walker {
	opts.Logger = zerolog.Nop()
	return New(f.fs, f.links, opts)
}

func (f *fixture) state(t *testing.T, role types.Role) linkstate.State {
	t.Helper()
	s, err := linkstate.New(role, f.trees, f.links.Suffix())
	require.NoError(t, err)
	return s
}

func (f *fixture) create(t *testing.T, opts Options) *types.Report {
	t.Helper()
	report, err := f.walker(opts).Create(f.state(t, types.RoleTarget))
	require.NoError(t, err)
	return report
}

func (f *fixture) clean(t *testing.T, opts Options) *types.Report {
	t.Helper()
	report, err := f.walker(opts).Clean(f.state(t, types.RoleShortcut))
	require.NoError(t, err)
	return report
}

func messages(r *types.Report) []string {
	out := make([]string, 0, len(r.Actions))
	for _, a := range r.Actions {
		out = append(out, a.Message())
	}
	return out
}

var prune = Options{PruneEmpty: true}

func TestCreate(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"Inception": testutil.FileTree{"2010": testutil.FileTree{"movie.mkv": "x"}},
		"Matrix":    testutil.FileTree{"1999": testutil.FileTree{}},
	})

	report := f.create(t, prune)
	assert.Equal(t, []string{
		"Shortcut created: /shortcuts/2010/Inception.shortcut -> /movies/Inception/2010",
		"Shortcut created: /shortcuts/1999/Matrix.shortcut -> /movies/Matrix/1999",
	}, messages(report))

	target, err := f.links.ReadTarget("/shortcuts/2010/Inception.shortcut")
	require.NoError(t, err)
	assert.Equal(t, "/movies/Inception/2010", target)
}

func TestCreateIsIdempotent(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"Inception": testutil.FileTree{"2010": testutil.FileTree{}},
	})

	require.Len(t, f.create(t, prune).Actions, 1)
	before := testutil.Listing(t, f.fs, shortcutRoot)

	assert.True(t, f.create(t, prune).NoChanges())
	assert.Equal(t, before, testutil.Listing(t, f.fs, shortcutRoot))
}

func TestCreateSharedYear(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2020": testutil.FileTree{}},
		"B": testutil.FileTree{"2020": testutil.FileTree{}},
	})

	report := f.create(t, prune)
	assert.Equal(t, 2, report.Count(types.ActionCreatedShortcut))
	assert.Equal(t, []string{"2020/", "2020/A.shortcut", "2020/B.shortcut"}, testutil.Listing(t, f.fs, shortcutRoot))
}

func TestCreateSkipsFiles(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"notes.txt": "not a movie",
		"A":         testutil.FileTree{"2020.txt": "file at leaf level", "2021": testutil.FileTree{}},
	})

	report := f.create(t, prune)
	assert.Equal(t, []string{"Shortcut created: /shortcuts/2021/A.shortcut -> /movies/A/2021"}, messages(report))
}

func TestCreateKeepsExistingEntry(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2020": testutil.FileTree{}},
	})
	testutil.CreateFileTree(t, f.fs, shortcutRoot, testutil.FileTree{
		"2020": testutil.FileTree{"A.shortcut": "user content"},
	})

	assert.True(t, f.create(t, prune).NoChanges())
	data, err := f.fs.ReadFile("/shortcuts/2020/A.shortcut")
	require.NoError(t, err)
	assert.Equal(t, "user content", string(data))
}

func TestCreateDryRun(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2020": testutil.FileTree{}},
	})

	report := f.create(t, Options{DryRun: true, PruneEmpty: true})
	assert.True(t, report.DryRun)
	assert.Len(t, report.Actions, 1)
	assert.Empty(t, testutil.Listing(t, f.fs, shortcutRoot))
}

func TestMissingRoots(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{})
	f.trees.Target.Root = "/nowhere"

	assert.True(t, f.create(t, prune).NoChanges())
	assert.True(t, f.clean(t, prune).NoChanges())
}

func TestCleanRemovesStaleLinks(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"Inception": testutil.FileTree{"2010": testutil.FileTree{}},
		"Matrix":    testutil.FileTree{"1999": testutil.FileTree{}},
	})
	f.create(t, prune)

	require.NoError(t, f.fs.Remove("/movies/Matrix/1999"))

	report := f.clean(t, prune)
	assert.Equal(t, []string{
		"Removed shortcut: /shortcuts/1999/Matrix.shortcut",
		"Removed folder: /shortcuts/1999",
	}, messages(report))
	assert.Equal(t, []string{"2010/", "2010/Inception.shortcut"}, testutil.Listing(t, f.fs, shortcutRoot))
}

func TestCleanIsIdempotent(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2020": testutil.FileTree{}},
		"B": testutil.FileTree{"2020": testutil.FileTree{}},
	})
	f.create(t, prune)
	require.NoError(t, f.fs.Remove("/movies/A/2020"))

	first := f.clean(t, prune)
	assert.Equal(t, []string{"Removed shortcut: /shortcuts/2020/A.shortcut"}, messages(first))

	assert.True(t, f.clean(t, prune).NoChanges())
	assert.Equal(t, []string{"2020/", "2020/B.shortcut"}, testutil.Listing(t, f.fs, shortcutRoot))
}

func TestCleanCascadesEmptyFolders(t *testing.T) {
	f := newFixture(t, "genre/name/year", "year/genre/name", testutil.FileTree{
		"scifi": testutil.FileTree{"Inception": testutil.FileTree{"2010": testutil.FileTree{}}},
	})
	f.create(t, prune)
	require.Equal(t, []string{"2010/", "2010/scifi/", "2010/scifi/Inception.shortcut"},
		testutil.Listing(t, f.fs, shortcutRoot))

	require.NoError(t, f.fs.Remove("/movies/scifi/Inception/2010"))

	report := f.clean(t, prune)
	assert.Equal(t, []string{
		"Removed shortcut: /shortcuts/2010/scifi/Inception.shortcut",
		"Removed folder: /shortcuts/2010/scifi",
		"Removed folder: /shortcuts/2010",
		"Removed folder: /shortcuts",
	}, messages(report))
	assert.False(t, filesystem.Exists(f.fs, shortcutRoot))

	// The next create pass rebuilds the root on demand.
	require.NoError(t, f.fs.MkdirAll("/movies/scifi/Inception/2011", 0755))
	assert.Len(t, f.create(t, prune).Actions, 1)
}

func TestCleanWithoutPruning(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2020": testutil.FileTree{}},
	})
	f.create(t, prune)
	require.NoError(t, f.fs.Remove("/movies/A/2020"))

	report := f.clean(t, Options{})
	assert.Equal(t, []string{"Removed shortcut: /shortcuts/2020/A.shortcut"}, messages(report))
	assert.Equal(t, []string{"2020/"}, testutil.Listing(t, f.fs, shortcutRoot))
}

func TestCleanDryRun(t *testing.T) {
	f := newFixture(t, "genre/name/year", "year/genre/name", testutil.FileTree{
		"scifi": testutil.FileTree{
			"Inception": testutil.FileTree{"2010": testutil.FileTree{}},
			"Arrival":   testutil.FileTree{"2016": testutil.FileTree{}},
		},
	})
	f.create(t, prune)
	require.NoError(t, f.fs.Remove("/movies/scifi/Inception/2010"))
	before := testutil.Listing(t, f.fs, shortcutRoot)

	dry := f.clean(t, Options{DryRun: true, PruneEmpty: true})
	assert.Equal(t, []string{
		"Removed shortcut: /shortcuts/2010/scifi/Inception.shortcut",
		"Removed folder: /shortcuts/2010/scifi",
		"Removed folder: /shortcuts/2010",
	}, messages(dry))
	assert.Equal(t, before, testutil.Listing(t, f.fs, shortcutRoot))

	applied := f.clean(t, prune)
	assert.Equal(t, messages(dry), messages(applied))
}

func TestCleanIgnoresForeignEntries(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{})
	testutil.CreateFileTree(t, f.fs, shortcutRoot, testutil.FileTree{
		"2020": testutil.FileTree{
			"readme.txt":    "not a shortcut",
			"junk.shortcut": "not toml [",
		},
		"notes.txt": "file above leaf level",
	})
	before := testutil.Listing(t, f.fs, shortcutRoot)

	for _, recognition := range []links.Recognition{links.RecognizeSuffix, links.RecognizeObject} {
		t.Run(string(recognition), func(t *testing.T) {
			f.links = links.NewTOML(f.fs, links.Options{Recognition: recognition})
			assert.True(t, f.clean(t, prune).NoChanges())
			assert.Equal(t, before, testutil.Listing(t, f.fs, shortcutRoot))
		})
	}
}

func TestCleanStreamsActions(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2020": testutil.FileTree{}},
	})
	f.create(t, prune)
	require.NoError(t, f.fs.Remove("/movies/A/2020"))

	var streamed []types.Action
	report := f.clean(t, Options{PruneEmpty: true, OnAction: func(a types.Action) {
		streamed = append(streamed, a)
	}})
	assert.Equal(t, report.Actions, streamed)
}

type failingProvider struct {
	links.Provider
	failOn string
}

func (p failingProvider) Create(shortcut, target string) error {
	if shortcut == p.failOn {
		return errors.New("disk full")
	}
	return p.Provider.Create(shortcut, target)
}

func TestCreateErrorKeepsPartialReport(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2020": testutil.FileTree{}},
		"B": testutil.FileTree{"2021": testutil.FileTree{}},
	})
	f.links = failingProvider{Provider: f.links, failOn: "/shortcuts/2021/B.shortcut"}

	w := f.walker(prune)
	report, err := w.Create(f.state(t, types.RoleTarget))
	require.Error(t, err)
	assert.True(t, smerrors.IsTraversalError(err))
	assert.Equal(t, []string{"Shortcut created: /shortcuts/2020/A.shortcut -> /movies/A/2020"}, messages(report))
	assert.True(t, filesystem.Exists(f.fs, "/shortcuts/2020/A.shortcut"))
}

// vanishingFS hides directories from ReadDir while their parents still list
// them, as when a folder is removed during a walk.
type vanishingFS struct {
	filesystem.FS
	gone map[string]bool
}

func (v vanishingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if v.gone[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return v.FS.ReadDir(name)
}

func TestCreateToleratesVanishedDirectory(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2019": testutil.FileTree{}},
		"B": testutil.FileTree{"2020": testutil.FileTree{}},
	})
	f.fs = vanishingFS{FS: f.fs, gone: map[string]bool{"/movies/A": true}}

	report := f.create(t, prune)
	assert.Equal(t, []string{"Shortcut created: /shortcuts/2020/B.shortcut -> /movies/B/2020"}, messages(report))
}

func TestCleanToleratesVanishedDirectory(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2019": testutil.FileTree{}},
		"B": testutil.FileTree{"2020": testutil.FileTree{}},
	})
	f.create(t, prune)
	require.NoError(t, f.fs.Remove("/movies/B/2020"))
	f.fs = vanishingFS{FS: f.fs, gone: map[string]bool{"/shortcuts/2019": true}}

	report := f.clean(t, prune)
	assert.Equal(t, []string{
		"Removed shortcut: /shortcuts/2020/B.shortcut",
		"Removed folder: /shortcuts/2020",
	}, messages(report))
	assert.True(t, filesystem.Exists(f.fs, "/shortcuts/2019/A.shortcut"))
}

func TestCleanSkipsEntryNamedOnlyBySuffix(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{
		"A": testutil.FileTree{"2020": testutil.FileTree{}},
	})
	f.create(t, prune)
	// A readable shortcut whose target is gone, but whose name carries no value.
	require.NoError(t, f.links.Create("/shortcuts/2020/.shortcut", "/movies/Gone/2020"))

	assert.True(t, f.clean(t, prune).NoChanges())
	assert.True(t, filesystem.Exists(f.fs, "/shortcuts/2020/.shortcut"))
}

func TestCleanKeepsFolderRefilledBeforeRemoval(t *testing.T) {
	f := newFixture(t, "name/year", "year/name", testutil.FileTree{})
	testutil.CreateFileTree(t, f.fs, shortcutRoot, testutil.FileTree{
		"2020": testutil.FileTree{"keep.txt": "x"},
	})
	w := f.walker(prune)
	report := types.NewReport(false, nil)

	require.NoError(t, w.removeFolder("/shortcuts/2020", report))
	assert.True(t, report.NoChanges())
	assert.True(t, filesystem.Exists(f.fs, "/shortcuts/2020/keep.txt"))

	require.NoError(t, w.removeFolder("/shortcuts/1999", report))
	assert.True(t, report.NoChanges())
}

package scaffold

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/pdtgen-labs/pdtgen/internal/descriptor"
	"github.com/pdtgen-labs/pdtgen/internal/manifest"
	"github.com/pdtgen-labs/pdtgen/internal/platform"
	"github.com/pdtgen-labs/pdtgen/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// workspace is an isolated project directory with a Scaffolder bound to it.
type workspace struct {
	dir string
	out *bytes.Buffer
	s   *Scaffolder
}

func newWorkspace(t *testing.T, composerJSON string) *workspace {
	t.Helper()
	dir := t.TempDir()
	if composerJSON != "" {
		writeFile(t, dir, "composer.json", composerJSON)
	}
	fsys, err := platform.Workspace(dir)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &workspace{
		dir: dir,
		out: out,
		s:   New(fsys, report.New(out), zaptest.NewLogger(t)),
	}
}

func (w *workspace) run(t *testing.T) *Result {
	t.Helper()
	res, err := w.s.Run()
	require.NoError(t, err)
	return res
}

func TestRun_FreshProject(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget"}`)
	res := w.run(t)

	assert.Equal(t, "acme", res.Identifiers.Vendor)
	assert.Equal(t, "widget", res.Identifiers.Project)
	assert.Equal(t, "Acme", res.Identifiers.Namespace)

	assertDir(t, w.dir, "src/main/php/Acme")
	assertDir(t, w.dir, "src/test/php/Acme")
	assertDir(t, w.dir, ".settings")

	root := readProject(t, w.dir)
	assert.Equal(t, "widget", root.SelectElement("name").Text())

	assert.Equal(t, []string{
		"src/test/php/Acme/DummyTest.php",
		".settings/org.eclipse.core.resources.prefs",
		".settings/org.eclipse.php.core.prefs",
		".settings/org.eclipse.wst.common.project.facet.core.xml",
		".project",
		".buildpath",
		".gitignore",
	}, slashPaths(res.Files))
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Warnings)
}

func TestRun_FileContents(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget"}`)
	w.run(t)

	dummy := readFile(t, w.dir, "src/test/php/Acme/DummyTest.php")
	assert.Contains(t, dummy, "namespace Acme;")
	assert.Contains(t, dummy, "@copyright (C) Acme")
	assert.Contains(t, dummy, "class DummyTest extends \\PHPUnit_Framework_TestCase")
	assert.Contains(t, dummy, "$this->assertTrue(TRUE);")

	prefs := "eclipse.preferences.version=1"
	assert.Equal(t, prefs, readFile(t, w.dir, ".settings/org.eclipse.core.resources.prefs"))
	assert.Equal(t, prefs, readFile(t, w.dir, ".settings/org.eclipse.php.core.prefs"))

	facet := readFile(t, w.dir, ".settings/org.eclipse.wst.common.project.facet.core.xml")
	assert.Contains(t, facet, `<installed facet="php.component" version="5.3"/>`)
	assert.Contains(t, facet, `<fixed facet="php.core.component"/>`)

	buildpath := readFile(t, w.dir, ".buildpath")
	assert.Contains(t, buildpath, `<buildpathentry kind="src" path="src/main/php"/>`)
	assert.Contains(t, buildpath, `<buildpathentry kind="con" path="org.eclipse.php.core.LANGUAGE"/>`)

	assert.Equal(t, ".buildpath\n.project\n.settings\nvendor\ncomposer.lock\n", readFile(t, w.dir, ".gitignore"))
}

func TestRun_MissingName(t *testing.T) {
	w := newWorkspace(t, `{"description": "nameless"}`)

	_, err := w.s.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrInvalidManifest), "got %v", err)

	entries, err := os.ReadDir(w.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only composer.json should exist")
	assert.Equal(t, "composer.json", entries[0].Name())
}

func TestRun_NameWithoutSlash(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme"}`)

	_, err := w.s.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrInvalidManifest), "got %v", err)
}

func TestRun_DotSegmentName(t *testing.T) {
	w := newWorkspace(t, `{"name": "../x"}`)

	_, err := w.s.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrInvalidManifest), "got %v", err)
	assert.NoDirExists(t, filepath.Join(w.dir, "src"))
}

func TestRun_ManifestNotFound(t *testing.T) {
	w := newWorkspace(t, "")

	_, err := w.s.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrManifestNotFound), "got %v", err)
}

func TestRun_CustomManifestPath(t *testing.T) {
	w := newWorkspace(t, "")
	writeFile(t, w.dir, "build/composer.json", `{"name": "acme/widget"}`)
	w.s.ManifestPath = "build/composer.json"

	res := w.run(t)
	assert.Equal(t, "widget", res.Identifiers.Project)
}

func TestRun_SecondRun(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget"}`)
	w.run(t)

	// Hand edits to create-once files must survive; everything else is regenerated.
	writeFile(t, w.dir, ".buildpath", "custom buildpath")
	writeFile(t, w.dir, ".settings/org.eclipse.core.resources.prefs", "custom resources")
	writeFile(t, w.dir, ".settings/org.eclipse.php.core.prefs", "custom php")
	writeFile(t, w.dir, ".settings/org.eclipse.wst.common.project.facet.core.xml", "custom facet")
	writeFile(t, w.dir, "src/test/php/Acme/DummyTest.php", "edited")
	writeFile(t, w.dir, ".gitignore", "build/\n")

	w.out.Reset()
	res := w.run(t)

	assert.Equal(t, "custom buildpath", readFile(t, w.dir, ".buildpath"))
	assert.Equal(t, "custom resources", readFile(t, w.dir, ".settings/org.eclipse.core.resources.prefs"))
	assert.Equal(t, "custom php", readFile(t, w.dir, ".settings/org.eclipse.php.core.prefs"))
	assert.Equal(t, "custom facet", readFile(t, w.dir, ".settings/org.eclipse.wst.common.project.facet.core.xml"))

	assert.Contains(t, readFile(t, w.dir, "src/test/php/Acme/DummyTest.php"), "namespace Acme;")
	assert.Contains(t, readFile(t, w.dir, ".gitignore"), "build/\n")

	assert.Equal(t, []string{
		"src/test/php/Acme/DummyTest.php",
		".project",
		".gitignore",
	}, slashPaths(res.Files))
	assert.ElementsMatch(t, []string{
		"src/main/php/Acme",
		"src/test/php/Acme",
		".settings",
		".settings/org.eclipse.core.resources.prefs",
		".settings/org.eclipse.php.core.prefs",
		".settings/org.eclipse.wst.common.project.facet.core.xml",
		".buildpath",
	}, slashPaths(res.Skipped))

	assert.Contains(t, w.out.String(), "Updated .project")
	assert.Contains(t, w.out.String(), ".buildpath already exists")
}

func TestRun_UnchangedSecondRun(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget"}`)
	w.run(t)
	first := snapshot(t, w.dir)

	w.run(t)
	assert.Equal(t, first, snapshot(t, w.dir))
}

func TestRun_MergesExistingGitignore(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget"}`)
	writeFile(t, w.dir, ".gitignore", "build/\nvendor\n\n.idea\n")
	w.run(t)

	got := readFile(t, w.dir, ".gitignore")
	assert.Equal(t, ".buildpath\n.project\n.settings\nvendor\ncomposer.lock\nbuild/\n.idea\n", got)

	for _, entry := range []string{"build/", ".buildpath", ".project", ".settings", "vendor", "composer.lock"} {
		assert.Equal(t, 1, strings.Count("\n"+got, "\n"+entry+"\n"), "entry %q", entry)
	}
}

func TestRun_RenamesExistingProject(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget2"}`)
	writeFile(t, w.dir, ".project", `<?xml version="1.0" encoding="UTF-8"?>
<projectDescription>
	<name>widget</name>
	<comment>Hand-written notes</comment>
	<projects>
	</projects>
</projectDescription>
`)
	w.run(t)

	root := readProject(t, w.dir)
	assert.Equal(t, "widget2", root.SelectElement("name").Text())
	assert.Equal(t, "Hand-written notes", root.SelectElement("comment").Text())
	assert.Nil(t, root.SelectElement("buildSpec"), "existing descriptors are not completed from the template")
}

func TestRun_LogsDescriptorRename(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget2"}`)
	writeFile(t, w.dir, ".project", "<projectDescription><name>widget</name></projectDescription>")
	core, logs := observer.New(zapcore.InfoLevel)
	w.s.log = zap.New(core)

	w.run(t)

	renames := logs.FilterMessage("renaming project descriptor").All()
	require.Len(t, renames, 1)
	fields := renames[0].ContextMap()
	assert.Equal(t, "widget", fields["from"])
	assert.Equal(t, "widget2", fields["to"])

	// Same name on the next run: nothing to report.
	w.run(t)
	assert.Len(t, logs.FilterMessage("renaming project descriptor").All(), 1)
}

func TestRun_MalformedProject(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget"}`)
	writeFile(t, w.dir, ".project", "<projectDescription><name>x</projectDescription>")

	_, err := w.s.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, descriptor.ErrMalformedDescriptor), "got %v", err)

	// Earlier steps stay on disk; later ones never ran.
	assertDir(t, w.dir, "src/main/php/Acme")
	assert.NoFileExists(t, filepath.Join(w.dir, ".buildpath"))
	assert.NoFileExists(t, filepath.Join(w.dir, ".gitignore"))
}

func TestRun_DirectoryWhereFileExpected(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget"}`)
	require.NoError(t, os.MkdirAll(filepath.Join(w.dir, "src/main/php"), 0755))
	writeFile(t, w.dir, "src/main/php/Acme", "not a directory")

	_, err := w.s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestRun_Warnings(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget", "version": "dev-master", "require": {"php": "^8.1"}}`)
	res := w.run(t)

	require.Len(t, res.Warnings, 2)
	assert.Contains(t, w.out.String(), "Warnings:")
	assert.True(t, strings.HasSuffix(w.out.String(), "DONE.\n"))
}

func TestRun_Progress(t *testing.T) {
	w := newWorkspace(t, `{"name": "acme/widget"}`)
	w.run(t)

	out := w.out.String()
	steps := []string{
		"Generating Eclipse PDT project structure...",
		"Generating file [.project]...",
		"Generating file [.buildpath]...",
		"Generating file [.gitignore]...",
		"DONE.",
	}
	last := -1
	for _, step := range steps {
		idx := strings.Index(out, step)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", step, out)
		assert.Greater(t, idx, last, "%q out of order", step)
		last = idx
	}
}

func TestGenerateBuildPath_Standalone(t *testing.T) {
	w := newWorkspace(t, "")
	require.NoError(t, w.s.GenerateBuildPath())
	require.NoError(t, w.s.GenerateBuildPath())

	assert.FileExists(t, filepath.Join(w.dir, ".buildpath"))
	assert.Equal(t, []string{".buildpath"}, w.s.result.Files)
	assert.Equal(t, []string{".buildpath"}, w.s.result.Skipped)
}

// ─── Test Helpers ──────────────────────────────────────────────────

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func readFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func readProject(t *testing.T, dir string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(filepath.Join(dir, ".project")))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func assertDir(t *testing.T, dir, rel string) {
	t.Helper()
	assert.DirExists(t, filepath.Join(dir, filepath.FromSlash(rel)))
}

func slashPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.ToSlash(p)
	}
	return out
}

// snapshot maps every file under dir to its content.
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, p)
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

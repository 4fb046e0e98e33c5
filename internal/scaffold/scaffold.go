package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/pdtgen-labs/pdtgen/internal/descriptor"
	"github.com/pdtgen-labs/pdtgen/internal/gitignore"
	"github.com/pdtgen-labs/pdtgen/internal/manifest"
	"github.com/pdtgen-labs/pdtgen/internal/report"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Layout paths, relative to the workspace root.
const (
	MainSourceRoot = "src/main/php"
	TestSourceRoot = "src/test/php"
	SettingsDir    = ".settings"
	BuildPathFile  = ".buildpath"
	DummyTestFile  = "DummyTest.php"

	ResourcesPrefsFile = "org.eclipse.core.resources.prefs"
	PHPCorePrefsFile   = "org.eclipse.php.core.prefs"
	FacetCoreFile      = "org.eclipse.wst.common.project.facet.core.xml"
)

// FacetPHPVersion is the php.component facet version written to the facet
// descriptor.
const FacetPHPVersion = "5.3"

// Result holds the outcome of a run.
type Result struct {
	Identifiers *manifest.Identifiers
	Files       []string // written this run, in order
	Skipped     []string // left untouched because they already existed
	Warnings    []string
}

// Scaffolder generates the project layout inside one workspace.
type Scaffolder struct {
	// ManifestPath is the manifest location inside the workspace.
	ManifestPath string

	fs     afero.Fs
	out    *report.Reporter
	log    *zap.Logger
	result *Result
}

// New returns a Scaffolder writing into fsys, reporting progress to out and
// diagnostics to log.
func New(fsys afero.Fs, out *report.Reporter, log *zap.Logger) *Scaffolder {
	return &Scaffolder{
		ManifestPath: manifest.FileName,
		fs:           fsys,
		out:          out,
		log:          log,
		result:       &Result{},
	}
}

// Run loads the manifest and generates every file in order: directory
// structure, .project, .buildpath, .gitignore. It stops at the first error;
// files written by earlier steps stay on disk.
func (s *Scaffolder) Run() (*Result, error) {
	s.result = &Result{}

	m, err := s.LoadManifest()
	if err != nil {
		return nil, err
	}
	ids, err := m.Identifiers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.ManifestPath, err)
	}
	s.result.Identifiers = ids
	s.result.Warnings = m.Advisories(FacetPHPVersion)
	s.log.Info("manifest loaded",
		zap.String("vendor", ids.Vendor),
		zap.String("project", ids.Project),
		zap.String("namespace", ids.Namespace))

	if err := s.GenerateDirectoryStructure(ids.Namespace); err != nil {
		return nil, err
	}
	if err := s.GenerateProjectDescriptor(ids.Project); err != nil {
		return nil, err
	}
	if err := s.GenerateBuildPath(); err != nil {
		return nil, err
	}
	if err := s.GenerateIgnoreFile(); err != nil {
		return nil, err
	}

	s.out.Warnings(s.result.Warnings)
	s.out.Done()
	return s.result, nil
}

// LoadManifest reads and validates the workspace manifest.
func (s *Scaffolder) LoadManifest() (*manifest.Manifest, error) {
	return manifest.Load(s.fs, s.ManifestPath)
}

// GenerateDirectoryStructure creates the namespaced source and test trees,
// rewrites the dummy test case, and creates the .settings files that do not
// exist yet.
func (s *Scaffolder) GenerateDirectoryStructure(namespace string) error {
	s.out.Step("Generating Eclipse PDT project structure...")

	data := templateData{Namespace: namespace, FacetPHPVersion: FacetPHPVersion}
	mainDir := filepath.Join(MainSourceRoot, namespace)
	testDir := filepath.Join(TestSourceRoot, namespace)

	for _, dir := range []string{mainDir, testDir} {
		if err := s.ensureDir(dir); err != nil {
			return err
		}
	}

	dummy, err := render("DummyTest.php.tmpl", data)
	if err != nil {
		return err
	}
	if err := s.apply(File{
		Path:    filepath.Join(testDir, DummyTestFile),
		Policy:  AlwaysOverwrite,
		Content: dummy,
	}); err != nil {
		return err
	}

	if err := s.ensureDir(SettingsDir); err != nil {
		return err
	}
	prefs, err := render("preferences.prefs", data)
	if err != nil {
		return err
	}
	facet, err := render("facet.core.xml.tmpl", data)
	if err != nil {
		return err
	}
	for _, f := range []File{
		{Path: filepath.Join(SettingsDir, ResourcesPrefsFile), Policy: CreateIfAbsent, Content: prefs},
		{Path: filepath.Join(SettingsDir, PHPCorePrefsFile), Policy: CreateIfAbsent, Content: prefs},
		{Path: filepath.Join(SettingsDir, FacetCoreFile), Policy: CreateIfAbsent, Content: facet},
	} {
		if err := s.apply(f); err != nil {
			return err
		}
	}
	return nil
}

// GenerateProjectDescriptor writes .project named project: from the built-in
// template when absent, otherwise by renaming the existing document.
func (s *Scaffolder) GenerateProjectDescriptor(project string) error {
	s.out.Step("Generating file [%s]...", descriptor.FileName)

	return s.apply(File{
		Path:   descriptor.FileName,
		Policy: MergeAndOverwrite,
		Merge: func(existing []byte, found bool) ([]byte, error) {
			if !found {
				d, err := descriptor.New(project)
				if err != nil {
					return nil, err
				}
				return d.Bytes()
			}
			d, err := descriptor.Parse(existing)
			if err != nil {
				return nil, err
			}
			if old := d.Name(); old != project {
				s.log.Info("renaming project descriptor",
					zap.String("from", old), zap.String("to", project))
			}
			d.SetName(project)
			return d.Bytes()
		},
	})
}

// GenerateBuildPath writes .buildpath unless it already exists.
func (s *Scaffolder) GenerateBuildPath() error {
	s.out.Step("Generating file [%s]...", BuildPathFile)

	content, err := render("buildpath.xml", templateData{})
	if err != nil {
		return err
	}
	return s.apply(File{Path: BuildPathFile, Policy: CreateIfAbsent, Content: content})
}

// GenerateIgnoreFile merges the required entries into .gitignore.
func (s *Scaffolder) GenerateIgnoreFile() error {
	s.out.Step("Generating file [%s]...", gitignore.FileName)

	return s.apply(File{
		Path:   gitignore.FileName,
		Policy: MergeAndOverwrite,
		Merge: func(existing []byte, _ bool) ([]byte, error) {
			return gitignore.MergeContent(existing), nil
		},
	})
}

package ngattrhint

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_NilFilesIsConfigurationError(t *testing.T) {
	if _, err := Run(Options{}); err == nil {
		t.Fatal("expected error for nil Files")
	}
}

func TestRun_EmptyFilesSucceedsWithNoFindings(t *testing.T) {
	findings, err := Run(Options{Files: []string{}})
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 0 {
		t.Errorf("unexpected findings: %v", findings)
	}
}

func TestRun_InvalidEncodingCaughtBeforeIO(t *testing.T) {
	// The file does not exist; the encoding error must win because it is
	// checked before any file is opened.
	_, err := Run(Options{Files: []string{"does-not-exist.html"}, FileEncoding: "klingon"})
	if err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "page.html", `<!DOCTYPE html>
<html>
<body>
  <div ng-show="visible" ng-hide="hidden"></div>
  <input type="password" ng-model="pw" ng-trim="false">
  <li ng-repeat="x track by y extra"></li>
</body>
</html>
`)

	findings, err := Run(Options{Files: []string{path}})
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 3 {
		t.Fatalf("expected 3 findings, got %d: %v", len(findings), findings)
	}

	// Document order, with accurate source lines.
	cases := []struct {
		line     int
		rule     string
		severity string
	}{
		{4, "NG001", "error"},
		{5, "NG003", "warning"},
		{6, "NG005", "error"},
	}
	for i, want := range cases {
		got := findings[i]
		if got.File != path {
			t.Errorf("finding %d file = %s", i, got.File)
		}
		if got.Line != want.line || got.Rule != want.rule || got.Severity != want.severity {
			t.Errorf("finding %d = %d/%s/%s, want %d/%s/%s",
				i, got.Line, got.Rule, got.Severity, want.line, want.rule, want.severity)
		}
	}
}

func TestRun_MultipleFilesSubmissionOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFixture(t, dir, "b.html", `<div ng-init="x = 1"></div>`+"\n")
	second := writeFixture(t, dir, "a.html", `<select ng-options="x.a as x.b for x in items track by x.id"></select>`+"\n")

	findings, err := Run(Options{Files: []string{first, second}})
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d: %v", len(findings), findings)
	}
	if findings[0].File != first || findings[1].File != second {
		t.Errorf("order = [%s %s], want submission order [%s %s]",
			findings[0].File, findings[1].File, first, second)
	}
}

func TestRun_MissingFileReturnsNoFindings(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.html", `<div ng-init="x = 1"></div>`+"\n")

	findings, err := Run(Options{Files: []string{good, filepath.Join(dir, "missing.html")}})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if findings != nil {
		t.Errorf("expected no partial findings, got %v", findings)
	}
}

func TestRun_IgnoreAttributes(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "page.html", `<div ng-custom=""></div>`+"\n")

	findings, err := Run(Options{Files: []string{path}})
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 1 || findings[0].Rule != "NG008" {
		t.Fatalf("expected one NG008 finding, got %v", findings)
	}

	findings, err = Run(Options{Files: []string{path}, IgnoreAttributes: []string{"ng-custom"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 0 {
		t.Errorf("ignored attribute still reported: %v", findings)
	}
}

func TestRun_CleanFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "clean.html", `<!DOCTYPE html>
<ul>
  <li ng-repeat="item in items track by item.id" ng-bind="item.name"></li>
</ul>
<select ng-model="choice" ng-options="item.name for item in items"></select>
`)

	findings, err := Run(Options{Files: []string{path}})
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 0 {
		t.Errorf("clean file produced findings: %v", findings)
	}
}

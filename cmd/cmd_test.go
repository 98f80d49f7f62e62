package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/filter"
)

const testDataset = `{
  "metadata": {"total": 3, "domains": 2, "years": ["2025", "2024"], "last_updated": "2025-01-02T10:00:00"},
  "certificates": [
    {"title": "Go Concurrency", "domain": "software_development", "year": "2024", "date": "2024-03-05", "skills": ["Go"]},
    {"title": "Rust Basics", "domain": "software_development", "year": "2025", "skills": ["Rust", "go"]},
    {"title": "AWS Networking", "domain": "cloud_infrastructure", "year": "2024", "skills": ["AWS"]}
  ]
}`

// setupCmdTest isolates HOME, writes the test dataset and resets the
// package-level flags and output writers.
func setupCmdTest(t *testing.T) (string, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CERTVIEW_DATA", "")
	t.Setenv("CERTVIEW_LANG", "")

	data := filepath.Join(home, "learning-data.json")
	if err := os.WriteFile(data, []byte(testDataset), 0o644); err != nil {
		t.Fatal(err)
	}

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, errOut

	flagData, flagLang, flagVerbose = data, "", false
	flagViewDomain, flagViewYear, flagViewSkills = filter.AllValue, filter.AllValue, nil
	flagViewSort, flagViewLayout, flagViewFormat, flagViewWatch = "", "", "text", false
	flagSkillsTop, flagSkillsJSON = 0, false
	flagInitForce = false
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
		flagData, flagLang = "", ""
	})
	return data, out, errOut
}

func newTestCommand(out *bytes.Buffer) *cobra.Command {
	c := &cobra.Command{}
	c.SetOut(out)
	c.SetContext(context.Background())
	return c
}

type viewJSON struct {
	Shown        int `json:"shown"`
	Total        int `json:"total"`
	Certificates []struct {
		Title string `json:"title"`
	} `json:"certificates"`
	Message string `json:"message"`
}

func TestView_JSONWithFilters(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	flagViewFormat = "json"
	flagViewSkills = []string{"GO"}
	flagViewSort = "title-asc"

	if err := runView(newTestCommand(out), nil); err != nil {
		t.Fatalf("runView: %v", err)
	}
	var got viewJSON
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if got.Shown != 2 || got.Total != 3 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.Certificates[0].Title != "Go Concurrency" || got.Certificates[1].Title != "Rust Basics" {
		t.Fatalf("unexpected order: %+v", got.Certificates)
	}
}

func TestView_QueryAndDomain(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	flagViewDomain = "cloud_infrastructure"

	if err := runView(newTestCommand(out), []string{"aws"}); err != nil {
		t.Fatalf("runView: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "AWS Networking") || strings.Contains(s, "Rust Basics") {
		t.Fatalf("unexpected view:\n%s", s)
	}
	if !strings.Contains(s, "Showing 1 of 3 certificates") {
		t.Fatalf("missing results count:\n%s", s)
	}
}

func TestView_LoadFailureIsRenderedNotReturned(t *testing.T) {
	_, out, errOut := setupCmdTest(t)
	flagData = filepath.Join(t.TempDir(), "missing.json")
	flagLang = "fr"

	if err := runView(newTestCommand(out), nil); err != nil {
		t.Fatalf("runView: %v", err)
	}
	if !strings.Contains(out.String(), "Impossible de charger les certificats") {
		t.Fatalf("expected localized failure message, got:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "⚠") {
		t.Fatalf("expected warning on stderr, got %q", errOut.String())
	}
}

func TestView_RejectsUnknownSort(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	flagViewSort = "newest"
	if err := runView(newTestCommand(out), nil); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestView_WatchNeedsLocalFile(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	flagData = "https://example.com/learning-data.json"
	flagViewWatch = true
	if err := runView(newTestCommand(out), nil); err == nil {
		t.Fatal("expected error for --watch on a URL")
	}
}

func TestSkills_TopJSON(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	flagSkillsTop = 1
	flagSkillsJSON = true

	if err := runSkills(newTestCommand(out), nil); err != nil {
		t.Fatalf("runSkills: %v", err)
	}
	var got []filter.SkillCount
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if len(got) != 1 || got[0].Skill != "go" || got[0].Count != 2 {
		t.Fatalf("unexpected skills: %+v", got)
	}
}

func TestStats(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	if err := runStats(newTestCommand(out), nil); err != nil {
		t.Fatalf("runStats: %v", err)
	}
	s := out.String()
	for _, want := range []string{"[Certificates] 3", "[Domains] 2", "[Active years] 2", "[Cloud Infrastructure] 1", "[Software Development] 2"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in:\n%s", want, s)
		}
	}
}

func TestStats_MissingDatasetIsError(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	flagData = filepath.Join(t.TempDir(), "missing.json")
	if err := runStats(newTestCommand(out), nil); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestBuild_WritesDataset(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	root := filepath.Join(t.TempDir(), "archived")
	dir := filepath.Join(root, "2024", "Learning Kubernetes [Beginner-2h 10m]")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "CertificateOfCompletion_Learning Kubernetes.pdf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(t.TempDir(), "out", "data.json")

	c := newTestCommand(out)
	c.SetContext(context.WithValue(context.Background(), buildFlagsKey{}, buildFlags{out: dest, timeout: time.Second}))
	if err := runBuild(c, []string{root}); err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	cat, err := catalog.Load(context.Background(), dest)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Records) != 1 || cat.Records[0].Title != "Learning Kubernetes" || cat.Records[0].Year != "2024" {
		t.Fatalf("unexpected records: %+v", cat.Records)
	}
	if !strings.Contains(out.String(), "Wrote 1 certificate(s)") {
		t.Fatalf("missing summary:\n%s", out.String())
	}
}

func TestAcquireDatasetLock_Contention(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "data.json")
	held := flock.New(dest + ".lock")
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("TryLock: %v %v", locked, err)
	}
	defer held.Unlock()

	if _, err := acquireDatasetLock(dest, 300*time.Millisecond); err == nil {
		t.Fatal("expected lock contention error")
	}
	_ = held.Unlock()

	unlock, err := acquireDatasetLock(dest, time.Second)
	if err != nil {
		t.Fatalf("acquireDatasetLock: %v", err)
	}
	unlock()
}

func TestInit_WritesConfigOnce(t *testing.T) {
	_, out, _ := setupCmdTest(t)
	flagLang = "fr-CA"

	if err := runInit(newTestCommand(out), nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	home := os.Getenv("HOME")
	b, err := os.ReadFile(filepath.Join(home, ".certview", "certview.yaml"))
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(b), "lang: fr") {
		t.Fatalf("unexpected config:\n%s", b)
	}
	if _, err := os.Stat(filepath.Join(home, ".certview", ".env")); err != nil {
		t.Fatalf("dotenv template not written: %v", err)
	}

	out.Reset()
	if err := runInit(newTestCommand(out), nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	if !strings.Contains(out.String(), "Config already exists") {
		t.Fatalf("expected skip on second init:\n%s", out.String())
	}
}

func TestVersion(t *testing.T) {
	out := &bytes.Buffer{}
	if err := runVersion(newTestCommand(out), nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Version:    dev") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

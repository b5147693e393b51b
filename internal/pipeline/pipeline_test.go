package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"tourpipe/internal/config"
	"tourpipe/internal/dataset"
	"tourpipe/internal/fileutil"
	"tourpipe/internal/runlog"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	return &config.Config{
		Paths: config.Paths{
			SourceCSV: filepath.Join(root, "source.csv"),
			DataDir:   filepath.Join(root, "data"),
			AssetDir:  filepath.Join(root, "public", "assets", "vr-covers"),
			CacheDir:  filepath.Join(root, "cache"),
		},
		Enrich: config.Enrich{Concurrency: 2, TimeoutSeconds: 5, UserAgent: "tourpipe-test"},
	}
}

func writeSourceCSV(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func metaPage(title string) string {
	return fmt.Sprintf(`<html><head>
		<meta property="og:title" content=%q>
		<meta property="og:description" content="A tour.">
		<meta property="og:image" content="https://img.example.com/c.jpg">
	</head><body></body></html>`, title)
}

func TestBuildEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Ae44XBBg":
			fmt.Fprint(w, metaPage("Loft Tour"))
		case "/BbCcDd22":
			fmt.Fprint(w, metaPage("Gallery Tour"))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	cfg := testConfig(t)
	writeSourceCSV(t, cfg.Paths.SourceCSV,
		"所属用户,Showcase Link,空间类型标签,拍摄设备,是否Carousel\n"+
			"Alex Chen,"+server.URL+"/Ae44XBBg,Residential,Galois M4,1\n"+
			","+server.URL+"/BbCcDd22,Art & Exhibition,,\n"+
			"Alex Chen,"+server.URL+"/Broken99,Office,,\n")

	ledger, err := runlog.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Close()

	p, err := New(Options{Config: cfg, Ledger: ledger, Client: server.Client()})
	if err != nil {
		t.Fatal(err)
	}
	result, err := p.Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if result.Rows != 3 || result.Tours != 2 {
		t.Errorf("result = %+v", result)
	}
	if len(result.Removed) != 1 || result.Removed[0] != "Broken99" {
		t.Errorf("removed = %v", result.Removed)
	}
	if result.ReportPath == "" {
		t.Error("failed fetch should produce an audit report")
	}

	tours, err := dataset.LoadTours(cfg.ToursPath())
	if err != nil {
		t.Fatal(err)
	}
	if len(tours) != 2 {
		t.Fatalf("tours = %+v", tours)
	}
	if tours[0].ID != "Ae44XBBg" || tours[0].Title != "Loft Tour" || tours[0].ShortCategory != "residential" {
		t.Errorf("first tour = %+v", tours[0])
	}
	if tours[1].Author != "Alex Chen" {
		t.Errorf("fill-down failed: %+v", tours[1])
	}

	var pros []dataset.Professional
	if err := fileutil.ReadJSON(cfg.ProfessionalsPath(), &pros); err != nil {
		t.Fatal(err)
	}
	if len(pros) != 1 || pros[0].Name != "Alex Chen" {
		t.Fatalf("professionals = %+v", pros)
	}
	for _, id := range pros[0].VRIDs {
		if id == "Broken99" {
			t.Error("removed id still referenced by professional")
		}
	}

	carousel, err := dataset.LoadCarousel(cfg.CarouselPath())
	if err != nil {
		t.Fatal(err)
	}
	if len(carousel) != 1 || carousel[0].VRID != "Ae44XBBg" || carousel[0].Order != 0 {
		t.Errorf("carousel = %+v", carousel)
	}

	var tags []dataset.Tag
	if err := fileutil.ReadJSON(cfg.CategoryTagsPath(), &tags); err != nil {
		t.Fatal(err)
	}
	if len(tags) != 2 {
		t.Errorf("category tags = %+v", tags)
	}

	runs, err := ledger.List(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != result.RunID || runs[0].Removed != 1 {
		t.Errorf("ledger runs = %+v", runs)
	}
}

func TestBuildDryRunWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, metaPage("Tour"))
	}))
	defer server.Close()

	cfg := testConfig(t)
	writeSourceCSV(t, cfg.Paths.SourceCSV,
		"Owner,Showcase Link\nAlex,"+server.URL+"/Ae44XBBg\n")

	p, err := New(Options{Config: cfg, Client: server.Client(), DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Build(context.Background()); err != nil {
		t.Fatalf("build: %v", err)
	}

	if _, err := os.Stat(cfg.ToursPath()); !os.IsNotExist(err) {
		t.Error("dry run must not write the tour snapshot")
	}
	if _, err := os.Stat(cfg.ProfessionalsPath()); !os.IsNotExist(err) {
		t.Error("dry run must not write the professionals table")
	}
}

func TestBuildFailsOnMissingSource(t *testing.T) {
	cfg := testConfig(t)
	p, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Build(context.Background()); err == nil {
		t.Fatal("missing source csv must be fatal")
	}
}

func TestRunLockRejectsConcurrentRun(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	held := flock.New(cfg.LockPath())
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("prelock: locked=%v err=%v", locked, err)
	}
	defer held.Unlock()

	p, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Derive(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("err = %v, want ErrAlreadyRunning", err)
	}
}

func TestDeriveOnlyRefreshesTagsAndCarousel(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	seed := []dataset.Tour{
		{ID: "Ae44XBBg", Title: "T", Cover: "c", Category: "Office", Device: "Galois M4", Carousel: true},
	}
	if err := dataset.WriteTours(cfg.ToursPath(), seed); err != nil {
		t.Fatal(err)
	}

	p, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Derive(context.Background()); err != nil {
		t.Fatalf("derive: %v", err)
	}

	var devices []dataset.Tag
	if err := fileutil.ReadJSON(cfg.DeviceTagsPath(), &devices); err != nil {
		t.Fatal(err)
	}
	if len(devices) != 1 || devices[0].ID != "device:galois-m4" {
		t.Errorf("device tags = %+v", devices)
	}
	carousel, err := dataset.LoadCarousel(cfg.CarouselPath())
	if err != nil {
		t.Fatal(err)
	}
	if len(carousel) != 1 || carousel[0].VRID != "Ae44XBBg" {
		t.Errorf("carousel = %+v", carousel)
	}
}

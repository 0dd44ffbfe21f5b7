package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"pingdash/internal/report"
)

func fakeService(t *testing.T, failPing bool) string {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/system-info", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"brand":"HP","cpuUsage":7}`))
	})
	r.Get("/api/network-info", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"gateway":"192.168.1.1"}`))
	})
	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		if failPing {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"successfulPings":[{"ip":"192.168.1.1","output":"64 bytes"}],` +
			`"unsuccessfulPings":[{"ip":"192.168.1.9","error":"timeout","output":"100% packet loss"}]}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUDO_USER", "")
	t.Setenv("PINGDASH_LOG_DIR", t.TempDir())
	for _, k := range []string{"PINGDASH_BASE_URL", "PINGDASH_EXPORT_DIR", "PINGDASH_LOG_LEVEL", "PINGDASH_TIMEOUT_MS"} {
		t.Setenv(k, "")
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		appInstance = nil
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestShow(t *testing.T) {
	base := fakeService(t, false)
	out, _, err := run(t, "show", "--base-url", base, "--export-dir", t.TempDir(), "--log-level", "info")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"HP", "192.168.1.1:", "Success - 64 bytes", "Failed - timeout"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShow_AcquisitionFailureExitsNonZero(t *testing.T) {
	base := fakeService(t, true)
	_, _, err := run(t, "show", "--base-url", base, "--export-dir", t.TempDir(), "--log-level", "info")
	if err == nil {
		t.Fatal("expected acquisition error")
	}
	if !strings.Contains(err.Error(), "ping") {
		t.Fatalf("error should name the endpoint: %v", err)
	}
}

func TestExport(t *testing.T) {
	base := fakeService(t, false)
	dir := t.TempDir()
	out, _, err := run(t, "export", "--base-url", base, "--export-dir", dir, "--log-level", "info")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 1 successful and 1 unsuccessful") {
		t.Errorf("output = %q", out)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, report.FileName))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(report.UnsuccessfulSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[1][2] != "Failed - 100% packet loss" {
		t.Fatalf("unsuccessful rows = %q", rows)
	}
}

func TestExport_WriteFailureIsNotAnError(t *testing.T) {
	base := fakeService(t, false)
	dir := filepath.Join(t.TempDir(), "missing")
	_, errOut, err := run(t, "export", "--base-url", base, "--export-dir", dir, "--log-level", "info")
	if err != nil {
		t.Fatalf("write failures must not fail the command: %v", err)
	}
	if !strings.Contains(errOut, "Export failed") {
		t.Errorf("stderr = %q", errOut)
	}
	if _, err := os.Stat(filepath.Join(dir, report.FileName)); !os.IsNotExist(err) {
		t.Errorf("no workbook expected, stat err = %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "pingdash dev" {
		t.Fatalf("output = %q", out)
	}
	if appInstance != nil {
		t.Fatal("version must not initialize the application")
	}
}

func TestCompleteLogLevels(t *testing.T) {
	got, _ := completeLogLevels(nil, nil, "w")
	if len(got) != 1 || got[0] != "warn" {
		t.Fatalf("completions = %v", got)
	}
}

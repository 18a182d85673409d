package notifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/bodysoul/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := userConfigDirFunc
	userConfigDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDirFunc = old })
	return dir
}

func withProcess(t *testing.T, p ps.Process, err error) {
	t.Helper()
	old := findProcessFunc
	findProcessFunc = func(int) (ps.Process, error) { return p, err }
	t.Cleanup(func() { findProcessFunc = old })
}

func TestTrayConfigDir(t *testing.T) {
	dir := withConfigDir(t)
	trayDir := filepath.Join(dir, constants.TrayAppIdentifier)

	got, err := TrayConfigDir()
	if err != nil {
		t.Fatalf("TrayConfigDir() error = %v", err)
	}
	if got != trayDir {
		t.Errorf("TrayConfigDir() = %s, want %s", got, trayDir)
	}

	if err := os.MkdirAll(trayDir, 0o755); err != nil {
		t.Fatal(err)
	}
	custom := filepath.Join(dir, "custom")
	settings := fmt.Sprintf(`{"settings": {"lockfile_dir": %q}}`, custom)
	if err := os.WriteFile(filepath.Join(trayDir, "settings.json"), []byte(settings), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err = TrayConfigDir()
	if err != nil {
		t.Fatalf("TrayConfigDir() error = %v", err)
	}
	if got != custom {
		t.Errorf("TrayConfigDir() = %s, want %s", got, custom)
	}
}

func TestReadLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	if _, err := readLock(path); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("readLock() missing file error = %v, want %v", err, ErrTrayNotRunning)
	}

	tests := []struct {
		name    string
		content string
		want    lock
		wantErr bool
	}{
		{"valid", "8080|1234|s3cret\n", lock{Port: 8080, PID: 1234, Secret: "s3cret"}, false},
		{"two parts", "8080|1234", lock{}, true},
		{"bad port", "http|1234|s3cret", lock{}, true},
		{"port out of range", "70000|1234|s3cret", lock{}, true},
		{"bad pid", "8080|abc|s3cret", lock{}, true},
		{"empty secret", "8080|1234| ", lock{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			got, err := readLock(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readLock() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("readLock() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVerifyProcess(t *testing.T) {
	withProcess(t, &mockProcess{pid: 42, executable: "bodysoul-tray"}, nil)
	if err := verifyProcess(42); err != nil {
		t.Errorf("verifyProcess() error = %v", err)
	}

	withProcess(t, &mockProcess{pid: 42, executable: "bash"}, nil)
	if err := verifyProcess(42); err == nil {
		t.Error("expected error for a foreign process")
	}

	withProcess(t, nil, nil)
	if err := verifyProcess(42); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("verifyProcess() error = %v, want %v", err, ErrTrayNotRunning)
	}
}

func TestNotify(t *testing.T) {
	var (
		gotSecret  string
		gotPayload Payload
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Bodysoul-Secret")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	port, _ := strconv.Atoi(u.Port())

	dir := withConfigDir(t)
	trayDir := filepath.Join(dir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := fmt.Sprintf("%d|%d|topsecret", port, 99)
	if err := os.WriteFile(filepath.Join(trayDir, constants.NotifierLockfileName), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	withProcess(t, &mockProcess{pid: 99, executable: "bodysoul-tray"}, nil)

	if err := New().Notify("Day complete!"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if gotSecret != "topsecret" {
		t.Errorf("secret header = %q, want %q", gotSecret, "topsecret")
	}
	if gotPayload.Text != "Day complete!" || gotPayload.DurationMs != constants.NotificationDurationMs {
		t.Errorf("payload = %+v", gotPayload)
	}
}

func TestNotifyServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	u, _ := url.Parse(server.URL)
	port, _ := strconv.Atoi(u.Port())

	err := New().send(lock{Port: port, PID: 1, Secret: "x"}, Payload{Text: "hi"})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

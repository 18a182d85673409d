// Package notifier delivers short messages to the bodysoul-tray companion app, which shows
// them as desktop notifications.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/logger"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

var ErrTrayNotRunning = errors.New(constants.TrayAppExecutable + " is not running")

type Notifier struct {
	client *http.Client
}

type Payload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// lock is the content of the tray lockfile: "port|pid|secret".
type lock struct {
	Port   int
	PID    int
	Secret string
}

func New() *Notifier {
	return &Notifier{client: &http.Client{Timeout: 2 * time.Second}}
}

// Notify sends text to the running tray app.
func (n *Notifier) Notify(text string) error {
	dir, err := TrayConfigDir()
	if err != nil {
		return err
	}

	l, err := readLock(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	if err := verifyProcess(l.PID); err != nil {
		return err
	}

	return n.send(l, Payload{Text: text, DurationMs: constants.NotificationDurationMs})
}

// NotifyQuietly sends text and logs a failure instead of returning it.
func (n *Notifier) NotifyQuietly(text string) {
	if err := n.Notify(text); err != nil {
		logger.Warn("Notification not delivered", "error", err)
	}
}

// TrayConfigDir returns the directory holding the tray lockfile. The tray's own settings.json
// may point it elsewhere.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayDir, "settings.json"))
	if err != nil {
		return trayDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err != nil {
		logger.Debug("Ignoring unreadable tray settings", "error", err)
		return trayDir, nil
	}
	if d := store.Settings.LockfileDir; d != nil && *d != "" {
		return *d, nil
	}
	return trayDir, nil
}

func readLock(path string) (lock, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return lock{}, ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return lock{}, errors.New("lockfile is malformed")
	}

	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return lock{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return lock{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return lock{}, errors.New("invalid process ID in lockfile")
	}

	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return lock{}, errors.New("secret in lockfile is empty")
	}

	return lock{Port: port, PID: pid, Secret: secret}, nil
}

func verifyProcess(pid int) error {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayAppExecutable) {
		return fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayAppExecutable, process.Executable())
	}
	return nil
}

func (n *Notifier) send(l lock, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://127.0.0.1:%d", l.Port), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bodysoul-Secret", l.Secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(msg))
}

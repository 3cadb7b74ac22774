//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback

var binPath = "expodir_e2e"

// Keys as the terminal sends them
const (
	KeyEnter = "\r"
	KeyEsc   = "\x1b"
	KeyCtrlC = "\x03"
	KeySpace = " "
	KeyRight = "\x1b[C"
	KeyLeft  = "\x1b[D"
)

// ansiRe matches CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// TUITest runs the expodir binary in a pseudo terminal and records
// everything it writes
type TUITest struct {
	t       *testing.T
	pty     *os.File
	cmd     *exec.Cmd
	home    string
	logFile string

	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

// NewTUITest creates a driver with an isolated home directory
func NewTUITest(t *testing.T) *TUITest {
	home := t.TempDir()
	return &TUITest{
		t:       t,
		home:    home,
		logFile: filepath.Join(home, "expodir.log"),
		buf:     make([]byte, ringSize),
	}
}

// env returns the child environment. Config and cache directories live
// under the test's home.
func (tf *TUITest) env() []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"HOME="+tf.home,
		"XDG_CONFIG_HOME="+filepath.Join(tf.home, ".config"),
		"XDG_CACHE_HOME="+filepath.Join(tf.home, ".cache"),
		"EXPODIR_LOG_FILE="+tf.logFile,
		"EXPODIR_LOG_LEVEL=debug",
	)
}

// Run executes the binary to completion outside the PTY
func (tf *TUITest) Run(args ...string) (string, error) {
	tf.t.Helper()
	cmd := exec.Command(binPath, args...)
	cmd.Env = tf.env()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// StartApp launches the browser against baseURL in a 120x40 PTY
func (tf *TUITest) StartApp(baseURL string, args ...string) error {
	cmdArgs := append([]string{"--base-url", baseURL, "--search-debounce", "100ms"}, args...)
	tf.cmd = exec.Command(binPath, cmdArgs...)
	tf.cmd.Env = tf.env()

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start in pty: %w", err)
	}
	tf.pty = f

	go tf.read()
	return nil
}

// read copies PTY output into the ring buffer until the PTY closes
func (tf *TUITest) read() {
	chunk := make([]byte, 8192)
	for {
		n, err := tf.pty.Read(chunk)
		if n > 0 {
			tf.mu.Lock()
			for _, b := range chunk[:n] {
				tf.buf[tf.head] = b
				tf.head = (tf.head + 1) % ringSize
				if tf.head == 0 {
					tf.full = true
				}
			}
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Send writes keys to the application
func (tf *TUITest) Send(keys ...string) {
	tf.t.Helper()
	for _, k := range keys {
		if _, err := tf.pty.Write([]byte(k)); err != nil {
			tf.t.Fatalf("failed to send %q: %v", k, err)
		}
		time.Sleep(30 * time.Millisecond)
	}
}

// Type sends text one key at a time
func (tf *TUITest) Type(text string) {
	tf.t.Helper()
	for _, r := range text {
		tf.Send(string(r))
	}
}

// Mark forgets the output so far, so later waits only see new frames
func (tf *TUITest) Mark() {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.head = 0
	tf.full = false
}

// See waits for text to appear in the normalized output
func (tf *TUITest) See(text string) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool { return strings.Contains(s, text) }, 5*time.Second)
}

// WaitFor polls the normalized output until pred holds or timeout passes
func (tf *TUITest) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Plain()) {
			return true
		}
		if time.Now().After(deadline) {
			tf.dumpTail()
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Snapshot returns the raw output recorded so far
func (tf *TUITest) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, 0, ringSize)
	out = append(out, tf.buf[tf.head:]...)
	out = append(out, tf.buf[:tf.head]...)
	return string(out)
}

// Plain returns the output with escape sequences removed
func (tf *TUITest) Plain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// WaitExit waits for the process to end
func (tf *TUITest) WaitExit(timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case err := <-done:
		tf.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process still running after %s", timeout)
	}
}

func (tf *TUITest) dumpTail() {
	s := tf.Plain()
	if len(s) > 4096 {
		s = s[len(s)-4096:]
	}
	tf.t.Logf("--- output tail ---\n%s", s)
}

// Cleanup closes the PTY and kills the process if it is still running
func (tf *TUITest) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
}

package session

import (
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"aetherfm/internal/log"
)

// Opener hands a path or URI to the desktop's default application.
type Opener interface {
	Open(target string) error
}

// CommandOpener starts an external program with the target as its last
// argument. An empty Command selects the platform launcher.
type CommandOpener struct {
	Command string
}

// Open starts the launcher without waiting for it to finish.
func (o CommandOpener) Open(target string) error {
	name, args := o.command()
	cmd := exec.Command(name, append(args, target)...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.LogWithFields(log.F("target", target), log.F("command", name)).Debugf("launcher exited: %v", err)
		}
	}()
	return nil
}

func (o CommandOpener) command() (string, []string) {
	if fields := strings.Fields(o.Command); len(fields) > 0 {
		return fields[0], fields[1:]
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}
	default:
		return "xdg-open", nil
	}
}

// FileURI builds a file:// URI for an absolute path.
func FileURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}

package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const presentationsDir = "presentations"

var (
	slugUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	safeExt    = regexp.MustCompile(`^\.[a-z0-9]+$`)
)

// DiskStore writes uploads under a local directory that the router serves at
// /uploads, so the returned URLs resolve against the public base URL.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, presentationsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *DiskStore) SavePresentation(teamName, filename string, r io.Reader) (string, error) {
	name := objectName(teamName, filename)
	dir := filepath.Join(s.dir, presentationsDir)
	path := filepath.Join(dir, name)

	// The name is derived from form input; never let it leave the store.
	if filepath.Dir(path) != dir {
		return "", fmt.Errorf("invalid presentation name %q", name)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create presentation file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("write presentation file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close presentation file: %w", err)
	}

	return s.baseURL + "/uploads/" + presentationsDir + "/" + name, nil
}

// objectName derives a collision-resistant name from the team name and the
// current time. Both inputs come straight from the public form, so the team
// slug is reduced to a safe character set and the extension is validated
// before either can reach the filesystem.
func objectName(teamName, filename string) string {
	team := slugUnsafe.ReplaceAllString(strings.TrimSpace(teamName), "-")
	team = strings.Trim(team, "-")
	if team == "" {
		team = "team"
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if !safeExt.MatchString(ext) {
		ext = ""
	}

	return filepath.Base(fmt.Sprintf("%s-%d%s", team, time.Now().UnixMilli(), ext))
}

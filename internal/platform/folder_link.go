package platform

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Drive hosts accepted in folder links
var driveHosts = []string{"drive.google.com", "docs.google.com"}

var (
	folderPathPattern = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)
	folderIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ExtractFolderID accepts either a bare folder id or a Drive folder URL
// (https://drive.google.com/drive/folders/<id>, .../drive/u/0/folders/<id>,
// https://drive.google.com/open?id=<id>) and returns the folder id.
func ExtractFolderID(input string) (string, error) {
	clean := strings.TrimSpace(input)
	clean = strings.ReplaceAll(clean, "\n", "")
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.TrimSuffix(clean, "/")

	if clean == "" {
		return "", fmt.Errorf("folder id is empty")
	}

	if !strings.Contains(clean, "://") {
		if !folderIDPattern.MatchString(clean) {
			return "", fmt.Errorf("invalid folder id: %s", clean)
		}
		return clean, nil
	}

	parsed, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("URL must use http or https scheme")
	}
	if !isDriveHost(parsed.Host) {
		return "", fmt.Errorf("not a Google Drive link (invalid host: %s)", parsed.Host)
	}

	if matches := folderPathPattern.FindStringSubmatch(parsed.Path); len(matches) > 1 {
		return matches[1], nil
	}
	if id := parsed.Query().Get("id"); id != "" && folderIDPattern.MatchString(id) {
		return id, nil
	}

	return "", fmt.Errorf("could not extract folder ID from Google Drive link")
}

func isDriveHost(host string) bool {
	host = strings.ToLower(host)
	for _, valid := range driveHosts {
		if host == valid || strings.HasSuffix(host, "."+valid) {
			return true
		}
	}
	return false
}

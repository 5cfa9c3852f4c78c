package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// SiteFilePath maps a request path to a slash-separated file path inside the
// site directory. Directory requests resolve to their index.html.
func SiteFilePath(requestPath string) (string, error) {
	if strings.Contains(requestPath, "..") {
		return "", fmt.Errorf("path cannot contain parent directory references")
	}

	dirRequest := requestPath == "" || strings.HasSuffix(requestPath, "/")
	cleaned := strings.TrimPrefix(path.Clean(NormalizePath(requestPath)), "/")
	if dirRequest {
		return path.Join(cleaned, "index.html"), nil
	}
	return cleaned, nil
}

func ValidateEntryPoint(ep EntryPoint) error {
	if ep.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if strings.ContainsAny(ep.Name, "/\\ ") {
		return fmt.Errorf("name %q cannot contain slashes or spaces", ep.Name)
	}

	if ep.Source == "" {
		return fmt.Errorf("entry %q: src cannot be empty", ep.Name)
	}

	if ep.Template == "" {
		return fmt.Errorf("entry %q: template cannot be empty", ep.Name)
	}

	if ep.HTML == "" {
		return fmt.Errorf("entry %q: html cannot be empty", ep.Name)
	}

	if strings.Contains(ep.HTML, "..") {
		return fmt.Errorf("entry %q: html cannot contain parent directory references", ep.Name)
	}

	return nil
}

// DuplicateNames lists names that appear more than once, in first-seen order.
func DuplicateNames(entryPoints []EntryPoint) []string {
	seen := make(map[string]int, len(entryPoints))
	var dups []string
	for _, ep := range entryPoints {
		seen[ep.Name]++
		if seen[ep.Name] == 2 {
			dups = append(dups, ep.Name)
		}
	}
	return dups
}

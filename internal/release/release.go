// Package release checks GitHub for newer published versions of the tool.
package release

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v60/github"
)

// Checker queries the latest published release of a repository.
type Checker struct {
	client *gh.Client
	owner  string
	repo   string
}

// New creates a Checker against the given repository. Pass gh.NewClient(nil)
// for anonymous access; release lookups need no token.
func New(client *gh.Client, owner, repo string) *Checker {
	return &Checker{client: client, owner: owner, repo: repo}
}

// Latest returns the tag name and HTML URL of the newest published release.
func (c *Checker) Latest(ctx context.Context) (string, string, error) {
	rel, _, err := c.client.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
	if err != nil {
		return "", "", fmt.Errorf("fetch latest release: %w", err)
	}
	return rel.GetTagName(), rel.GetHTMLURL(), nil
}

// IsNewer reports whether latest is a strictly newer version than current.
// Versions are dotted numeric tags with an optional leading "v"; unparsable
// segments compare as zero.
func IsNewer(current, latest string) bool {
	cur := parseVersion(current)
	lat := parseVersion(latest)
	for i := 0; i < 3; i++ {
		if lat[i] != cur[i] {
			return lat[i] > cur[i]
		}
	}
	return false
}

func parseVersion(v string) [3]int {
	var out [3]int
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	for i, part := range strings.SplitN(v, ".", 3) {
		if i >= 3 {
			break
		}
		// Strip pre-release/build suffixes like "1-rc1".
		if idx := strings.IndexAny(part, "-+"); idx >= 0 {
			part = part[:idx]
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out[i] = n
	}
	return out
}

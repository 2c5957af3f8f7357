package probe

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/tatterwing/lootkit/util/errors"
	"golang.org/x/mod/semver"
)

// LatestVersion fetches a GitHub-style release document and returns its tag,
// e.g. "v1.4.0".
func LatestVersion(client *http.Client, releaseURL string) (string, error) {
	resp, err := client.Get(releaseURL)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("bad status %v when checking the latest release version", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	err = json.NewDecoder(resp.Body).Decode(&release)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return release.TagName, nil
}

// UpdateAvailable compares two semantic versions with a leading v.
func UpdateAvailable(current, latest string) (bool, error) {
	if !semver.IsValid(current) {
		return false, errors.Newf("the current version %v is not a valid semantic version", current)
	}
	if !semver.IsValid(latest) {
		return false, errors.Newf("the latest version %v is not a valid semantic version", latest)
	}
	return semver.Compare(latest, current) > 0, nil
}

package github

import (
	"context"
	"errors"
	"fmt"

	"ghsync/internal/gitrepo"
)

const DefaultBaseURL = "https://api.github.com"

// GitHub returns repositories 100 at a time; the listing walks pages until an
// empty one comes back.
const listPageSize = 100

// ErrAuthentication marks a 401 from the API so callers can tell a bad token
// apart from transport trouble.
var ErrAuthentication = errors.New("authentication failed, check your GitHub token")

// Repository is the slice of GitHub's repository object the reconciler needs.
type Repository struct {
	Name     string `json:"name"`
	Private  bool   `json:"private"`
	CloneURL string `json:"clone_url"`
}

func (r Repository) Visibility() gitrepo.Visibility {
	if r.Private {
		return gitrepo.VisibilityPrivate
	}
	return gitrepo.VisibilityPublic
}

/* RepositoryAPI manages access to the GitHub REST API.
It adheres to the Repository pattern as well - it is at the boundary to
external data. All methods are synchronous.
*/

type RepositoryAPI struct {
	baseURL string
	token   string
}

func NewAPIClient(token string) *RepositoryAPI {
	return NewAPIClientForHost(token, DefaultBaseURL)
}

// NewAPIClientForHost exists so tests can point the client at an httptest
// server.
func NewAPIClientForHost(token, baseURL string) *RepositoryAPI {
	return &RepositoryAPI{
		baseURL: baseURL,
		token:   token,
	}
}

// ListRepositories fetches every repository of the authenticated account,
// public and private. The listing is all-or-nothing: if any page fails the
// whole result is discarded, because reconciliation against a partial list
// would delete repositories that still exist remotely.
func (api *RepositoryAPI) ListRepositories(ctx context.Context) ([]Repository, error) {
	var repos []Repository
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/user/repos?per_page=%d&page=%d", api.baseURL, listPageSize, page)
		pageRepos, err := githubGet[[]Repository](ctx, api.token, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch repository page %d: %w", page, err)
		}
		if len(pageRepos) == 0 {
			break
		}
		repos = append(repos, pageRepos...)
	}
	return repos, nil
}

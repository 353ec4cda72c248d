package gitrepo

// Visibility is the public/private classification of a repository. It doubles
// as the name of the subfolder a working copy lives under.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Visibilities lists the base-path subfolders in scan order.
var Visibilities = []Visibility{VisibilityPublic, VisibilityPrivate}

// LocalRepo is a working copy found under the base path.
type LocalRepo struct {
	Name       string
	Visibility Visibility
	Path       string
}

package reconcile

import (
	"path/filepath"
	"sort"

	"ghsync/internal/github"
	"ghsync/internal/gitrepo"

	"github.com/samber/lo"
)

type Kind string

const (
	KindClone  Kind = "clone"
	KindUpdate Kind = "update"
	KindMove   Kind = "move"
	KindDelete Kind = "delete"
)

// Action is one step of an action plan. Path is where the working copy ends
// up; FromPath is only set for moves.
type Action struct {
	Kind           Kind
	Repo           string
	Visibility     gitrepo.Visibility
	FromVisibility gitrepo.Visibility
	CloneURL       string
	Path           string
	FromPath       string
}

// Plan computes the full outer join of remote and local state on repository
// name:
//
//	remote only                -> clone into the folder matching visibility
//	both, visibility matches   -> update in place
//	both, visibility differs   -> move to the other folder, then update
//	local only                 -> delete
//
// The order is stable: clones, updates and moves in name order, deletes last
// in name order. A crash mid-run therefore leaves a state a repeat invocation
// converges from, and two runs against an unchanged remote produce an empty
// second plan.
func Plan(remote []github.Repository, local []gitrepo.LocalRepo, basePath string) []Action {
	localByName := lo.KeyBy(local, func(repo gitrepo.LocalRepo) string { return repo.Name })
	remoteNames := lo.SliceToMap(remote, func(repo github.Repository) (string, struct{}) {
		return repo.Name, struct{}{}
	})

	sortedRemote := make([]github.Repository, len(remote))
	copy(sortedRemote, remote)
	sort.Slice(sortedRemote, func(i, j int) bool { return sortedRemote[i].Name < sortedRemote[j].Name })

	var plan []Action
	for _, repo := range sortedRemote {
		visibility := repo.Visibility()
		target := filepath.Join(basePath, string(visibility), repo.Name)

		localRepo, exists := localByName[repo.Name]
		switch {
		case !exists:
			plan = append(plan, Action{
				Kind:       KindClone,
				Repo:       repo.Name,
				Visibility: visibility,
				CloneURL:   repo.CloneURL,
				Path:       target,
			})
		case localRepo.Visibility == visibility:
			plan = append(plan, Action{
				Kind:       KindUpdate,
				Repo:       repo.Name,
				Visibility: visibility,
				Path:       localRepo.Path,
			})
		default:
			plan = append(plan, Action{
				Kind:           KindMove,
				Repo:           repo.Name,
				Visibility:     visibility,
				FromVisibility: localRepo.Visibility,
				Path:           target,
				FromPath:       localRepo.Path,
			})
		}
	}

	// Deletes go last so a crash mid-run cannot have removed local state
	// before the rest of the plan had its chance to converge.
	stale := lo.Filter(local, func(repo gitrepo.LocalRepo, _ int) bool {
		_, exists := remoteNames[repo.Name]
		return !exists
	})
	sort.Slice(stale, func(i, j int) bool { return stale[i].Name < stale[j].Name })
	for _, repo := range stale {
		plan = append(plan, Action{
			Kind:       KindDelete,
			Repo:       repo.Name,
			Visibility: repo.Visibility,
			Path:       repo.Path,
		})
	}

	return plan
}

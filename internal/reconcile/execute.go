package reconcile

import (
	"fmt"

	"ghsync/internal/color"
	"ghsync/internal/gitrepo"
	logger "ghsync/internal/log"
)

// Recorder receives the outcome of every executed action. The journal is one;
// the terminal view model is another.
type Recorder interface {
	ActionSucceeded(kind Kind, repo string, visibility gitrepo.Visibility)
	ActionFailed(kind Kind, repo string, visibility gitrepo.Visibility, err error)
}

type multiRecorder []Recorder

func (m multiRecorder) ActionSucceeded(kind Kind, repo string, visibility gitrepo.Visibility) {
	for _, recorder := range m {
		recorder.ActionSucceeded(kind, repo, visibility)
	}
}

func (m multiRecorder) ActionFailed(kind Kind, repo string, visibility gitrepo.Visibility, err error) {
	for _, recorder := range m {
		recorder.ActionFailed(kind, repo, visibility, err)
	}
}

// MultiRecorder fans one outcome out to several recorders.
func MultiRecorder(recorders ...Recorder) Recorder {
	return multiRecorder(recorders)
}

// Execute runs the plan sequentially against the backend and returns the
// number of failed actions. A failed action is recorded and the run moves on;
// only the final exit status reflects it. Each backend call blocks until the
// underlying operation finishes.
func Execute(plan []Action, backend gitrepo.Backend, recorder Recorder) int {
	failed := 0
	for _, action := range plan {
		if err := apply(action, backend); err != nil {
			failed++
			logger.Log.Errorf("Failed to %s repository %s: %v", action.Kind, color.FgRed(action.Repo), err)
			recorder.ActionFailed(action.Kind, action.Repo, action.Visibility, err)
			continue
		}
		logger.Log.Debugf("Completed %s of %s", action.Kind, color.FgMagenta(action.Repo))
		recorder.ActionSucceeded(action.Kind, action.Repo, action.Visibility)
	}
	return failed
}

func apply(action Action, backend gitrepo.Backend) error {
	switch action.Kind {
	case KindClone:
		return backend.Clone(action.CloneURL, action.Path)
	case KindUpdate:
		return backend.Pull(action.Path)
	case KindMove:
		// A visibility change moves the working copy, then refreshes it in
		// its new home.
		if err := backend.Move(action.FromPath, action.Path); err != nil {
			return err
		}
		return backend.Pull(action.Path)
	case KindDelete:
		return backend.Remove(action.Path)
	default:
		return fmt.Errorf("unknown action kind %q for repository %s", action.Kind, action.Repo)
	}
}

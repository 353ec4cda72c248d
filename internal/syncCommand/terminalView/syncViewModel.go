package terminalView

import (
	"fmt"
	"sync"

	"ghsync/internal/counter"
	"ghsync/internal/gitrepo"
	"ghsync/internal/reconcile"
	"ghsync/internal/view"
)

type SyncViewModel struct {
	RemoteCount  *counter.Counter
	PlannedCount *counter.Counter
	ClonedCount  *counter.Counter
	UpdatedCount *counter.Counter
	MovedCount   *counter.Counter
	DeletedCount *counter.Counter
	DoneCount    *counter.Counter

	ErrorViewModel *view.ErrorViewModel

	// latestAction is written by the executor and read by the render
	// loop, so it goes through the mutex.
	mu           sync.Mutex
	latestAction string
}

func NewSyncViewModel(logFilePath string) *SyncViewModel {
	return &SyncViewModel{
		RemoteCount:    counter.NewCounter(),
		PlannedCount:   counter.NewCounter(),
		ClonedCount:    counter.NewCounter(),
		UpdatedCount:   counter.NewCounter(),
		MovedCount:     counter.NewCounter(),
		DeletedCount:   counter.NewCounter(),
		DoneCount:      counter.NewCounter(),
		ErrorViewModel: view.NewErrorViewModel(logFilePath),
	}
}

func (vm *SyncViewModel) counterForKind(kind reconcile.Kind) *counter.Counter {
	switch kind {
	case reconcile.KindClone:
		return vm.ClonedCount
	case reconcile.KindUpdate:
		return vm.UpdatedCount
	case reconcile.KindMove:
		return vm.MovedCount
	case reconcile.KindDelete:
		return vm.DeletedCount
	}
	return nil
}

func (vm *SyncViewModel) setLatestAction(kind reconcile.Kind, repo string) {
	vm.mu.Lock()
	vm.latestAction = fmt.Sprintf("%s %s", kind, repo)
	vm.mu.Unlock()
}

func (vm *SyncViewModel) LatestAction() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.latestAction
}

func (vm *SyncViewModel) ActionSucceeded(kind reconcile.Kind, repo string, _ gitrepo.Visibility) {
	vm.setLatestAction(kind, repo)
	vm.DoneCount.Add(1)
	if c := vm.counterForKind(kind); c != nil {
		c.Add(1)
	}
}

func (vm *SyncViewModel) ActionFailed(kind reconcile.Kind, repo string, _ gitrepo.Visibility, err error) {
	vm.setLatestAction(kind, repo)
	vm.DoneCount.Add(1)
	vm.ErrorViewModel.ErrorChannel <- err
}

package syncCommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ghsync/internal/color"
	"ghsync/internal/credentials"
	"ghsync/internal/github"
	"ghsync/internal/gitrepo"
	"ghsync/internal/journal"
	logger "ghsync/internal/log"
	"ghsync/internal/reconcile"
	"ghsync/internal/syncCommand/terminalView"
	"ghsync/internal/view"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Username   string
	Token      string
	StoreToken bool
	BasePath   string
	LogFile    string
}

// RepositoryLister is the slice of the GitHub client the command needs; tests
// substitute a fake.
type RepositoryLister interface {
	ListRepositories(ctx context.Context) ([]github.Repository, error)
}

type SyncCommand struct {
	Options     Options
	Credentials credentials.Source
	Backend     gitrepo.Backend
	NewLister   func(token string) RepositoryLister
	Stdout      io.Writer
	IsTTY       bool
}

// NewSyncCommand wires the production dependencies: flag token over
// GITHUB_TOKEN over the system keyring, the git executable as backend, and
// the real GitHub API.
func NewSyncCommand(opts Options) *SyncCommand {
	return &SyncCommand{
		Options: opts,
		Credentials: credentials.Chain{
			credentials.Static(opts.Token),
			credentials.Env{Variable: "GITHUB_TOKEN"},
			credentials.NewKeyring(),
		},
		Backend: gitrepo.GitCLI{},
		NewLister: func(token string) RepositoryLister {
			return github.NewAPIClient(token)
		},
		Stdout: os.Stdout,
	}
}

// Execute performs one full reconciliation run. Setup problems (credential,
// base path, listing, visibility collision) abort before any action runs;
// per-action failures are journaled and only surface in the returned error
// once the whole plan has been attempted.
func (c *SyncCommand) Execute(ctx context.Context) error {
	opts := c.Options

	token, err := c.Credentials.Get(opts.Username)
	if errors.Is(err, credentials.ErrNotFound) {
		return fmt.Errorf("no credential for %s: supply --token, set GITHUB_TOKEN, or store one with --store-token", opts.Username)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve credential for %s: %w", opts.Username, err)
	}
	if opts.StoreToken {
		if opts.Token == "" {
			return errors.New("--store-token requires --token")
		}
		if err := c.Credentials.Store(opts.Username, opts.Token); err != nil {
			return err
		}
		logger.Log.Infof("Token stored for user %s", color.FgCyan(opts.Username))
	}

	if err := gitrepo.EnsureBasePath(opts.BasePath); err != nil {
		return err
	}

	syncJournal, err := journal.Open(opts.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := syncJournal.Close(); err != nil {
			logger.Log.Errorf("Failed to close journal: %v", err)
		}
	}()

	syncJournal.Event("Starting GitHub repository synchronization", logrus.Fields{"username": opts.Username})

	remote, err := c.NewLister(token).ListRepositories(ctx)
	if err != nil {
		syncJournal.Event("Failed to fetch repositories from GitHub", logrus.Fields{"error": err.Error()})
		return fmt.Errorf("failed to fetch repositories for %s: %w", opts.Username, err)
	}
	syncJournal.Event("Fetched repository list from GitHub", logrus.Fields{"total_repos": len(remote)})
	logger.Log.Infof("Found %s repositories on GitHub for %s",
		color.FgMagenta(fmt.Sprintf("%d", len(remote))), color.FgCyan(opts.Username))

	local, err := gitrepo.Scan(opts.BasePath)
	if err != nil {
		return err
	}

	plan := reconcile.Plan(remote, local, opts.BasePath)
	logger.Log.Debugf("Computed %d actions for %d remote and %d local repositories",
		len(plan), len(remote), len(local))

	viewModel := terminalView.NewSyncViewModel(syncJournal.Path())
	viewModel.RemoteCount.Add(len(remote))
	viewModel.PlannedCount.Add(len(plan))
	commandView := terminalView.NewSyncCommandView(viewModel, c.Stdout)

	renderCtx, stopRenderLoop := context.WithCancel(ctx)
	defer stopRenderLoop()
	if c.IsTTY {
		go view.StartTTYRenderLoop(renderCtx, commandView, c.Stdout, os.Stdout)
	}

	failed := reconcile.Execute(plan, c.Backend, reconcile.MultiRecorder(syncJournal, viewModel))
	syncJournal.Summary()

	stopRenderLoop()
	if !c.IsTTY {
		commandView.RenderNonTTY()
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d actions failed, see %s", failed, len(plan), syncJournal.Path())
	}
	return nil
}

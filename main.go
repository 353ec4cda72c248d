package main

import (
	"io"
	"os"

	"ghsync/internal/appConfig"
	"ghsync/internal/ext"
	logger "ghsync/internal/log"
	"ghsync/internal/syncCommand"
	"ghsync/internal/view"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// A .env file in the working directory may carry GITHUB_TOKEN.
	_ = godotenv.Load()

	var verbose bool
	var opts syncCommand.Options

	rootCmd := &cobra.Command{
		Use:   "ghsync",
		Short: "Mirror a GitHub account's repositories to local disk",
		Long:  "ghsync keeps a local mirror of a GitHub account's repositories, sorted into public/ and private/ folders, cloning, updating, moving and deleting working copies to match the remote state.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	syncCmd := &cobra.Command{
		Use:   "sync <username>",
		Short: "Reconcile the local mirror with the remote repository list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLogger(verbose)

			config, err := appConfig.Load()
			if err != nil {
				return err
			}
			if err := config.ApplyDefaults(); err != nil {
				return err
			}

			opts.Username = args[0]
			opts.BasePath = ext.DefaultValue(opts.BasePath, config.BasePath)
			opts.LogFile = ext.DefaultValue(opts.LogFile, config.LogFile)

			command := syncCommand.NewSyncCommand(opts)
			command.Stdout = cmd.OutOrStdout()
			command.IsTTY = view.IsTTY(os.Stdout)
			return command.Execute(cmd.Context())
		},
	}
	syncCmd.Flags().StringVar(&opts.Token, "token", "", "GitHub personal access token; falls back to GITHUB_TOKEN, then the system keyring")
	syncCmd.Flags().BoolVar(&opts.StoreToken, "store-token", false, "store the supplied token in the system keyring for future runs")
	syncCmd.Flags().StringVar(&opts.BasePath, "base-path", "", "base path for the repository mirror (default ~/github-repos)")
	syncCmd.Flags().StringVar(&opts.LogFile, "log-file", "", "path of the JSON action log (default ghsync.log)")
	syncCmd.SilenceUsage = true

	rootCmd.AddCommand(syncCmd)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

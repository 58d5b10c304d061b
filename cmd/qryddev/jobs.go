// Job commands of the qryddev CLI: submission, tracking, and the journal.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qryddev/api"
	"github.com/katalvlaran/qryddev/internal/joblog"
)

// newBackendClient builds the web API client from the resolved config.
func newBackendClient() (*api.Backend, error) {
	return api.New(api.Config{
		BaseURL:    cfg.GetString(cfgKeyBaseURL),
		Token:      cfg.GetString(cfgKeyToken),
		DeviceName: cfg.GetString(cfgKeyDevice),
		Timeout:    cfg.GetDuration(cfgKeyTimeout),
		Logger:     logger,
	})
}

// openJournal opens the job journal, creating its directory when absent.
func openJournal() (*joblog.Store, error) {
	path := cfg.GetString(cfgKeyJournal)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	return joblog.Open(path)
}

// resolveJob maps a command argument to a job URL. A raw URL passes through;
// anything else is looked up in the journal, and the journal id comes back
// so the caller can update the entry.
func resolveJob(store *joblog.Store, arg string) (jobURL, id string, err error) {
	if strings.Contains(arg, "://") {
		return arg, "", nil
	}

	job, err := store.Get(arg)
	if err != nil {
		return "", "", err
	}

	return job.URL, job.ID, nil
}

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <settings.toml> <program.json>",
		Short: "Post a program to the web API on the configured device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, variant, err := loadDevice(args[0])
			if err != nil {
				return err
			}
			cloud, ok := d.(api.CloudDevice)
			if !ok {
				return fmt.Errorf("%s devices cannot be submitted, use an api_device settings file", variant)
			}
			program, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read program: %w", err)
			}

			b, err := newBackendClient()
			if err != nil {
				return err
			}
			run := api.NewRunData(cloud, program)
			run.Dev = cfg.GetBool(cfgKeyDev)
			jobURL, err := b.PostJob(cmd.Context(), run)
			if err != nil {
				return err
			}

			store, err := openJournal()
			if err != nil {
				return err
			}
			defer store.Close()
			job, err := store.Record(jobURL, cloud.QRydBackend(), "pending")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "job:      %s\n", job.ID)
			fmt.Fprintf(out, "location: %s\n", jobURL)

			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <job>",
		Short: "Fetch the status of a job by journal id or URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackendClient()
			if err != nil {
				return err
			}
			store, err := openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			jobURL, id, err := resolveJob(store, args[0])
			if err != nil {
				return err
			}
			status, err := b.GetJobStatus(cmd.Context(), jobURL)
			if err != nil {
				return err
			}
			if id != "" {
				if err := store.UpdateStatus(id, status.Status); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status: %s\n", status.Status)
			if status.Msg != "" {
				fmt.Fprintf(out, "msg:    %s\n", status.Msg)
			}

			return nil
		},
	}
}

func newResultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "result <job>",
		Short: "Fetch the result of a finished job and print its counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackendClient()
			if err != nil {
				return err
			}
			store, err := openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			jobURL, id, err := resolveJob(store, args[0])
			if err != nil {
				return err
			}
			result, err := b.GetJobResult(cmd.Context(), jobURL)
			if err != nil {
				return err
			}
			if id != "" {
				if err := store.UpdateStatus(id, "completed"); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "device:     %s\n", result.Device)
			fmt.Fprintf(out, "qubits:     %d\n", result.NumQubits)
			fmt.Fprintf(out, "time taken: %g\n", result.TimeTaken)

			outcomes := make([]string, 0, len(result.Data.Counts))
			for outcome := range result.Data.Counts {
				outcomes = append(outcomes, outcome)
			}
			sort.Strings(outcomes)
			for _, outcome := range outcomes {
				fmt.Fprintf(out, "%s %d\n", outcome, result.Data.Counts[outcome])
			}

			return nil
		},
	}
}

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <job>",
		Short: "Delete a job from the web API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackendClient()
			if err != nil {
				return err
			}
			store, err := openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			jobURL, id, err := resolveJob(store, args[0])
			if err != nil {
				return err
			}
			if err := b.DeleteJob(cmd.Context(), jobURL); err != nil {
				return err
			}
			if id != "" {
				if err := store.UpdateStatus(id, "cancelled"); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cancelled %s\n", jobURL)

			return nil
		},
	}
}

func newJobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List the journaled jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			jobs, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, job := range jobs {
				fmt.Fprintf(out, "%s  %-10s  %s  %s\n", job.ID, job.Status, job.Device, job.URL)
			}

			return nil
		},
	}
}

// Command flexxit is a terminal client for the backend: it logs in, keeps the
// token on disk and edits the watchlist.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"flexxit_backend/internal/client"
	"flexxit_backend/internal/feature/auth/domain/entity"
	infrahttp "flexxit_backend/internal/platform/http"
)

const defaultAPIURL = "http://localhost:5001"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var apiURL, tokenFile string
	var session *client.Session

	root := &cobra.Command{
		Use:           "flexxit",
		Short:         "Log in and manage your watchlist from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if tokenFile == "" {
				dir, err := os.UserConfigDir()
				if err != nil {
					return err
				}
				tokenFile = filepath.Join(dir, "flexxit", "token")
			}
			session = client.NewSession(apiURL, infrahttp.NewHTTPClient(15*time.Second), client.NewFileTokenStore(tokenFile))
			return nil
		},
	}

	envURL := os.Getenv("FLEXXIT_API_URL")
	if envURL == "" {
		envURL = defaultAPIURL
	}
	root.PersistentFlags().StringVar(&apiURL, "api", envURL, "backend base URL (env FLEXXIT_API_URL)")
	root.PersistentFlags().StringVar(&tokenFile, "token-file", "", "where the session token is kept (default: user config dir)")

	sess := func() *client.Session { return session }
	root.AddCommand(
		newRegisterCmd(sess),
		newLoginCmd(sess),
		newLogoutCmd(sess),
		newWhoamiCmd(sess),
		newWatchlistCmd(sess),
	)
	return root
}

// requireSession restores the stored session or fails with a hint.
func requireSession(cmd *cobra.Command, s *client.Session) error {
	ok, err := s.Restore(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not logged in; run `flexxit login`")
	}
	return nil
}

func passwordFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "password", os.Getenv("FLEXXIT_PASSWORD"), "password (env FLEXXIT_PASSWORD)")
}

func newRegisterCmd(sess func() *client.Session) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := sess().Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s <%s>; now run `flexxit login`\n", p.Name, p.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	passwordFlag(cmd, &password)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLoginCmd(sess func() *client.Session) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := sess().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s <%s>\n", p.Name, p.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	passwordFlag(cmd, &password)
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(sess func() *client.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sess().Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(sess func() *client.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := sess()
			if err := requireSession(cmd, s); err != nil {
				return err
			}
			p := s.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> id=%s\n", p.Name, p.Email, p.ID)
			return nil
		},
	}
}

func newWatchlistCmd(sess func() *client.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "List the watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := sess()
			if err := requireSession(cmd, s); err != nil {
				return err
			}
			printWatchlist(cmd, s.Watchlist())
			return nil
		},
	}

	edit := func(use, short string, apply func(*cobra.Command, *client.Session, entity.WatchlistEntry) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <movie|tv> <id>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := parseEntry(args[0], args[1])
				if err != nil {
					return err
				}
				s := sess()
				if err := requireSession(cmd, s); err != nil {
					return err
				}
				if err := apply(cmd, s, e); err != nil {
					return err
				}
				printWatchlist(cmd, s.Watchlist())
				return nil
			},
		}
	}

	cmd.AddCommand(
		edit("add", "Add an item to the watchlist", func(cmd *cobra.Command, s *client.Session, e entity.WatchlistEntry) error {
			return s.AddToWatchlist(cmd.Context(), e)
		}),
		edit("remove", "Remove an item from the watchlist", func(cmd *cobra.Command, s *client.Session, e entity.WatchlistEntry) error {
			return s.RemoveFromWatchlist(cmd.Context(), e)
		}),
	)
	return cmd
}

func parseEntry(mediaType, id string) (entity.WatchlistEntry, error) {
	e := entity.WatchlistEntry{ID: id, MediaType: entity.MediaType(mediaType)}
	if !e.MediaType.Valid() || id == "" {
		return e, fmt.Errorf("expected <movie|tv> <id>, got %q %q", mediaType, id)
	}
	return e, nil
}

func printWatchlist(cmd *cobra.Command, list []entity.WatchlistEntry) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "watchlist is empty")
		return
	}
	for _, e := range list {
		fmt.Fprintf(out, "%s\t%s\n", e.MediaType, e.ID)
	}
}

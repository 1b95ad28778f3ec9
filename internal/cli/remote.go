// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ask-me/internal/adapter"
	"github.com/MKhiriev/go-ask-me/models"
)

func AskCmd(env *Env) *cobra.Command {
	askCmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Submit a question to a running server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nickname, _ := cmd.Flags().GetString("nickname")

			client, err := env.remoteClient()
			if err != nil {
				return err
			}

			question, err := client.Ask(cmd.Context(), models.QuestionSubmission{
				Content:  strings.Join(args, " "),
				Nickname: nickname,
			})
			if errors.Is(err, adapter.ErrEmptyQuestion) {
				printWarn(cmd.OutOrStdout(), "empty question, nothing submitted")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to submit question: %w", err)
			}

			if question.IsPending() {
				printOK(cmd.OutOrStdout(), "question #%d submitted, waiting for approval", question.ID)
			} else {
				printOK(cmd.OutOrStdout(), "question #%d published", question.ID)
			}
			return nil
		},
	}
	askCmd.Flags().String("nickname", "", "author nickname (anon when empty)")

	return askCmd
}

func ListCmd(env *Env) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List public questions of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")

			client, err := env.remoteClient()
			if err != nil {
				return err
			}

			listing, err := client.List(cmd.Context(), page)
			if err != nil {
				return fmt.Errorf("failed to list questions: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(listing.Questions) == 0 {
				fmt.Fprintln(out, "No questions found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tBY\tASKED\tANSWERED\tQUESTION")
			fmt.Fprintln(w, "--\t--\t-----\t--------\t--------")
			for _, q := range listing.Questions {
				answered := "no"
				if q.IsAnswered() {
					answered = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", q.ID, q.Nickname, q.CreatedAt.UTC().Format("2006-01-02 15:04"), answered, firstLine(q.Content, 60))
			}
			_ = w.Flush()

			p := listing.Pagination
			fmt.Fprintf(out, "page %d of %d (%d questions)\n", p.Page, p.TotalPages, p.TotalItems)
			return nil
		},
	}
	listCmd.Flags().Int("page", 1, "page number")

	return listCmd
}

func VersionCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "server-version",
		Short: "Print the version of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := env.remoteClient()
			if err != nil {
				return err
			}

			version, err := client.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get server version: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

// firstLine shortens content to its first line and at most limit runes.
func firstLine(content string, limit int) string {
	line, _, cut := strings.Cut(content, "\n")
	runes := []rune(line)
	if len(runes) > limit {
		return string(runes[:limit-1]) + "…"
	}
	if cut {
		return line + " …"
	}
	return line
}

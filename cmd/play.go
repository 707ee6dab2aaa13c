package cmd

import (
	"context"
	"fmt"

	"github.com/deepak/quizdeck/internal/play"
	"github.com/deepak/quizdeck/internal/quizgen"
	"github.com/deepak/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [set-id]",
	Short: "Quiz yourself on a saved study set",
	Long:  "Quiz yourself on a saved study set. With no argument, plays the most recently created set.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		var setID string
		if len(args) == 1 {
			setID = args[0]
		}

		loader := func(ctx context.Context) (string, []quizgen.Question, error) {
			set, err := loadSet(ctx, st, setID)
			if err != nil {
				return "", nil, err
			}
			rows, err := st.QuestionRepo().BySet(ctx, set.ID)
			if err != nil {
				return "", nil, fmt.Errorf("load questions: %w", err)
			}
			questions := make([]quizgen.Question, len(rows))
			for i, row := range rows {
				questions[i] = quizgen.Question{
					Text:        row.Question,
					Options:     row.Options,
					Answer:      row.Answer,
					Category:    row.Category,
					Explanation: row.Explanation,
				}
			}
			return set.Name, questions, nil
		}

		return play.Run(loader)
	},
}

// loadSet fetches the requested study set, or the newest one when id is empty.
func loadSet(ctx context.Context, st *store.Store, id string) (*store.StudySet, error) {
	if id != "" {
		set, err := st.StudySetRepo().Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load study set: %w", err)
		}
		if set == nil {
			return nil, fmt.Errorf("study set %q not found", id)
		}
		return set, nil
	}

	sets, err := st.StudySetRepo().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list study sets: %w", err)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("no study sets yet; run: quizdeck generate <subject>")
	}
	return sets[0], nil
}

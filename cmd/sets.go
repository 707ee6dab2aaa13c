package cmd

import (
	"fmt"
	"strings"

	"github.com/deepak/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Browse saved study sets",
}

var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved study sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		sets, err := st.StudySetRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("list study sets: %w", err)
		}
		if len(sets) == 0 {
			fmt.Println("No study sets yet. Run: quizdeck generate <subject>")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %s\n", "ID", "Created", "Name")
		fmt.Println(strings.Repeat("─", 100))
		for _, s := range sets {
			fmt.Printf("%-36s  %-19s  %s\n",
				s.ID,
				s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				s.Name,
			)
		}
		return nil
	},
}

var setsShowCmd = &cobra.Command{
	Use:   "show <set-id>",
	Short: "Show the questions in a study set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		set, err := st.StudySetRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load study set: %w", err)
		}
		if set == nil {
			return fmt.Errorf("study set %q not found", args[0])
		}

		rows, err := st.QuestionRepo().BySet(ctx, set.ID)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}

		fmt.Printf("%s\n", set.Name)
		fmt.Printf("Created %s · %d questions\n", set.CreatedAt.Local().Format("Jan 2, 2006"), len(rows))
		fmt.Println(strings.Repeat("─", 60))

		withAnswers := mustBool(cmd, "answers")
		for i, row := range rows {
			fmt.Printf("\n%d. %s", i+1, row.Question)
			if row.Category != "" {
				fmt.Printf("  [%s]", row.Category)
			}
			fmt.Println()
			for j, opt := range row.Options {
				marker := " "
				if withAnswers && opt == row.Answer {
					marker = "*"
				}
				fmt.Printf("   %s %c) %s\n", marker, 'A'+j, opt)
			}
			if withAnswers && row.Explanation != "" {
				fmt.Printf("   → %s\n", row.Explanation)
			}
		}
		return nil
	},
}

func init() {
	setsShowCmd.Flags().BoolP("answers", "a", false, "Mark correct answers and show explanations")

	setsCmd.AddCommand(setsListCmd)
	setsCmd.AddCommand(setsShowCmd)
}

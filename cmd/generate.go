package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/deepak/quizdeck/internal/llm"
	"github.com/deepak/quizdeck/internal/quizgen"
	"github.com/deepak/quizdeck/internal/samples"
	"github.com/deepak/quizdeck/internal/store"
	"github.com/deepak/quizdeck/internal/studyset"
	"github.com/deepak/quizdeck/internal/taxonomy"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate <subject>",
	Aliases: []string{"gen"},
	Short:   "Generate and save a study set for a subject",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		subject := strings.Join(args, " ")
		difficulty, known := quizgen.ParseDifficulty(mustString(cmd, "difficulty"))
		if !known {
			fmt.Fprintf(os.Stderr, "warning: unknown difficulty %q, using %s\n", mustString(cmd, "difficulty"), difficulty)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to the built-in question bank.")
			provider = nil
		}

		questions := buildQuestions(ctx, provider, subject, difficulty)

		name := mustString(cmd, "name")
		if name == "" {
			namer := studyset.NewNamer(provider, studyset.DefaultNamerConfig())
			name = namer.NameFor(ctx, subject, questions)
		}

		if mustBool(cmd, "no-save") {
			printQuestions(name, questions)
			return nil
		}

		resolver := taxonomy.NewResolver(provider, st.CategoryRepo(), st.SubjectRepo(), taxonomy.DefaultConfig())
		svc := studyset.NewService(st.StudySetRepo(), st.QuestionRepo(), resolver)

		result, err := svc.Save(ctx, name, questions)
		if err != nil {
			return fmt.Errorf("save study set: %w", err)
		}

		printQuestions(result.StudySetName, questions)
		fmt.Printf("\nSaved %d questions to %q (id %s)\n", result.SavedCount, result.StudySetName, result.StudySetID)
		fmt.Printf("Play it with: quizdeck play %s\n", result.StudySetID)
		return nil
	},
}

// buildQuestions produces the study set's questions. Generation failures
// never abort the command: with no provider, or when the provider fails
// outright, the set is built from the sample bank instead.
func buildQuestions(ctx context.Context, provider llm.Provider, subject string, difficulty quizgen.Difficulty) []quizgen.Question {
	cfg := quizgen.DefaultConfig()
	if provider != nil {
		questions, err := quizgen.New(provider, cfg).Complete(ctx, subject, difficulty)
		if err == nil {
			return questions
		}
		fmt.Fprintln(os.Stderr, "Question generation failed:", err)
		fmt.Fprintln(os.Stderr, "Falling back to the built-in question bank.")
	}
	cats := samples.CategoriesFor(subject)
	return quizgen.Synthesize(subject, cats, difficulty, 0, cfg.TargetCount)
}

func printQuestions(name string, questions []quizgen.Question) {
	fmt.Printf("%s\n%s\n", name, strings.Repeat("─", len([]rune(name))))
	for i, q := range questions {
		fmt.Printf("\n%d. %s", i+1, q.Text)
		if q.Category != "" {
			fmt.Printf("  [%s]", q.Category)
		}
		fmt.Println()
		for j, opt := range q.Options {
			marker := " "
			if opt == q.Answer {
				marker = "*"
			}
			fmt.Printf("   %s %c) %s\n", marker, 'A'+j, opt)
		}
	}
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func init() {
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Question difficulty (easy, medium, hard)")
	generateCmd.Flags().StringP("name", "n", "", "Name for the study set (default: generated)")
	generateCmd.Flags().Bool("no-save", false, "Print the questions without saving them")
}

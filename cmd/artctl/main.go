package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"

	"art-atlas/internal/adapter"
	"art-atlas/internal/catalog"
	"art-atlas/internal/config"
	"art-atlas/internal/dataset"
	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/logger"
	"art-atlas/internal/quiz"
	"art-atlas/internal/service"
	"art-atlas/internal/store"
	"art-atlas/internal/timeline"
	"art-atlas/internal/worksheet"

	"github.com/spf13/cobra"
)

var (
	dataSource string
	storeName  string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "artctl",
		Short:         "Browse, quiz and annotate the African art catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataSource, "data", "", "dataset file or URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&storeName, "store", "", "worksheet store: redis, sqlite or oracle (overrides config; a memory store becomes sqlite)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(itemsCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(quizCmd())
	rootCmd.AddCommand(worksheetCmd())
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if dataSource != "" {
		cfg.Data.Source = dataSource
	}
	switch {
	case storeName != "":
		cfg.Worksheet.Store = storeName
	case cfg.Worksheet.Store == config.StoreMemory:
		// worksheets written by one invocation must survive to the next
		cfg.Worksheet.Store = config.StoreSQLite
	}
	cfg.Logger.Level = "warn"
	cfg.Logger.Output = "stderr"
	if verbose {
		cfg.Logger.Level = "debug"
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDataset(ctx context.Context, cfg *config.Config) (*domain.Dataset, error) {
	loader := dataset.NewLoader(&http.Client{Timeout: cfg.Data.FetchTimeout}, logger.Get())
	return loader.Load(ctx, cfg.Data.Source)
}

// filterFlags binds the catalog filters shared by items and timeline.
func filterFlags(cmd *cobra.Command, c *catalog.Criteria) {
	cmd.Flags().StringVarP(&c.Search, "query", "q", "", "search title, culture and keywords")
	cmd.Flags().StringVar(&c.Type, "type", "", "item type")
	cmd.Flags().StringVar(&c.Century, "century", "", "century label, e.g. \"18th century\"")
	cmd.Flags().StringVar(&c.ArtType, "art-type", "", "art-type keyword")
	cmd.Flags().StringVar(&c.Material, "material", "", "material category")
	cmd.Flags().StringVar(&c.Region, "region", "", "region category")
	cmd.Flags().BoolVar(&c.ExamOnly, "exam", false, "likely exam items only")
}

func itemsCmd() *cobra.Command {
	var criteria catalog.Criteria

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List the items matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ds, err := loadDataset(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			resp := service.NewCatalogService(ds, nil).ListItems(criteria)
			out := cmd.OutOrStdout()
			if resp.Empty {
				fmt.Fprintln(out, resp.Message)
				return nil
			}
			for _, it := range resp.Items {
				mark := " "
				if it.LikelyExam {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %-24s %-40s %s\n", mark, it.ID, truncate(it.Title, 40), timeline.FormatNormalized(it.DateNormalized))
			}
			fmt.Fprintf(out, "\n%d of %d items\n", resp.Count, resp.Total)
			return nil
		},
	}
	filterFlags(cmd, &criteria)
	return cmd
}

func timelineCmd() *cobra.Command {
	var (
		criteria catalog.Criteria
		asCSV    bool
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the filtered items in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ds, err := loadDataset(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			svc := service.NewCatalogService(ds, nil)
			out := cmd.OutOrStdout()

			if asCSV {
				return svc.ExportTimeline(out, criteria)
			}

			res := svc.Timeline(criteria)
			if res.Empty {
				fmt.Fprintln(out, res.Message)
				return nil
			}
			printTimeline(out, res)
			return nil
		},
	}
	filterFlags(cmd, &criteria)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of the text view")
	return cmd
}

// printTimeline interleaves century markers with the dots, left to right.
func printTimeline(w io.Writer, res timeline.Result) {
	dots := slices.Clone(res.Dots)
	slices.SortStableFunc(dots, func(a, b timeline.Dot) int { return cmp.Compare(a.X, b.X) })

	mi := 0
	for _, d := range dots {
		for mi < len(res.Markers) && res.Markers[mi].X <= d.X {
			if !res.Markers[mi].Hidden {
				fmt.Fprintf(w, "── %s ──\n", res.Markers[mi].Label)
			}
			mi++
		}
		fmt.Fprintf(w, "  %-16s %s\n", d.Date, d.Title)
	}
	for ; mi < len(res.Markers); mi++ {
		if !res.Markers[mi].Hidden {
			fmt.Fprintf(w, "── %s ──\n", res.Markers[mi].Label)
		}
	}
	if len(res.Undated) > 0 {
		fmt.Fprintf(w, "\n%d undated items not shown\n", len(res.Undated))
	}
}

func quizCmd() *cobra.Command {
	var (
		exam   bool
		count  int
		export string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Answer multiple-choice questions drawn from the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ds, err := loadDataset(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			mode := quiz.ModeAll
			if exam {
				mode = quiz.ModeExam
			}
			svc := service.NewQuizSessionService(ds.Items, quiz.NewGenerator(nil, cfg.Quiz.MaxAttempts),
				adapter.NewMemoryCache(), cfg.Quiz.SessionTTL)
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())

			sessionID, score, asked := "", 0, 0
			for asked < count {
				next, err := svc.Next(ctx, sessionID, mode)
				if err != nil {
					return err
				}
				sessionID = next.SessionID
				if !next.Available {
					fmt.Fprintln(out, next.Message)
					break
				}
				asked++

				q := next.Question
				fmt.Fprintf(out, "\nQ%d. %s\n", asked, q.Prompt)
				for i, a := range q.Answers {
					fmt.Fprintf(out, "  %d) %s\n", i+1, a)
				}
				choice := readChoice(in, out, len(q.Answers))
				if choice < 0 {
					break
				}
				fb, err := svc.Check(ctx, &dto.CheckAnswerRequest{SessionID: sessionID, QuestionID: q.ID, Answer: q.Answers[choice]})
				if err != nil {
					return err
				}
				if fb.Correct {
					score++
				}
				fmt.Fprintf(out, "%s %s\n%s\n", fb.Heading, fb.Message, fb.Summary)
			}
			fmt.Fprintf(out, "\nScore: %d/%d\n", score, asked)

			if export == "" || asked == 0 {
				return nil
			}
			f, err := os.Create(export)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := svc.Export(ctx, f, sessionID); err != nil {
				return err
			}
			fmt.Fprintf(out, "Questions written to %s\n", export)
			return nil
		},
	}
	cmd.Flags().BoolVar(&exam, "exam", false, "likely exam items only")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of questions")
	cmd.Flags().StringVar(&export, "export", "", "write the asked questions as CSV to this file (e.g. "+quiz.ExportFilename+")")
	return cmd
}

// readChoice prompts until a valid 1-based choice is entered. It returns -1
// at end of input.
func readChoice(in *bufio.Scanner, out io.Writer, n int) int {
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return -1
		}
		choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil && choice >= 1 && choice <= n {
			return choice - 1
		}
		fmt.Fprintf(out, "enter a number from 1 to %d\n", n)
	}
}

func worksheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worksheet",
		Short: "Write and inspect visual-analysis worksheets",
	}
	cmd.AddCommand(worksheetSetCmd())
	cmd.AddCommand(worksheetShowCmd())
	cmd.AddCommand(worksheetExportCmd())
	cmd.AddCommand(worksheetClearCmd())
	cmd.AddCommand(worksheetListCmd())
	return cmd
}

// withWorksheets opens the dataset and the configured store for fn.
func withWorksheets(ctx context.Context, fn func(svc service.WorksheetService) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return err
	}
	s, err := store.Open(ctx, cfg, logger.Get())
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(service.NewWorksheetService(ds, s.Repository))
}

func worksheetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [item-id] [question-key] [text]",
		Short: "Answer one worksheet question, keeping the other answers",
		Long:  "Answer one worksheet question. Keys: " + strings.Join(questionKeys(), ", ") + ".",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorksheets(cmd.Context(), func(svc service.WorksheetService) error {
				resp, err := svc.Answer(cmd.Context(), args[0], args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s for %s\n", args[1], resp.ItemTitle)
				return nil
			})
		},
	}
}

func questionKeys() []string {
	var keys []string
	for _, section := range worksheet.Sections {
		for _, q := range section.Questions {
			keys = append(keys, q.Key)
		}
	}
	return keys
}

func worksheetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [item-id]",
		Short: "Print the text report of an item's worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorksheets(cmd.Context(), func(svc service.WorksheetService) error {
				_, text, err := svc.ExportText(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			})
		},
	}
}

func worksheetExportCmd() *cobra.Command {
	var printable bool

	cmd := &cobra.Command{
		Use:   "export [item-id]",
		Short: "Write an item's worksheet report to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorksheets(cmd.Context(), func(svc service.WorksheetService) error {
				filename, text, err := svc.ExportText(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if printable {
					if text, err = svc.Print(cmd.Context(), args[0]); err != nil {
						return err
					}
					filename = strings.TrimSuffix(filename, ".txt") + ".html"
				}
				if err := os.WriteFile(filename, []byte(text), 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filename)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&printable, "html", false, "write the printable HTML page instead of text")
	return cmd
}

func worksheetClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear [item-id]",
		Short: "Delete an item's saved worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorksheets(cmd.Context(), func(svc service.WorksheetService) error {
				if err := svc.Clear(cmd.Context(), args[0], yes); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared worksheet for %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm clearing")
	return cmd
}

func worksheetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved worksheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorksheets(cmd.Context(), func(svc service.WorksheetService) error {
				list, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "No saved worksheets.")
					return nil
				}
				for _, w := range list {
					fmt.Fprintf(out, "%-24s %-40s %2d/13  %s\n", w.ItemID, truncate(w.ItemTitle, 40), w.Answered, w.SavedAt.Local().Format("2006-01-02 15:04"))
				}
				return nil
			})
		},
	}
}

func truncate(s string, width int) string {
	return catalog.Truncate(s, width-3)
}

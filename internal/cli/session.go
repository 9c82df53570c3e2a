package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/ports"
	"github.com/emiliopalmerini/mcba/internal/report"
	"github.com/emiliopalmerini/mcba/internal/util"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Enter and compare treatments interactively",
	Long: `Start an interactive session. Treatments are kept in memory for the
life of the session and the ranking is recomputed after every change.

Type 'help' inside the session for the list of commands.

Examples:
  mcba session                  # Start empty
  mcba session --demo           # Start with the demo dataset
  mcba session -i trial.yaml    # Start from a dataset file`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	s := NewSession(app.Store, app.Format, app.Exporter, app.Log, cmd.OutOrStdout())
	fmt.Fprintf(s.out, "mcba session %s. Type 'help' for commands.\n", s.ID[:8])
	return s.Run(cmd.Context(), cmd.InOrStdin())
}

// errQuit ends a session loop.
var errQuit = errors.New("quit")

const sessionHelp = `Commands:
  add <name>|<pv benefits>|<pv costs>|<notes>   Add a treatment (any field may be blank)
  set <id> <name|benefits|costs|notes> <value>  Change one field of a treatment
  rm <id>                                       Remove a treatment
  clear                                         Remove all treatments
  demo                                          Replace all treatments with the demo dataset
  list                                          List treatments in entry order
  rank                                          Show the ranking table
  summary                                       Show the plain-language summary
  cards                                         Show a card per treatment
  export [file]                                 Write CSV to stdout or a file
  help                                          Show this help
  quit                                          Leave the session`

// Session is an interactive editing loop over a treatment store.
type Session struct {
	ID       string
	store    ports.TreatmentStore
	format   analysis.Formatter
	exporter ports.MetricsExporter
	log      logrus.FieldLogger
	out      io.Writer
}

func NewSession(
	store ports.TreatmentStore,
	format analysis.Formatter,
	exporter ports.MetricsExporter,
	log logrus.FieldLogger,
	out io.Writer,
) *Session {
	id := uuid.New().String()
	return &Session{
		ID:       id,
		store:    store,
		format:   format,
		exporter: exporter,
		log:      log.WithField("session", id),
		out:      out,
	}
}

// Run reads commands from in until quit or end of input.
// Command errors are printed and the loop carries on.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.log.Debug("session started")
	defer s.log.Debug("session ended")

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		err := s.Exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Exec runs one command line.
func (s *Session) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "add":
		return s.add(rest)
	case "set":
		return s.set(rest)
	case "rm", "remove":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		s.store.Remove(id)
		return nil
	case "clear":
		s.store.Clear()
		fmt.Fprintln(s.out, "Cleared.")
		return nil
	case "demo":
		s.store.ReplaceAll(domain.DemoTreatments())
		fmt.Fprintf(s.out, "Loaded %d demo treatments.\n", s.store.Len())
		return nil
	case "list", "ls":
		s.list()
		return nil
	case "rank":
		printRanking(s.out, s.format, s.analyze(ctx, "session.rank"))
		return nil
	case "summary":
		fmt.Fprintln(s.out, s.format.Summarize(s.analyze(ctx, "session.summary")))
		return nil
	case "cards":
		ranked := s.analyze(ctx, "session.cards")
		if len(ranked) == 0 {
			fmt.Fprintln(s.out, "No treatments to show.")
			return nil
		}
		report.WriteCards(s.out, s.format.Cards(ranked))
		return nil
	case "export":
		return s.export(rest)
	case "help", "?":
		fmt.Fprintln(s.out, sessionHelp)
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type 'help' for commands", verb)
	}
}

func (s *Session) add(rest string) error {
	parts := strings.Split(rest, "|")
	if len(parts) > 4 {
		return fmt.Errorf("add takes at most 4 fields separated by '|', got %d", len(parts))
	}
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	in := domain.TreatmentInput{
		Name:       util.StringPtr(strings.TrimSpace(parts[0])),
		PVBenefits: util.AmountPtr(parts[1]),
		PVCosts:    util.AmountPtr(parts[2]),
		Notes:      util.StringPtr(strings.TrimSpace(parts[3])),
	}
	id := s.store.Add(in)
	t, _ := s.store.Get(id)
	s.log.WithFields(logrus.Fields{"id": id, "name": t.Name}).Debug("treatment added")
	fmt.Fprintf(s.out, "Added #%d %s (NPV %s).\n", id, t.Name, s.format.Money(t.NPV))
	return nil
}

func (s *Session) set(rest string) error {
	fields := strings.SplitN(rest, " ", 3)
	if len(fields) < 2 {
		return fmt.Errorf("usage: set <id> <name|benefits|costs|notes> <value>")
	}
	id, err := parseID(fields[0])
	if err != nil {
		return err
	}
	value := ""
	if len(fields) == 3 {
		value = strings.TrimSpace(fields[2])
	}

	var in domain.TreatmentInput
	switch strings.ToLower(fields[1]) {
	case "name":
		in.Name = &value
	case "benefits", "pv_benefits", "pvbenefits":
		v := util.ParseAmount(value)
		in.PVBenefits = &v
	case "costs", "pv_costs", "pvcosts":
		v := util.ParseAmount(value)
		in.PVCosts = &v
	case "notes":
		in.Notes = &value
	default:
		return fmt.Errorf("unknown field %q: use name, benefits, costs or notes", fields[1])
	}

	if _, ok := s.store.Get(id); !ok {
		fmt.Fprintf(s.out, "No treatment #%d.\n", id)
		return nil
	}
	s.store.Update(id, in)
	return nil
}

func (s *Session) list() {
	records := s.store.List()
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No treatments yet.")
		return
	}
	for _, t := range records {
		fmt.Fprintf(s.out, "#%d %s: PV benefits %s, PV costs %s\n",
			t.ID, t.Name, s.format.Money(t.PVBenefits), s.format.Money(t.PVCosts))
	}
}

func (s *Session) export(path string) error {
	out, err := analysis.ToCSV(s.store.List())
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(s.out, out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(s.out, "Exported %d treatments to %s.\n", s.store.Len(), path)
	return nil
}

func (s *Session) analyze(ctx context.Context, source string) []domain.Treatment {
	ranked := analysis.Analyze(s.store.List())
	if err := s.exporter.ExportAnalysis(ctx, analysis.NewRun(source, ranked)); err != nil {
		s.log.WithError(err).Warn("failed to export analysis metrics")
	}
	return ranked
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid treatment id %q", s)
	}
	return id, nil
}

// Command realise renders tree documents and single words from the
// command line.
//
//	$ realise realise -lang fr sentence.yaml
//	$ realise inflect -lang en -cat verb -f tense=past go
//	$ realise tokens sentence.yaml
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/cours-de-latin/realiser"
)

var (
	configPath string
	langTag    string
	lexPath    string
	category   string
	features   string
	showTable  bool
)

// addCommon registers the flags every subcommand shares.
func addCommon(cmd *commander.Command) {
	cmd.Flag.StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flag.StringVar(&langTag, "lang", "", "language tag, overrides the configuration")
	cmd.Flag.StringVar(&lexPath, "lexicon", "", "extra lexicon file, overrides the configuration")
}

// newRealiser builds a realiser from the configuration file and flags.
func newRealiser() (*realiser.Realiser, error) {
	cfg := realiser.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = realiser.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	if langTag != "" {
		cfg.Language = langTag
	}
	if lexPath != "" {
		cfg.LexiconPath = lexPath
	}
	return realiser.New(cfg)
}

// readDocument decodes the document named by args, or stdin.
func readDocument(r *realiser.Realiser, args []string) (realiser.Element, error) {
	var in io.Reader = os.Stdin
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()
		in, name = f, args[0]
	}
	el, err := realiser.DecodeDocument(in, r.Factory())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return el, nil
}

// ---- realise ------------------------------------------------------------

func runRealise(cmd *commander.Command, args []string) error {
	r, err := newRealiser()
	if err != nil {
		return err
	}
	el, err := readDocument(r, args)
	if err != nil {
		return err
	}
	fmt.Println(r.RealiseSentence(el))
	return nil
}

func realiseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runRealise,
		UsageLine: "realise [options] [document]",
		Short:     "realise a tree document as text",
		Long: `
realise reads a YAML or JSON tree document (stdin when no file is given)
and prints the realised sentences.

	$ realise realise -lang fr sentence.yaml
`,
		Flag: *flag.NewFlagSet("realise", flag.ExitOnError),
	}
	addCommon(cmd)
	return cmd
}

// ---- inflect ------------------------------------------------------------

// parseFeatureList reads "tense=past,person=third,plural".
func parseFeatureList(s string) (realiser.Features, error) {
	feats := realiser.Features{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			value = "true"
		}
		if key == "plural" && !ok {
			key, value = realiser.FeatNumber, "plural"
		}
		v, err := realiser.ParseFeature(strings.TrimSpace(key), value)
		if err != nil {
			return nil, err
		}
		feats.Set(strings.TrimSpace(key), v)
	}
	return feats, nil
}

func runInflect(cmd *commander.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("inflect: missing word")
	}
	r, err := newRealiser()
	if err != nil {
		return err
	}
	cat := realiser.ParseCategory(category)
	if !cat.Lexical() {
		return fmt.Errorf("inflect: %q is not a word category", category)
	}
	feats, err := parseFeatureList(features)
	if err != nil {
		return fmt.Errorf("inflect: %w", err)
	}
	for _, base := range args {
		if showTable {
			fmt.Println(renderTable(r.InflectionTable(base, cat)))
			continue
		}
		fmt.Println(r.Inflect(base, cat, feats))
	}
	return nil
}

func inflectCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runInflect,
		UsageLine: "inflect [options] <word>...",
		Short:     "inflect words",
		Long: `
inflect prints the form of each word carrying the given features, or its
whole paradigm with -table.

	$ realise inflect -cat verb -f tense=past,person=third go
	$ realise inflect -lang fr -cat verb -table finir
`,
		Flag: *flag.NewFlagSet("inflect", flag.ExitOnError),
	}
	addCommon(cmd)
	cmd.Flag.StringVar(&category, "cat", "noun", "lexical category")
	cmd.Flag.StringVar(&features, "f", "", "comma-separated features (tense=past,plural)")
	cmd.Flag.BoolVar(&showTable, "table", false, "print the whole paradigm")
	return cmd
}

// ---- tokens -------------------------------------------------------------

var (
	headStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	cellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	boxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// renderRows lays rows out in columns sized to their widest cell.
func renderRows(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c)+2)
		}
	}
	line := func(style lipgloss.Style, row []string) string {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = style.Width(widths[i]).Render(c)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	lines := []string{line(headStyle, header)}
	for _, row := range rows {
		lines = append(lines, line(cellStyle, row))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderTable(t *realiser.InflectionTable) string {
	if t == nil {
		return ""
	}
	rows := make([][]string, 0, len(t.Cells))
	for _, c := range t.Cells {
		rows = append(rows, []string{c.Label, c.Form})
	}
	return renderRows([]string{t.Base + " (" + string(t.Category) + ")", "form"}, rows)
}

func runTokens(cmd *commander.Command, args []string) error {
	r, err := newRealiser()
	if err != nil {
		return err
	}
	el, err := readDocument(r, args)
	if err != nil {
		return err
	}
	var rows [][]string
	for _, t := range r.Tokens(el) {
		appositive := ""
		if t.Appositive {
			appositive = "yes"
		}
		rows = append(rows, []string{t.Text, string(t.Category), string(t.Function), appositive})
	}
	fmt.Println(renderRows([]string{"text", "category", "function", "appositive"}, rows))
	return nil
}

func tokensCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runTokens,
		UsageLine: "tokens [options] [document]",
		Short:     "list the realised words of a tree document",
		Long: `
tokens realises a tree document and prints every word with its category
and discourse function.

	$ realise tokens sentence.yaml
`,
		Flag: *flag.NewFlagSet("tokens", flag.ExitOnError),
	}
	addCommon(cmd)
	return cmd
}

// ---- main ---------------------------------------------------------------

func main() {
	log.SetFlags(0)
	log.SetPrefix("realise: ")
	root := &commander.Command{
		UsageLine:   os.Args[0],
		Short:       "natural language realiser",
		Subcommands: []*commander.Command{realiseCmd(), inflectCmd(), tokensCmd()},
		Flag:        *flag.NewFlagSet("realise", flag.ExitOnError),
	}
	if err := root.Dispatch(os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}

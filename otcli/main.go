package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otblob"
	"github.com/npillmayer/otblob/blob"
	"github.com/npillmayer/otblob/internal/fontfile"
	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.tyse.fonts":    "Info",
		"trace.font.blob":     "Error",
		"trace.font.opentype": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load (file path or system font name)")
	index := flag.Int("index", 0, "Font index within a font collection")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)    // will set the correct level later
	pterm.Info.Println("Welcome to OpenType CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ot > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, table: blob.Empty()}
	//
	// load font to use
	if err := intp.loadFont(*fontname, *index); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	defer intp.close()
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font  *otblob.ScalableFont
	repl  *readline.Instance
	tag   ot.Tag
	table *blob.Blob           // current table, or the empty blob
	post  *ot.PostAccelerator // created on first glyph name command
}

func (intp *Intp) String() string {
	if intp == nil || intp.table.IsEmpty() {
		return "()"
	}
	return fmt.Sprintf("( table=%s, %d bytes )", intp.tag, intp.table.Len())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single step of a command line, e.g. "table:post" or "print:64".
type Op struct {
	code   int
	arg    string
	format string
}

// Command is a parsed command line. Steps are executed in order.
type Command []Op

const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	TABLE
	TABLES
	BLOB
	PRINT
	NAMES
	NAME
	GLYPH
	LOOKUP
	INFO
)

var opNames = [...]string{
	QUIT:   "quit",
	HELP:   "help",
	TABLE:  "table",
	TABLES: "tables",
	BLOB:   "blob",
	PRINT:  "print",
	NAMES:  "names",
	NAME:   "name",
	GLYPH:  "glyph",
	LOOKUP: "lookup",
	INFO:   "info",
}

var opMap = func() map[string]int {
	m := make(map[string]int, len(opNames))
	for code, name := range opNames {
		m[name] = code
	}
	return m
}()

const maxSteps = 32

func (intp *Intp) parseCommand(line string) (Command, error) {
	steps := strings.Fields(line)
	if len(steps) > maxSteps {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	cmd := make(Command, 0, len(steps))
	for _, step := range steps {
		c := strings.Split(step, ":") // e.g.  "table:post" or "glyph:5" or "print:64:hex"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			tracer().Infof("unknown command %q", c[0])
			code = HELP
		}
		if code == QUIT {
			return append(cmd, Op{code: QUIT}), nil
		}
		op := Op{code: code, arg: getOptArg(c, 1), format: getOptArg(c, 2)}
		if op.arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], op.arg)
		}
		cmd = append(cmd, op)
	}
	return cmd, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	TABLE:  tableOp,
	TABLES: tablesOp,
	BLOB:   blobOp,
	PRINT:  printOp,
	NAMES:  namesOp,
	NAME:   nameOp,
	GLYPH:  glyphOp,
	LOOKUP: lookupOp,
	INFO:   infoOp,
}

func (intp *Intp) execute(cmd Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd)
	for i := range cmd {
		f, ok := commandFn[cmd[i].code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", cmd[i].code)
			return nil, false
		}
		if err, stop = f(intp, &cmd[i]); err != nil || stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string, index int) (err error) {
	intp.font, err = fontfile.Load(fontname, index)
	if err != nil {
		return err
	}
	tracer().Infof("loaded SFNT font = %s", intp.font.Fontname)
	pterm.Printf("font tables: %v\n", intp.font.Face.TableTags())
	for _, w := range intp.font.Face.Warnings() {
		pterm.Warning.Println(w.String())
	}
	return nil
}

func (intp *Intp) close() {
	intp.table.Destroy()
	if intp.post != nil {
		intp.post.Close()
	}
	intp.font.Close()
}

func (intp *Intp) accelerator() *ot.PostAccelerator {
	if intp.post == nil {
		intp.post = ot.NewPostAccelerator(intp.font.Face)
	}
	return intp.post
}

// ----------------------------------------------------------------------

var ERR_NO_TABLE = errors.New("no table set")

func (intp *Intp) checkTable() error {
	if intp.table.IsEmpty() {
		return ERR_NO_TABLE
	}
	return nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}

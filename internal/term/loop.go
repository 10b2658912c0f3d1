package term

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"codeberg.org/snonux/palabra/internal/session"
)

// command is a named action the user can type. Every command is
// registered up front in the handler table; the dispatcher invokes the
// function with the remaining words of the input line.
type command struct {
	usage string
	help  string
	fn    func(args []string)
}

// Loop reads user commands from the input stream and dispatches them
// onto the session surface. Reading happens on the caller's goroutine;
// every handler runs on the dispatcher, so handlers may touch
// controller state freely.
type Loop struct {
	ctrl     *session.Controller
	disp     *session.Dispatcher
	out      io.Writer
	commands map[string]command
	onQuit   func()

	// exam answers being collected, question index to option text
	answers map[int]string
}

// NewLoop creates a command loop. onQuit is called (on the dispatcher
// surface) when the user quits.
func NewLoop(ctrl *session.Controller, disp *session.Dispatcher, out io.Writer, onQuit func()) *Loop {
	l := &Loop{
		ctrl:    ctrl,
		disp:    disp,
		out:     out,
		onQuit:  onQuit,
		answers: make(map[int]string),
	}
	l.registerCommands()
	return l
}

func (l *Loop) registerCommands() {
	l.commands = map[string]command{
		"next": {
			usage: "next",
			help:  "advance to the next word (empty input works too)",
			fn:    func(args []string) { l.ctrl.Advance() },
		},
		"load": {
			usage: "load <file>",
			help:  "load a vocabulary file",
			fn:    l.cmdLoad,
		},
		"add": {
			usage: "add <spanish>,<english>",
			help:  "add a word pair to the live vocabulary",
			fn:    l.cmdAdd,
		},
		"say": {
			usage: "say <n>",
			help:  "speak example sentence n aloud",
			fn:    l.cmdSay,
		},
		"copy": {
			usage: "copy <n>",
			help:  "print example sentence n on its own line",
			fn:    l.cmdCopy,
		},
		"a": {
			usage: "a <question> <letter>",
			help:  "answer an exam question",
			fn:    l.cmdAnswer,
		},
		"submit": {
			usage: "submit",
			help:  "score the current exam round",
			fn:    l.cmdSubmit,
		},
		"close": {
			usage: "close",
			help:  "discard the current exam round",
			fn:    l.cmdClose,
		},
		"help": {
			usage: "help",
			help:  "show this command list",
			fn:    l.cmdHelp,
		},
		"quit": {
			usage: "quit",
			help:  "exit the program",
			fn:    l.cmdQuit,
		},
	}
}

// Run reads lines from in until EOF or quit. It blocks the calling
// goroutine; the handlers themselves run on the dispatcher surface.
func (l *Loop) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		l.handleLine(line)
		if line == "quit" || line == "q" {
			return
		}
	}
	// EOF counts as quit so a piped session shuts down cleanly.
	l.disp.Dispatch(l.onQuit)
}

func (l *Loop) handleLine(line string) {
	fields := strings.Fields(line)

	// An empty line advances, mirroring pressing Enter in a drill.
	name := "next"
	var args []string
	if len(fields) > 0 {
		name = fields[0]
		args = fields[1:]
	}

	switch name {
	case "n":
		name = "next"
	case "q":
		name = "quit"
	}

	cmd, ok := l.commands[name]
	if !ok {
		l.disp.Dispatch(func() {
			fmt.Fprintf(l.out, "! unknown command %q (try help)\n", name)
		})
		return
	}

	done := make(chan struct{})
	l.disp.Dispatch(func() {
		defer close(done)
		cmd.fn(args)
	})
	<-done
}

func (l *Loop) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(l.out, "! usage: load <file>")
		return
	}
	l.ctrl.LoadFile(args[0])
}

func (l *Loop) cmdAdd(args []string) {
	parts := strings.SplitN(strings.Join(args, " "), ",", 2)
	if len(parts) != 2 {
		fmt.Fprintln(l.out, "! usage: add <spanish>,<english>")
		return
	}
	l.ctrl.AddWord(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
}

func (l *Loop) cmdSay(args []string) {
	i, ok := l.sentenceIndex(args)
	if !ok {
		fmt.Fprintln(l.out, "! usage: say <n>")
		return
	}
	l.ctrl.SaySentence(i)
}

func (l *Loop) cmdCopy(args []string) {
	i, ok := l.sentenceIndex(args)
	if !ok {
		fmt.Fprintln(l.out, "! usage: copy <n>")
		return
	}
	sentence, found := l.ctrl.Sentence(i)
	if !found {
		fmt.Fprintln(l.out, "! no such sentence")
		return
	}
	fmt.Fprintln(l.out, sentence)
}

func (l *Loop) sentenceIndex(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func (l *Loop) cmdAnswer(args []string) {
	round := l.ctrl.Round()
	if round == nil {
		fmt.Fprintln(l.out, "! no exam in progress")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(l.out, "! usage: a <question> <letter>")
		return
	}

	q, err := strconv.Atoi(args[0])
	if err != nil || q < 1 || q > len(round.Questions) {
		fmt.Fprintf(l.out, "! question must be 1-%d\n", len(round.Questions))
		return
	}

	opt := optionIndex(strings.ToLower(args[1]))
	options := round.Questions[q-1].Options
	if opt < 0 || opt >= len(options) {
		fmt.Fprintf(l.out, "! letter must be a-%s\n", optionLabel(len(options)-1))
		return
	}

	l.answers[q-1] = options[opt]
	fmt.Fprintf(l.out, "  %d → %s (%d/%d answered)\n", q, options[opt], len(l.answers), len(round.Questions))
}

func (l *Loop) cmdSubmit(args []string) {
	if l.ctrl.Round() == nil {
		fmt.Fprintln(l.out, "! no exam in progress")
		return
	}
	l.ctrl.SubmitExam(l.answers)
	l.answers = make(map[int]string)
}

func (l *Loop) cmdClose(args []string) {
	l.ctrl.CloseExam()
	l.answers = make(map[int]string)
}

func (l *Loop) cmdHelp(args []string) {
	names := make([]string, 0, len(l.commands))
	for name := range l.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(l.out, "Commands:")
	for _, name := range names {
		cmd := l.commands[name]
		fmt.Fprintf(l.out, "  %-24s %s\n", cmd.usage, cmd.help)
	}
}

func (l *Loop) cmdQuit(args []string) {
	l.onQuit()
}

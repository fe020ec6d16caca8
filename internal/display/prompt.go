package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wojtek/organizer/internal/classify"
)

// Choice is the user's answer to a per-file move prompt.
type Choice int

const (
	// ChoiceYes accepts the proposed candidate.
	ChoiceYes Choice = iota
	// ChoiceSkip leaves the file in place and moves on.
	ChoiceSkip
	// ChoiceNext rejects the candidate; the next-ranked one is proposed.
	ChoiceNext
	// ChoiceAll accepts this and every following proposal.
	ChoiceAll
	// ChoiceQuit aborts the run.
	ChoiceQuit
)

// Prompter asks the user about proposed moves, one file at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing prompts
// to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ConfirmMove proposes one candidate for a file and reads the user's choice.
// The default (empty answer) is no, proposing the next candidate.
func (p *Prompter) ConfirmMove(source string, candidate classify.Ranked) (Choice, error) {
	for {
		fmt.Fprintf(p.out, "Proposed target for %q: %s\n", source, candidate.Candidate)
		fmt.Fprintf(p.out, "Move? %s [ (y)es/(s)kip/(N)o/(a)ll/(q)uit ] ",
			scoreLabel(candidate.Primary, candidate.Secondary))

		answer, err := p.readAnswer()
		if err != nil {
			return ChoiceQuit, err
		}
		switch answer {
		case "y":
			return ChoiceYes, nil
		case "s":
			return ChoiceSkip, nil
		case "n", "":
			return ChoiceNext, nil
		case "a":
			return ChoiceAll, nil
		case "q":
			return ChoiceQuit, nil
		default:
			fmt.Fprintf(p.out, "Unknown choice: %s\n", answer)
		}
	}
}

// ConfirmPlan asks a final yes/no before executing the whole queue.
// The default (empty answer) is yes.
func (p *Prompter) ConfirmPlan() (bool, error) {
	for {
		fmt.Fprint(p.out, "Perform? [ (Y)es/(n)o ] ")
		answer, err := p.readAnswer()
		if err != nil {
			return false, err
		}
		switch answer {
		case "y", "":
			return true, nil
		case "n", "q":
			return false, nil
		default:
			fmt.Fprintf(p.out, "Unknown choice: %s\n", answer)
		}
	}
}

func (p *Prompter) readAnswer() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

package main

import (
	"fmt"
	"math"
	"strconv"
	"unicode"

	"github.com/c-bata/go-prompt"

	"github.com/whyrusleeping/whine/noise"
	"github.com/whyrusleeping/whine/ui"
)

// Console edits generator parameters from a prompt. Slider-backed values are
// posted as controls so a slider being dragged keeps priority; the
// interpolation mode has no slider and is set directly.
type Console struct {
	gen  *noise.Gen
	unit noise.Unit
	out  chan<- ui.Control
}

func NewConsole(gen *noise.Gen, unit noise.Unit, out chan<- ui.Control) *Console {
	return &Console{
		gen:  gen,
		unit: unit,
		out:  out,
	}
}

var consoleSuggestions = []prompt.Suggest{
	{Text: "period", Description: "segment length"},
	{Text: "volume", Description: "output level between 0 and 1"},
	{Text: "interp", Description: "linear or cosine"},
	{Text: "help", Description: "list commands"},
	{Text: "exit", Description: "close the console"},
}

func (c *Console) Run() {
	completer := func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterHasPrefix(consoleSuggestions, d.GetWordBeforeCursor(), true)
	}

	for {
		t := prompt.Input("> ", completer)
		if t == "exit" {
			return
		}
		if err := c.ProcessCmd(t); err != nil {
			fmt.Println("ERROR: ", err)
		}
	}
}

func (c *Console) ProcessCmd(cmdl string) error {
	tokens, err := tokenize(cmdl)
	if err != nil {
		return err
	}

	switch {
	case len(tokens) == 0:
		return nil
	case len(tokens) == 1 && tokens[0] == "help":
		for _, s := range consoleSuggestions {
			fmt.Printf("%-8s %s\n", s.Text, s.Description)
		}
		return nil
	case len(tokens) == 1:
		v, err := c.lookup(tokens[0])
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	case len(tokens) == 3 && tokens[1] == "=":
		return c.assign(tokens[0], tokens[2])
	default:
		return fmt.Errorf("unknown command %q", cmdl)
	}
}

func (c *Console) lookup(name string) (string, error) {
	switch name {
	case "period":
		if c.unit == noise.Seconds {
			return fmt.Sprintf("%gs", c.gen.StepTime()), nil
		}
		return fmt.Sprintf("%g samples", c.gen.Period()), nil
	case "volume":
		return fmt.Sprintf("%g", c.gen.Volume()), nil
	case "interp":
		return c.gen.Interp().String(), nil
	default:
		return "", fmt.Errorf("unknown reference %q", name)
	}
}

func (c *Console) assign(name, val string) error {
	if name == "interp" {
		i, err := noise.ParseInterp(val)
		if err != nil {
			return err
		}
		c.gen.SetInterp(i)
		return nil
	}

	var id ui.WidgetID
	switch name {
	case "period":
		id = periodSlider
	case "volume":
		id = volumeSlider
	default:
		return fmt.Errorf("unknown reference %q", name)
	}

	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number, got %s", name, val)
	}

	select {
	case c.out <- ui.Control{ID: id, Value: v}:
		return nil
	default:
		return fmt.Errorf("window is busy, %s not changed", name)
	}
}

// tokenize splits a command into words and '=' signs. Numbers keep their
// sign, decimal point and exponent.
func tokenize(s string) ([]string, error) {
	var out []string
	var wordstart int
	inword := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch {
		case unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]),
			runes[i] == '.', runes[i] == '-', runes[i] == '+':
			if !inword {
				inword = true
				wordstart = i
			}
		case unicode.IsSpace(runes[i]):
			if inword {
				out = append(out, string(runes[wordstart:i]))
				inword = false
			}
		case runes[i] == '=':
			if inword {
				out = append(out, string(runes[wordstart:i]))
				inword = false
			}
			out = append(out, string(runes[i]))
		default:
			return nil, fmt.Errorf("invalid character at index %d: %q", i, runes[i])
		}
	}
	if inword {
		out = append(out, string(runes[wordstart:]))
	}

	return out, nil
}

package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrParse         = errors.New("unparsable input")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrEndOfInput    = errors.New("end of input")
)

type Option[K comparable] struct {
	Key   K
	Label string
}

// Menu describes one prompt. Separator sits between key and label in the
// option listing, Input is printed before every read, and Hint completes the
// "Please enter ..." notice.
type Menu[K comparable] struct {
	Title     string
	Separator string
	Input     string
	Options   []Option[K]
	Parse     func(string) (K, error)
	Hint      string
}

func (m Menu[K]) choose(line string) (K, error) {
	key, err := m.Parse(line)
	if err != nil {
		return key, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for _, o := range m.Options {
		if o.Key == key {
			return key, nil
		}
	}
	return key, fmt.Errorf("%w: %v", ErrInvalidChoice, key)
}

// Ask shows the menu once and then keeps reading until a line parses to one
// of the option keys. Bad lines only repeat the input label. The returned
// error is either ErrEndOfInput or whatever the reader or context reported.
func Ask[K comparable](ctx context.Context, c *Console, m Menu[K]) (K, error) {
	c.Banner(m.Title)
	for _, o := range m.Options {
		c.Printf("%v%s%s\n", o.Key, m.Separator, o.Label)
	}

	for {
		c.Printf("%s", m.Input)
		line, err := c.ReadLine(ctx)
		if err != nil {
			var zero K
			return zero, err
		}

		key, err := m.choose(line)
		if err == nil {
			return key, nil
		}
		if errors.Is(err, ErrParse) {
			c.Notice(fmt.Sprintf("Invalid input. Please enter %s.", m.Hint))
		} else {
			c.Notice(fmt.Sprintf("Invalid choice. Please enter %s.", m.Hint))
		}
	}
}

// ParseAction normalises action menu input. It never fails.
func ParseAction(text string) (string, error) {
	return strings.ToLower(strings.TrimSpace(text)), nil
}

// ParseCandidate accepts a decimal integer; surrounding whitespace is ignored.
func ParseCandidate(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}

// JoinChoices renders "a", "a or b", "a, b or c".
func JoinChoices(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

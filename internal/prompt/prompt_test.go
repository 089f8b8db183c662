package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func actionMenu() Menu[string] {
	return Menu[string]{
		Title:     "VOTE MENU",
		Separator: ". ",
		Input:     "Option: ",
		Options:   []Option[string]{{"v", "Vote"}, {"x", "Exit"}},
		Parse:     ParseAction,
		Hint:      "'v' or 'x'",
	}
}

func candidateMenu() Menu[int] {
	return Menu[int]{
		Title:     "CANDIDATE MENU",
		Separator: ": ",
		Input:     "Candidate: ",
		Options:   []Option[int]{{1, "John"}, {2, "Jane"}},
		Parse:     ParseCandidate,
		Hint:      "1 or 2",
	}
}

func newTestConsole(lines ...string) (*Console, *bytes.Buffer, *Script) {
	var out bytes.Buffer
	script := NewScript(lines...)
	return NewConsole(&out, script, false), &out, script
}

func TestAsk_ActionMenuNormalisesInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower", "v", "v"},
		{"upper", "V", "v"},
		{"padded", "  x \t", "x"},
		{"upper_exit", "X", "x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _, _ := newTestConsole(tt.in)
			got, err := Ask(context.Background(), c, actionMenu())
			if err != nil {
				t.Fatalf("Ask: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestAsk_PrintsMenuOnceAndRepromptsInputOnly(t *testing.T) {
	t.Parallel()

	c, out, script := newTestConsole("vote", "", "q", "v")
	got, err := Ask(context.Background(), c, actionMenu())
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "v" {
		t.Fatalf("got=%q", got)
	}
	if script.Remaining() != 0 {
		t.Fatalf("expected all lines consumed, %d left", script.Remaining())
	}

	want := "---------------------\n" +
		"VOTE MENU\n" +
		"---------------------\n" +
		"v. Vote\n" +
		"x. Exit\n" +
		"Option: Invalid choice. Please enter 'v' or 'x'.\n" +
		"Option: Invalid choice. Please enter 'v' or 'x'.\n" +
		"Option: Invalid choice. Please enter 'v' or 'x'.\n" +
		"Option: "
	if out.String() != want {
		t.Fatalf("output mismatch\ngot : %q\nwant: %q", out.String(), want)
	}
}

func TestAsk_CandidateMenuDistinguishesParseAndRange(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestConsole("abc", "3", "1x", "0", "2")
	got, err := Ask(context.Background(), c, candidateMenu())
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != 2 {
		t.Fatalf("got=%d want=2", got)
	}

	s := out.String()
	if !strings.HasPrefix(s, "---------------------\nCANDIDATE MENU\n---------------------\n1: John\n2: Jane\n") {
		t.Fatalf("unexpected header: %q", s)
	}
	if n := strings.Count(s, "Invalid input. Please enter 1 or 2."); n != 2 {
		t.Fatalf("expected 2 parse notices (abc, 1x), got %d in %q", n, s)
	}
	if n := strings.Count(s, "Invalid choice. Please enter 1 or 2."); n != 2 {
		t.Fatalf("expected 2 range notices (3, 0), got %d in %q", n, s)
	}
	if n := strings.Count(s, "CANDIDATE MENU"); n != 1 {
		t.Fatalf("header shown %d times", n)
	}
}

func TestAsk_CandidateIgnoresSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1 ", " 1", "\t1\t", "  1  "} {
		c, out, _ := newTestConsole(in)
		got, err := Ask(context.Background(), c, candidateMenu())
		if err != nil {
			t.Fatalf("Ask(%q): %v", in, err)
		}
		if got != 1 {
			t.Fatalf("Ask(%q) = %d, want 1", in, got)
		}
		if strings.Contains(out.String(), "Invalid") {
			t.Fatalf("Ask(%q) printed a notice: %q", in, out.String())
		}
	}
}

func TestAsk_OverlongLineIsParseFailure(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := NewReader(strings.NewReader(strings.Repeat("9", 70000) + "\n1\n"))
	t.Cleanup(func() { _ = r.Close() })
	c := NewConsole(&out, r, false)

	got, err := Ask(context.Background(), c, candidateMenu())
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != 1 {
		t.Fatalf("got=%d want=1", got)
	}
	if n := strings.Count(out.String(), "Invalid input. Please enter 1 or 2."); n != 1 {
		t.Fatalf("expected 1 parse notice, got %d", n)
	}
}

func TestAsk_EndOfInput(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole("nope")
	_, err := Ask(context.Background(), c, candidateMenu())
	if !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput, got: %v", err)
	}
}

func TestAsk_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, _, _ := newTestConsole("v")
	_, err := Ask(ctx, c, actionMenu())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestReader_StripsTerminatorsAndReportsEOF(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("v\r\n1\nlast"))
	ctx := context.Background()

	for _, want := range []string{"v", "1", "last"} {
		got, err := r.ReadLine(ctx)
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if got != want {
			t.Fatalf("got=%q want=%q", got, want)
		}
	}

	if _, err := r.ReadLine(ctx); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput, got: %v", err)
	}
	// stays at end of input
	if _, err := r.ReadLine(ctx); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput on second read, got: %v", err)
	}
}

func TestReader_ContextUnblocksRead(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	r := NewReader(pr)
	t.Cleanup(func() { _ = r.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.ReadLine(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got: %v", err)
	}
}

func TestReader_CloseReleasesPendingLine(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("v\nx\n"))
	line, err := r.ReadLine(context.Background())
	if err != nil || line != "v" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}

	// the goroutine is now parked on handing over "x"
	_ = r.Close()
	_ = r.Close()
	if _, err := r.ReadLine(context.Background()); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput after Close, got: %v", err)
	}
}

func TestJoinChoices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"1"}, "1"},
		{[]string{"1", "2"}, "1 or 2"},
		{[]string{"1", "2", "3"}, "1, 2 or 3"},
	}
	for _, tt := range tests {
		if got := JoinChoices(tt.in); got != tt.want {
			t.Fatalf("JoinChoices(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func FuzzAsk_CandidateNeverOutsideOptions(f *testing.F) {
	for _, s := range []string{"1", "2", "3", "-1", " 2", "2 ", "+1", "abc", ""} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		c, _, _ := newTestConsole(s)
		got, err := Ask(context.Background(), c, candidateMenu())
		if err != nil {
			if !errors.Is(err, ErrEndOfInput) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		// Инвариант: в ответе только ключ из меню
		if got != 1 && got != 2 {
			t.Fatalf("Ask returned %d for %q", got, s)
		}
	})
}

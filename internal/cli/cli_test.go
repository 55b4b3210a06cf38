package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/guestcard/pkg/card"
	"github.com/matzehuels/guestcard/pkg/deck"
	"github.com/matzehuels/guestcard/pkg/errors"
	"github.com/matzehuels/guestcard/pkg/layout"
)

// runCLI executes the root command with a config file that keeps the
// cache inside the test's temp dir.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	body := "[cache]\ndir = " + strconvQuote(filepath.Join(dir, "cache")) + "\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GUESTCARD_REDIS_ADDR", "")

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	return root.Execute()
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestSampleThenResolve(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.json")

	if err := runCLI(t, "sample", "-o", deckPath); err != nil {
		t.Fatalf("sample: %v", err)
	}
	if _, err := deck.Load(deckPath); err != nil {
		t.Fatalf("sample deck does not load: %v", err)
	}

	if err := runCLI(t, "resolve", deckPath, "-f", "json,preview", "--viewport", "440", "--rows"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "deck.plan.json"))
	if err != nil {
		t.Fatalf("json output: %v", err)
	}
	var out struct {
		ViewportWidth float64           `json:"viewport_width"`
		Cards         []json.RawMessage `json:"cards"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.ViewportWidth != 440 {
		t.Errorf("viewport_width = %v, want 440", out.ViewportWidth)
	}
	if len(out.Cards) != deck.Sample().Len() {
		t.Errorf("cards = %d, want %d", len(out.Cards), deck.Sample().Len())
	}
	if !bytes.Contains(data, []byte(`"rows"`)) {
		t.Error("--rows should add the row selection")
	}

	svg, err := os.ReadFile(filepath.Join(dir, "deck.preview.svg"))
	if err != nil {
		t.Fatalf("preview output: %v", err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("preview is not svg: %.40s", svg)
	}
}

func TestResolveSingleOutput(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.toml")
	if err := deck.Save(deckPath, deck.Sample()); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "cards.dot")
	if err := runCLI(t, "resolve", deckPath, "-f", "dot", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph") {
		t.Errorf("dot output starts with %.20q", data)
	}
}

func TestResolveErrors(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.json")
	if err := deck.Save(deckPath, deck.Sample()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing deck", []string{"resolve", filepath.Join(dir, "nope.json")}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"resolve", deckPath, "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad viewport", []string{"resolve", deckPath, "--viewport", "-1"}, errors.ErrCodeInvalidViewport},
		{"unknown id", []string{"inspect", deckPath, "--id", "999"}, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestResolveStdoutNeedsOneFormat(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.json")
	if err := deck.Save(deckPath, deck.Sample()); err != nil {
		t.Fatal(err)
	}
	if err := runCLI(t, "resolve", deckPath, "-o", "-", "-f", "json,dot"); err == nil {
		t.Error("stdout with two formats should fail")
	}
}

func TestBadConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("workers = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := New(io.Discard, log.InfoLevel).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", cfgPath, "matrix"})
	if err := root.Execute(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		input   string
		formats []string
		want    map[string]string
	}{
		{
			name:    "derived from input",
			input:   "decks/lobby.json",
			formats: []string{"json", "preview"},
			want:    map[string]string{"json": "decks/lobby.plan.json", "preview": "decks/lobby.preview.svg"},
		},
		{
			name:    "explicit single file",
			output:  "out/cards.svg",
			input:   "lobby.toml",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "out/cards.svg"},
		},
		{
			name:    "base path with known extension",
			output:  "out/cards.preview.svg",
			input:   "lobby.toml",
			formats: []string{"dot", "preview"},
			want:    map[string]string{"dot": "out/cards.dot", "preview": "out/cards.preview.svg"},
		},
		{
			name:    "bare base path",
			output:  "out/cards",
			input:   "lobby.toml",
			formats: []string{"json"},
			want:    map[string]string{"json": "out/cards.plan.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.input, tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestClosestPreset(t *testing.T) {
	tests := []struct {
		width float64
		want  float64
	}{
		{390, 390},
		{100, 320},
		{5000, 880},
		{430, 440},
	}
	for _, tt := range tests {
		if got := viewportPresets[closestPreset(tt.width)]; got != tt.want {
			t.Errorf("closestPreset(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseModel(t *testing.T) {
	d := deck.Sample()
	var m tea.Model = newBrowseModel(d, 390)

	send := func(keys ...string) {
		for _, k := range keys {
			m, _ = m.Update(keyMsg(k))
		}
	}

	send("left")
	if got := m.(browseModel).card; got != 0 {
		t.Errorf("left at first card moved to %d", got)
	}

	send("right", "l")
	bm := m.(browseModel)
	if bm.card != 2 {
		t.Errorf("card = %d, want 2", bm.card)
	}

	send("up")
	bm = m.(browseModel)
	if bm.viewport() != 414 {
		t.Errorf("viewport = %v, want 414", bm.viewport())
	}

	e := d.Entries[2]
	want := layout.Resolve(e.Record, e.Context, e.Overrides, 414)
	if got := bm.plan(); got.Container != want.Container {
		t.Errorf("plan container = %+v, want %+v", got.Container, want.Container)
	}

	view := bm.View()
	if !strings.Contains(view, e.ID) || !strings.Contains(view, "viewport 414") {
		t.Errorf("view misses card id or viewport:\n%s", view)
	}

	for range len(d.Entries) + 3 {
		send("right")
	}
	if got := m.(browseModel).card; got != d.Len()-1 {
		t.Errorf("card = %d, want last", got)
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestTryInputCard(t *testing.T) {
	in := tryInput{
		Name:      "Ada",
		DateRange: "Oct 18 - Oct 21",
		TimeLabel: string(card.ETA),
		Time:      "14:00",
		Category:  string(card.Stayover),
		Slot:      string(card.First),
		Viewport:  "440",
	}
	rec, ctx, width, err := in.card()
	if err != nil {
		t.Fatalf("card() = %v", err)
	}
	if width != 440 || ctx.Category != card.Stayover || !rec.HasTime() {
		t.Errorf("card() = %+v %+v %v", rec, ctx, width)
	}

	bad := in
	bad.Viewport = "wide"
	if _, _, _, err := bad.card(); !errors.Is(err, errors.ErrCodeInvalidViewport) {
		t.Errorf("bad viewport err = %v", err)
	}

	bad = in
	bad.Category = "lobby"
	if _, _, _, err := bad.card(); !errors.Is(err, errors.ErrCodeInvalidCategory) {
		t.Errorf("bad category err = %v", err)
	}
}

func TestPlanTable(t *testing.T) {
	rec := card.GuestRecord{Name: "Ada", DateRange: "Oct 18 - Oct 21"}
	p := layout.Resolve(rec, card.Context{Category: card.Departure}, nil, 390)

	out := planTable(p)
	for _, want := range []string{"Element", "name", "date_range", "Ada", "Oct 18 - Oct 21"} {
		if !strings.Contains(out, want) {
			t.Errorf("planTable missing %q:\n%s", want, out)
		}
	}
}

func TestStatsLine(t *testing.T) {
	if got := statsLine(9, 40, 9); !strings.Contains(got, iconCached) {
		t.Errorf("all cached: %q", got)
	}
	if got := statsLine(9, 40, 0); !strings.Contains(got, iconFresh) {
		t.Errorf("none cached: %q", got)
	}
	if got := statsLine(9, 40, 3); !strings.Contains(got, "3 "+iconCached) {
		t.Errorf("partly cached: %q", got)
	}
}

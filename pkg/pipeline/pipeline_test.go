package pipeline

import (
	"testing"

	"github.com/matzehuels/guestcard/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"preview", false},
		{"png", true},
		{"", true},
		{"JSON", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"json", "svg"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := ValidateFormats([]string{"json", "pdf"}); err == nil {
		t.Error("invalid format accepted")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"json"}},
		{"  ", []string{"json"}},
		{"svg", []string{"svg"}},
		{"json, dot,,svg", []string{"json", "dot", "svg"}},
	}
	for _, tt := range tests {
		got := ParseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.ViewportWidth != DefaultViewportWidth {
		t.Errorf("ViewportWidth = %v, want %v", opts.ViewportWidth, DefaultViewportWidth)
	}
	if opts.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", opts.Workers, DefaultWorkers)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("Formats = %v, want [json]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative viewport", Options{ViewportWidth: -10}, errors.ErrCodeInvalidViewport},
		{"huge viewport", Options{ViewportWidth: 1e6}, errors.ErrCodeInvalidViewport},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"too many workers", Options{Workers: MaxWorkers + 1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{ViewportWidth: 412, Formats: []string{"svg"}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	first := opts.String()

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.String() != first {
		t.Errorf("options changed on second call: %s != %s", opts.String(), first)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{ViewportWidth: 390, Rows: true}
	k := opts.ArtifactKeyOpts(FormatSVG)
	if k.Format != FormatSVG || k.ViewportWidth != 390 || !k.Rows || k.Detailed {
		t.Errorf("ArtifactKeyOpts = %+v", k)
	}
	if opts.PlanKeyOpts().ViewportWidth != 390 {
		t.Error("PlanKeyOpts should carry the viewport")
	}
}

func TestExtensionsCoverFormats(t *testing.T) {
	for _, f := range Formats {
		if Extensions[f] == "" {
			t.Errorf("format %s has no extension", f)
		}
	}
}

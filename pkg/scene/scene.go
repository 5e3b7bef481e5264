// Package scene builds wired cell/control graphs from YAML descriptions.
//
// A scene file declares named cells with a value type and initial value,
// the controls linked to each cell, and optional canvases:
//
//	cells:
//	  - name: volume
//	    type: float
//	    initial: "5"
//	    controls:
//	      - kind: label
//	      - kind: entry
//	      - kind: slider
//	        min: 0
//	        max: 10
//	    canvas:
//	      width: 160
//	      height: 40
//
// Load parses the file; Build attaches everything, so every control displays
// its cell's initial value by the time Build returns.
package scene

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/valuelink/pkg/canvas"
	"github.com/go-drift/valuelink/pkg/controls"
	"github.com/go-drift/valuelink/pkg/link"
	"github.com/go-drift/valuelink/pkg/linkerr"
)

// Config is the top-level scene description.
type Config struct {
	Cells []CellConfig `yaml:"cells"`
}

// CellConfig declares one cell and its attachments.
type CellConfig struct {
	Name     string          `yaml:"name"`
	Type     string          `yaml:"type"`              // string, int or float
	Initial  string          `yaml:"initial,omitempty"` // parsed per Type; zero value when empty
	Controls []ControlConfig `yaml:"controls,omitempty"`
	Canvas   *CanvasConfig   `yaml:"canvas,omitempty"`
}

// ControlConfig declares one control linked to its cell.
type ControlConfig struct {
	Kind string `yaml:"kind"` // label, entry or slider
	Name string `yaml:"name,omitempty"`
	// Min and Max bound slider kinds; ignored for text kinds.
	Min float64 `yaml:"min,omitempty"`
	Max float64 `yaml:"max,omitempty"`
}

// CanvasConfig declares a passive canvas observer on a cell.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Load reads and parses a scene file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sceneErr("scene.Load", fmt.Errorf("failed to read scene file: %w", err))
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, sceneErr("scene.Load", fmt.Errorf("failed to parse scene file: %w", err))
	}
	return &cfg, nil
}

// Scene is a built, fully wired graph: named cells with their controls and
// canvases attached and already displaying the initial values.
type Scene struct {
	Strings map[string]*link.Cell[string]
	Ints    map[string]*link.Cell[int]
	Floats  map[string]*link.Cell[float64]

	Labels   map[string]*controls.Label
	Entries  map[string]*controls.Entry
	Sliders  map[string]*controls.Slider
	Canvases map[string]*canvas.Canvas
}

// Build wires a scene from its description.
func Build(cfg *Config) (*Scene, error) {
	s := &Scene{
		Strings:  make(map[string]*link.Cell[string]),
		Ints:     make(map[string]*link.Cell[int]),
		Floats:   make(map[string]*link.Cell[float64]),
		Labels:   make(map[string]*controls.Label),
		Entries:  make(map[string]*controls.Entry),
		Sliders:  make(map[string]*controls.Slider),
		Canvases: make(map[string]*canvas.Canvas),
	}
	for _, cc := range cfg.Cells {
		if cc.Name == "" {
			return nil, sceneErr("scene.Build", fmt.Errorf("cell without a name"))
		}
		if err := s.buildCell(cc); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scene) buildCell(cc CellConfig) error {
	switch cc.Type {
	case "string":
		cell := link.NewCell(cc.Initial)
		s.Strings[cc.Name] = cell
		return buildAttachments(s, cc, cell, link.Strings(), false)
	case "int":
		initial := 0
		if cc.Initial != "" {
			v, err := strconv.Atoi(cc.Initial)
			if err != nil {
				return sceneErr("scene.Build", fmt.Errorf("cell %q: bad int initial %q: %w", cc.Name, cc.Initial, err))
			}
			initial = v
		}
		cell := link.NewCell(initial)
		s.Ints[cc.Name] = cell
		return buildAttachments(s, cc, cell, link.Ints(), true)
	case "float":
		initial := 0.0
		if cc.Initial != "" {
			v, err := strconv.ParseFloat(cc.Initial, 64)
			if err != nil {
				return sceneErr("scene.Build", fmt.Errorf("cell %q: bad float initial %q: %w", cc.Name, cc.Initial, err))
			}
			initial = v
		}
		cell := link.NewCell(initial)
		s.Floats[cc.Name] = cell
		return buildAttachments(s, cc, cell, link.Floats(), true)
	default:
		return sceneErr("scene.Build", fmt.Errorf("cell %q: unknown type %q", cc.Name, cc.Type))
	}
}

// buildAttachments links the declared controls and canvas to cell.
func buildAttachments[T any](s *Scene, cc CellConfig, cell *link.Cell[T], codec link.Codec[T], numeric bool) error {
	for i, ctl := range cc.Controls {
		name := ctl.Name
		if name == "" {
			name = fmt.Sprintf("%s.%s%d", cc.Name, ctl.Kind, i)
		}
		switch ctl.Kind {
		case "label":
			l := controls.NewLabel()
			link.Link(cell, l, controls.LabelAdapter[T]{Codec: codec})
			s.Labels[name] = l
		case "entry":
			e := controls.NewEntry()
			link.Link(cell, e, controls.EntryAdapter[T]{Codec: codec})
			s.Entries[name] = e
		case "slider":
			if !numeric {
				return sceneErr("scene.Build", fmt.Errorf("cell %q: slider requires a numeric cell", cc.Name))
			}
			sl := controls.NewSlider(ctl.Min, ctl.Max)
			linkSlider(cell, sl)
			s.Sliders[name] = sl
		default:
			return sceneErr("scene.Build", fmt.Errorf("cell %q: unknown control kind %q", cc.Name, ctl.Kind))
		}
	}

	if cc.Canvas != nil {
		c := canvas.New(cc.Canvas.Width, cc.Canvas.Height, func() string {
			return codec.Format(cell.Get())
		})
		cell.AttachObserver(c)
		c.Refresh() // first paint
		s.Canvases[cc.Name] = c
	}
	return nil
}

// linkSlider dispatches on the concrete numeric cell type; only int and
// float cells reach it.
func linkSlider[T any](cell *link.Cell[T], sl *controls.Slider) {
	switch c := any(cell).(type) {
	case *link.Cell[int]:
		link.Link(c, sl, controls.SliderAdapter[int]{})
	case *link.Cell[float64]:
		link.Link(c, sl, controls.SliderAdapter[float64]{})
	}
}

// SetValue performs a programmatic update on the named cell, parsing text
// per the cell's type. The full fan-out runs before SetValue returns.
func (s *Scene) SetValue(name, text string) error {
	if cell, ok := s.Strings[name]; ok {
		cell.Set(text)
		return nil
	}
	if cell, ok := s.Ints[name]; ok {
		v, err := strconv.Atoi(text)
		if err != nil {
			return sceneErr("scene.SetValue", fmt.Errorf("cell %q: bad int %q: %w", name, text, err))
		}
		cell.Set(v)
		return nil
	}
	if cell, ok := s.Floats[name]; ok {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return sceneErr("scene.SetValue", fmt.Errorf("cell %q: bad float %q: %w", name, text, err))
		}
		cell.Set(v)
		return nil
	}
	return sceneErr("scene.SetValue", fmt.Errorf("no cell named %q", name))
}

// Values renders every cell's current value as text, keyed by cell name.
func (s *Scene) Values() map[string]string {
	out := make(map[string]string)
	for name, cell := range s.Strings {
		out[name] = cell.Get()
	}
	for name, cell := range s.Ints {
		out[name] = strconv.Itoa(cell.Get())
	}
	for name, cell := range s.Floats {
		out[name] = strconv.FormatFloat(cell.Get(), 'g', -1, 64)
	}
	return out
}

func sceneErr(op string, err error) error {
	return &linkerr.LinkError{Op: op, Kind: linkerr.KindScene, Err: err}
}

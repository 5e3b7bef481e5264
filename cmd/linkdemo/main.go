// Command linkdemo loads a scene file, applies programmatic updates and
// simulated entry commits, then prints the resulting cell values and
// optionally writes each canvas as a PNG.
//
// Usage:
//
//	linkdemo -scene mixer.yaml -set volume=3 -commit volume.entry1=7 -out ./frames
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-drift/valuelink/pkg/linkerr"
	"github.com/go-drift/valuelink/pkg/scene"
)

// multiFlag collects repeatable name=value flags.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	var (
		scenePath string
		outDir    string
		verbose   bool
		sets      multiFlag
		commits   multiFlag
	)
	flag.StringVar(&scenePath, "scene", "", "scene file to load (required)")
	flag.StringVar(&outDir, "out", "", "directory to write canvas PNGs into")
	flag.BoolVar(&verbose, "verbose", false, "verbose error output")
	flag.Var(&sets, "set", "programmatic update, cell=value (repeatable)")
	flag.Var(&commits, "commit", "simulated entry commit, entry=text (repeatable)")
	flag.Parse()

	if scenePath == "" {
		fmt.Fprintln(os.Stderr, "linkdemo: -scene is required")
		flag.Usage()
		os.Exit(2)
	}

	linkerr.SetHandler(&linkerr.LogHandler{Verbose: verbose})

	if err := run(scenePath, outDir, sets, commits); err != nil {
		fmt.Fprintf(os.Stderr, "linkdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath, outDir string, sets, commits []string) error {
	cfg, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	sc, err := scene.Build(cfg)
	if err != nil {
		return err
	}

	for _, arg := range sets {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("bad -set %q, want cell=value", arg)
		}
		if err := sc.SetValue(name, value); err != nil {
			return err
		}
	}

	for _, arg := range commits {
		name, text, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("bad -commit %q, want entry=text", arg)
		}
		entry, ok := sc.Entries[name]
		if !ok {
			return fmt.Errorf("no entry named %q", name)
		}
		// A commit of unparsable text surfaces a conversion error here,
		// exactly as it would out of a native event loop. Report and
		// continue; the cell keeps its previous value.
		if err := entry.Commit(text); err != nil {
			linkerr.Report(&linkerr.LinkError{
				Op:   "linkdemo.commit",
				Kind: linkerr.KindConversion,
				Err:  err,
			})
		}
	}

	printValues(sc)

	if outDir != "" {
		if err := writeCanvases(sc, outDir); err != nil {
			return err
		}
	}
	return nil
}

func printValues(sc *scene.Scene) {
	values := sc.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s = %s\n", name, values[name])
	}
}

func writeCanvases(sc *scene.Scene, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, c := range sc.Canvases {
		path := filepath.Join(dir, name+".png")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, c.Image()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

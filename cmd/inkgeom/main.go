package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/inkgeom"
	"github.com/osuushi/inkgeom/advanced"
	"github.com/osuushi/inkgeom/dbg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line driver for the stroke geometry engine. Strokes are read from
// points files (one "x y" per line); scenes are read from SVG.

var (
	app         = kingpin.New("inkgeom", "Simplify, recognize and trim freehand strokes.")
	configPath  = app.Flag("config", "TOML config file.").ExistingFile()
	noRecognize = app.Flag("no-recognize", "Turn shape recognition off.").Bool()
	debug       = app.Flag("debug", "Log the engine's decisions.").Bool()
	verbose     = app.Flag("verbose", "Dump full results.").Short('v').Bool()

	simplifyCmd     = app.Command("simplify", "Simplify a stroke.")
	simplifyFile    = simplifyCmd.Arg("file", "Points file.").Required().ExistingFile()
	simplifyEpsilon = simplifyCmd.Flag("epsilon", "Tolerance.").Default("1.5").Float64()

	classifyCmd  = app.Command("classify", "Recognize the shape of a stroke.")
	classifyFile = classifyCmd.Arg("file", "Points file.").Required().ExistingFile()

	cornersCmd  = app.Command("corners", "List the corners of a stroke.")
	cornersFile = cornersCmd.Arg("file", "Points file.").Required().ExistingFile()

	trimCmd    = app.Command("trim", "Trim an element of an SVG scene.")
	trimFile   = trimCmd.Arg("file", "SVG scene.").Required().ExistingFile()
	trimTarget = trimCmd.Flag("target", "Id of the element to trim.").Required().String()
	trimAt     = trimCmd.Flag("at", "Click position as X,Y.").Required().String()

	renderCmd    = app.Command("render", "Render the outlines of an SVG scene to PNG.")
	renderFile   = renderCmd.Arg("file", "SVG scene.").Required().ExistingFile()
	renderOut    = renderCmd.Flag("out", "Output PNG.").Default("inkgeom.png").String()
	renderScale  = renderCmd.Flag("scale", "Pixels per unit.").Default("2").Float64()
	renderImgcat = renderCmd.Flag("imgcat", "Also print the image to the terminal.").Bool()

	synthCmd     = app.Command("synth", "Print an element's outline as a stroke.")
	synthFile    = synthCmd.Arg("file", "SVG scene.").Required().ExistingFile()
	synthID      = synthCmd.Flag("id", "Element id.").Required().String()
	synthSpacing = synthCmd.Flag("spacing", "Largest gap between samples.").Default("5").Float64()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(logrus.DebugLevel)
		inkgeom.SetLogger(log)
	}

	cfg, err := loadConfig()
	app.FatalIfError(err, "")

	switch command {
	case simplifyCmd.FullCommand():
		err = runSimplify(log)
	case classifyCmd.FullCommand():
		err = runClassify(log, cfg)
	case cornersCmd.FullCommand():
		err = runCorners()
	case trimCmd.FullCommand():
		err = runTrim(log)
	case renderCmd.FullCommand():
		err = runRender(log)
	case synthCmd.FullCommand():
		err = runSynth()
	}
	app.FatalIfError(err, "%s", command)
}

func loadConfig() (inkgeom.Config, error) {
	cfg := inkgeom.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = inkgeom.LoadConfig(*configPath); err != nil {
			return cfg, err
		}
	}
	if *noRecognize {
		cfg.RecognizeShapes = false
	}
	return cfg, nil
}

func loadStroke(path string) (inkgeom.Polyline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening points file")
	}
	defer f.Close()
	return readStroke(f)
}

func loadScene(path string) (inkgeom.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer f.Close()
	return advanced.ParseSVG(f)
}

func dump(log logrus.FieldLogger, label string, v interface{}) {
	if *verbose {
		log.Infof("%s: %s", label, pretty.Sprint(v))
	}
}

func runSimplify(log logrus.FieldLogger) error {
	points, err := loadStroke(*simplifyFile)
	if err != nil {
		return err
	}
	simplified := inkgeom.Simplify(points, *simplifyEpsilon)
	log.WithFields(logrus.Fields{
		"in":  len(points),
		"out": len(simplified),
	}).Info("simplified")
	writeStroke(os.Stdout, simplified)
	return nil
}

func runClassify(log logrus.FieldLogger, cfg inkgeom.Config) error {
	points, err := loadStroke(*classifyFile)
	if err != nil {
		return err
	}
	stroke, err := inkgeom.FinalizeStroke(points, cfg)
	if err != nil {
		return err
	}
	dump(log, "stroke", stroke)
	switch {
	case !cfg.RecognizeShapes:
		fmt.Println(aurora.Yellow("recognition off"))
	case stroke.Shape == nil:
		fmt.Println(aurora.Red("no match"))
	default:
		fmt.Println(aurora.Green(stroke.Shape.String()))
	}
	return nil
}

func runCorners() error {
	points, err := loadStroke(*cornersFile)
	if err != nil {
		return err
	}
	for _, c := range advanced.DetectCorners(points) {
		fmt.Printf("%g %g %s\n", c.X, c.Y, aurora.Cyan(fmt.Sprintf("%.1f°", c.Angle*180/math.Pi)))
	}
	return nil
}

func parseClick(s string) (inkgeom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return inkgeom.Point{}, errors.Errorf("expected X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return inkgeom.Point{}, errors.Wrap(err, "click x")
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return inkgeom.Point{}, errors.Wrap(err, "click y")
	}
	return inkgeom.Point{X: x, Y: y}, nil
}

func runTrim(log logrus.FieldLogger) error {
	scene, err := loadScene(*trimFile)
	if err != nil {
		return err
	}
	click, err := parseClick(*trimAt)
	if err != nil {
		return err
	}
	target := inkgeom.ElementID(*trimTarget)
	if _, ok := scene.Find(target); !ok {
		return errors.Errorf("no element %q in scene", *trimTarget)
	}

	counter := 0
	newID := func() inkgeom.ElementID {
		counter++
		return inkgeom.ElementID(fmt.Sprintf("%s-trim-%d", target, counter))
	}
	replacements, ok, err := inkgeom.TrimElement(scene, target, click, newID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(aurora.Yellow("nothing to trim"))
		return nil
	}
	log.WithField("target", dbg.Name(target)).Infof("replaced by %d paths", len(replacements))
	dump(log, "replacements", replacements)
	for _, e := range replacements {
		fmt.Println(aurora.Cyan(string(e.ID)))
		pl, _ := inkgeom.ToPolyline(e)
		writeStroke(os.Stdout, pl)
	}
	return nil
}

func runRender(log logrus.FieldLogger) error {
	scene, err := loadScene(*renderFile)
	if err != nil {
		return err
	}
	visible := advanced.Layer{R: 1, G: 1, B: 1}
	hidden := advanced.Layer{R: 0.4, G: 0.4, B: 0.4}
	crossings := advanced.Layer{R: 1, G: 0.2, B: 0.2}
	var outlines []inkgeom.Cutter
	for _, e := range scene {
		pl, ok := inkgeom.ToPolyline(e)
		if !ok {
			log.WithField("element", e.String()).Warn("no outline")
			continue
		}
		if e.Hidden {
			hidden.Polylines = append(hidden.Polylines, pl)
			continue
		}
		visible.Polylines = append(visible.Polylines, pl)
		outlines = append(outlines, inkgeom.Cutter{ID: e.ID, Polyline: pl})
	}

	for i, a := range outlines {
		for _, b := range outlines[i+1:] {
			for _, x := range advanced.FindIntersections(a.Polyline, b.Polyline, b.ID) {
				crossings.Markers = append(crossings.Markers, x.Point)
				if *verbose {
					fmt.Printf("%s x %s at (%.1f, %.1f)\n", dbg.ColorName(a.ID), dbg.ColorName(b.ID), x.X, x.Y)
				}
			}
		}
	}
	log.WithField("crossings", len(crossings.Markers)).Info("rendering")

	f, err := os.Create(*renderOut)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := advanced.RenderPNG(f, []advanced.Layer{hidden, visible, crossings}, *renderScale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing output")
	}
	if *renderImgcat {
		return catImage(*renderOut, os.Stdout)
	}
	return nil
}

// Print a PNG inline, for terminals that support it.
func catImage(path string, w io.Writer) error {
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "printing %s", path)
	}
	return nil
}

func runSynth() error {
	scene, err := loadScene(*synthFile)
	if err != nil {
		return err
	}
	e, ok := scene.Find(inkgeom.ElementID(*synthID))
	if !ok {
		return errors.Errorf("no element %q in scene", *synthID)
	}
	pl, ok := inkgeom.ToPolyline(e)
	if !ok {
		return errors.Errorf("element %q has no outline", *synthID)
	}
	writeStroke(os.Stdout, pl.Resample(*synthSpacing))
	return nil
}

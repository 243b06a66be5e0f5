// This defines a basic executable for generating a 2D map: a maze, a cave,
// or a composite dungeon, rendered as either ASCII text or a PNG image.
package main

import (
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/yalue/image_utils"
	"github.com/yalue/mapgen"
)

var log = logrus.New()

// wrapOccurrences counts how many times --wrap was passed (0-2); bound via
// the Count field on the wrap BoolFlag.
var wrapOccurrences int

func parsePositionals(c *cli.Context) (width, height, numRooms int, deadEndRatio float64, outputPath string, err error) {
	args := c.Args().Slice()
	if len(args) != 5 {
		return 0, 0, 0, 0, "", fmt.Errorf(
			"expected 5 positional arguments: width height num_rooms "+
				"dead_end_removal_ratio output_path, got %d", len(args))
	}
	width, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, 0, 0, "", fmt.Errorf("invalid width: %w", err)
	}
	height, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, 0, 0, "", fmt.Errorf("invalid height: %w", err)
	}
	numRooms, err = strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, 0, 0, "", fmt.Errorf("invalid num_rooms: %w", err)
	}
	deadEndRatio, err = strconv.ParseFloat(args[3], 64)
	if err != nil {
		return 0, 0, 0, 0, "", fmt.Errorf("invalid dead_end_removal_ratio: %w", err)
	}
	outputPath = args[4]
	return width, height, numRooms, deadEndRatio, outputPath, nil
}

// resolveGenerationType picks the maze algorithm from the mutually
// exclusive method flags. Returns an error if --cave wasn't given and no
// method (or more than one) was selected.
func resolveGenerationType(c *cli.Context) (mapgen.GenerationType, error) {
	selected := 0
	if c.Bool("wilson") {
		selected++
	}
	if c.Bool("prim") {
		selected++
	}
	if c.IsSet("backtrack") {
		selected++
	}
	if selected != 1 {
		return mapgen.GenerationType{}, fmt.Errorf(
			"exactly one of --wilson, --prim, or --backtrack is required " +
				"when not using --cave")
	}
	switch {
	case c.Bool("wilson"):
		return mapgen.Wilson(), nil
	case c.Bool("prim"):
		return mapgen.Prim(), nil
	default:
		return mapgen.Backtrack(c.Float64("backtrack")), nil
	}
}

// outputFilename appends .png if the given path doesn't already end in
// .png or .jpeg.
func outputFilename(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".jpeg") {
		return path
	}
	return path + ".png"
}

func run(c *cli.Context) error {
	width, height, numRooms, deadEndRatio, outputPath, err := parsePositionals(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if (width <= 0) || (height <= 0) {
		return cli.Exit(fmt.Errorf("width and height must be positive"), 1)
	}

	wrapCount := wrapOccurrences
	if wrapCount > 2 {
		wrapCount = 2
	}
	wrap := mapgen.WrapLevel(wrapCount)

	seed := c.Int64("seed")
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	imageSet := c.IsSet("image")
	blockSize := c.Int("image")
	if blockSize < 10 {
		blockSize = 10
	}

	log.WithFields(logrus.Fields{
		"width":     width,
		"height":    height,
		"num_rooms": numRooms,
		"wrap":      wrap.String(),
		"cave":      c.Bool("cave"),
		"image":     imageSet,
		"outside":   c.Bool("outside"),
		"seed":      seed,
	}).Info("Starting map generation.")

	var asciiOut string

	if c.Bool("cave") {
		constraints := make([][]int, height)
		for i := range constraints {
			constraints[i] = make([]int, width)
			for j := range constraints[i] {
				constraints[i][j] = mapgen.ConstraintRandom
			}
		}
		cave, e := mapgen.BuildCave(height, width, mapgen.DefaultWallProbability, constraints, rng)
		if e != nil {
			return cli.Exit(fmt.Errorf("failed generating cave: %w", e), 1)
		}
		if imageSet {
			cave.PixelsPerTile = blockSize
			if e := writeRGBAImage(cave, outputPath); e != nil {
				return cli.Exit(e, 1)
			}
		} else {
			asciiOut = cave.ASCII()
			if e := os.WriteFile(outputPath, []byte(asciiOut), 0644); e != nil {
				return cli.Exit(fmt.Errorf("failed writing output: %w", e), 1)
			}
		}
		log.WithField("output", outputPath).Info("Cave generated OK.")
		return nil
	}

	gt, e := resolveGenerationType(c)
	if e != nil {
		return cli.Exit(e, 1)
	}

	dungeon, e := mapgen.Compose(height, width, wrap, gt, numRooms, deadEndRatio, c.Bool("outside"), rng)
	if e != nil {
		return cli.Exit(fmt.Errorf("failed generating dungeon: %w", e), 1)
	}

	if imageSet {
		dungeon.TileMap.PixelsPerTile = blockSize
		if e := writeRGBAImage(dungeon.TileMap, outputPath); e != nil {
			return cli.Exit(e, 1)
		}
	} else {
		asciiOut = dungeon.TileMap.ASCII()
		if e := os.WriteFile(outputPath, []byte(asciiOut), 0644); e != nil {
			return cli.Exit(fmt.Errorf("failed writing output: %w", e), 1)
		}
	}
	log.WithFields(logrus.Fields{
		"output": outputPath,
		"rooms":  len(dungeon.Rooms),
	}).Info("Map generated OK.")
	return nil
}

// writeRGBAImage rasterizes pic through image_utils and writes it to path
// as a PNG, appending the .png extension if path doesn't already name a
// .png or .jpeg file.
func writeRGBAImage(pic image.Image, path string) error {
	path = outputFilename(path)
	rgba := image_utils.ToRGBA(pic)
	f, e := os.Create(path)
	if e != nil {
		return fmt.Errorf("error creating output file %s: %w", path, e)
	}
	defer f.Close()
	e = png.Encode(f, rgba)
	if e != nil {
		return fmt.Errorf("error writing image to %s: %w", path, e)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "generate_map",
		Usage: "Generates a procedural maze, cave, or dungeon map.",
		UsageText: "generate_map [global options] width height num_rooms " +
			"dead_end_removal_ratio output_path",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "cave", Aliases: []string{"c"},
				Usage: "Produce a cave, ignoring maze-method flags."},
			&cli.BoolFlag{Name: "wilson", Aliases: []string{"w"},
				Usage: "Use Wilson's algorithm."},
			&cli.BoolFlag{Name: "prim", Aliases: []string{"p"},
				Usage: "Use randomized Prim's algorithm."},
			&cli.Float64Flag{Name: "backtrack", Aliases: []string{"b"},
				Usage: "Use the biased recursive backtracker with the given straightness."},
			&cli.BoolFlag{Name: "wrap", Count: &wrapOccurrences, Usage: "Repeat" +
				" 0-2 times: once for cylinder wrap, twice for torus wrap."},
			&cli.IntFlag{Name: "image", Aliases: []string{"i"},
				Usage: "Render as a PNG image with this many pixels per tile (min 10)."},
			&cli.BoolFlag{Name: "outside", Aliases: []string{"o"},
				Usage: "Allow map-edge exits (ignored when wrapping is enabled)."},
			&cli.Int64Flag{Name: "seed",
				Usage: "Random seed to use; if unset or non-positive, derived from the current time."},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

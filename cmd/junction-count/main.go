package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ironsheep/junction-count/internal/imaging"
	"github.com/ironsheep/junction-count/internal/junction"
	"github.com/ironsheep/junction-count/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = "Usage: junction-count [--annotate <out.png>] <image>\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	switch args[0] {
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "junction-count %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	case "--help", "-h", "help":
		printHelp(stdout)
		return 0
	}

	log := newLogger(stderr)

	if args[0] == "--mcp" {
		log.Debug().Str("version", Version).Str("commit", GitCommit).Msg("starting MCP server")
		if err := server.New(server.WithLogger(log)).Serve(stdin, stdout); err != nil {
			log.Error().Err(err).Msg("server error")
			return 1
		}
		return 0
	}

	var annotatePath string
	if args[0] == "--annotate" {
		if len(args) < 3 {
			fmt.Fprint(stderr, usage)
			return 1
		}
		annotatePath, args = args[1], args[2:]
	}
	imagePath := args[0]

	count, err := countFile(imagePath, annotatePath, log)
	if err != nil {
		log.Error().Err(err).Str("path", imagePath).Msg("cannot count intersections")
		return 1
	}

	fmt.Fprintln(stdout, count)
	return 0
}

// countFile counts the intersections in the image at path and, when
// annotatePath is set, writes a marked-up copy there.
func countFile(path, annotatePath string, log zerolog.Logger) (int, error) {
	cache := imaging.NewImageCache()
	gray, err := cache.LoadGray(path)
	if err != nil {
		return 0, err
	}

	grid, err := junction.NewBinaryGrid(gray)
	if err != nil {
		return 0, err
	}
	result := junction.NewScanner(grid, junction.WithLogger(log)).Scan()

	if annotatePath != "" {
		src, err := cache.Load(path)
		if err != nil {
			return 0, err
		}
		points := junction.ImagePoints(result.Intersections(), src.Bounds().Min)
		if err := imaging.SaveAnnotation(src, points, imaging.AnnotateOptions{}, annotatePath); err != nil {
			return 0, err
		}
		log.Info().Str("path", annotatePath).Int("markers", len(points)).Msg("wrote annotation")
	}

	return result.Count, nil
}

// newLogger builds the stderr logger; stdout is reserved for the count and
// for the MCP protocol.
func newLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("JUNCTION_LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	out := w
	if os.Getenv("JUNCTION_LOG_FORMAT") != "json" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "junction-count - count intersections in a line drawing")
	fmt.Fprintln(w)
	fmt.Fprint(w, usage)
	fmt.Fprintln(w, "       junction-count --mcp")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Prints the number of points where more than two strokes meet.")
	fmt.Fprintln(w, "Pixels with intensity 0 are background; any other intensity is stroke.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --annotate <out.png>  Also write the image with each intersection marked")
	fmt.Fprintln(w, "  --mcp                 Serve the detector as MCP tools over stdin/stdout")
	fmt.Fprintln(w, "  --version, -v         Print version information")
	fmt.Fprintln(w, "  --help, -h            Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  JUNCTION_LOG_LEVEL=debug   Log level (debug, info, warn, error). Default warn")
	fmt.Fprintln(w, "  JUNCTION_LOG_FORMAT=json   Emit JSON log lines instead of console text")
}

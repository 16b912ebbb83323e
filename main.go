package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"

	"github.com/FitrahHaque/Huffman-Engine/engine"
	"github.com/FitrahHaque/Huffman-Engine/logger"
	"github.com/FitrahHaque/Huffman-Engine/server"
)

var Commands = [...]string{"compress", "decompress", "benchmark", "generate", "serve", "help"}

var application = os.Args[0]

func main() {
	flag.CommandLine = flag.NewFlagSet(application, flag.ExitOnError)
	compressCmd := flag.Bool(Commands[0], false, "Compress file(s)")
	decompressCmd := flag.Bool(Commands[1], false, "Decompress file(s)")
	benchmarkCmd := flag.Bool(Commands[2], false, "Print a compression table for file(s)")
	generateCmd := flag.Bool(Commands[3], false, "Generate benchmark fixtures")
	serveCmd := flag.Bool(Commands[4], false, "Serve the HTTP API")
	helpCmd := flag.Bool(Commands[5], false, "Help")

	if len(os.Args) == 1 {
		fail("Please provide commands")
	}
	commandArgs := findIntersection(
		[]string{
			"--compress",
			"--decompress",
			"--benchmark",
			"--generate",
			"--serve",
		},
		os.Args[1:],
	)
	flag.CommandLine.Parse(commandArgs)
	rest := withoutCommands(os.Args[1:], commandArgs)

	switch countTrue([]bool{*compressCmd, *decompressCmd, *benchmarkCmd, *generateCmd, *serveCmd}) {
	case 0:
		flag.CommandLine.Parse(findIntersection([]string{"--help"}, os.Args[1:]))
		if *helpCmd {
			usage()
			return
		}
		fmt.Println("No command is selected. Compression by default")
		*compressCmd = true
	case 1:
	default:
		fail("Specify a single command")
	}

	log := logger.New(os.Stderr)
	var err error
	switch {
	case *compressCmd:
		err = runCompress(log, rest)
	case *decompressCmd:
		err = runDecompress(log, rest)
	case *benchmarkCmd:
		err = runBenchmark(rest)
	case *generateCmd:
		err = runGenerate(rest)
	case *serveCmd:
		err = runServe(log, rest)
	}
	if err != nil {
		fail(err.Error())
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", application)
	fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
	fmt.Fprintf(os.Stderr, "Flag:\n")
	flag.PrintDefaults()
}

func commandFlagSet(name, operands string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --%s [OPTIONS] %s\n", application, name, operands)
		fmt.Fprintf(os.Stderr, "Flag:\n")
		fs.PrintDefaults()
	}
	return fs
}

func runCompress(log logger.Logger, args []string) error {
	compressFS := commandFlagSet("compress", "<file(s)>")
	deleteAfterCompress := compressFS.Bool("delete", false, "Delete file after compression")
	outputFileExtension := compressFS.String("outfileext", engine.DefaultExtension, "File extension used for the result")
	quiet := compressFS.Bool("quiet", false, "Hide the progress bar")
	compressFS.Parse(args)

	files, err := inputFiles(compressFS.Args(), "compression")
	if err != nil {
		return err
	}
	fmt.Println("Compressing...")
	all, err := engine.New(log, progressWriter(*quiet)).CompressFiles(files, *outputFileExtension)
	for _, stats := range all {
		fmt.Printf("%s\n", color.New(color.Bold).Sprint(stats.File))
		fmt.Printf("Original size (in bytes): %v\n", stats.Original)
		fmt.Printf("Compressed size (in bytes): %v\n", stats.Compressed)
		fmt.Printf("Compression ratio: %.2f%%\n", stats.Ratio())
	}
	if err != nil {
		return err
	}
	if *deleteAfterCompress {
		return deleteFiles(files)
	}
	return nil
}

func runDecompress(log logger.Logger, args []string) error {
	decompressFS := commandFlagSet("decompress", "<file(s)>")
	inputFileExtension := decompressFS.String("outfileext", engine.DefaultExtension, "File extension stripped from the input name")
	quiet := decompressFS.Bool("quiet", false, "Hide the progress bar")
	decompressFS.Parse(args)

	files, err := inputFiles(decompressFS.Args(), "decompression")
	if err != nil {
		return err
	}
	fmt.Println("Decompressing...")
	return engine.New(log, progressWriter(*quiet)).DecompressFiles(files, *inputFileExtension)
}

func runBenchmark(args []string) error {
	benchmarkFS := commandFlagSet("benchmark", "<file(s)>")
	verbose := benchmarkFS.Bool("verbose", false, "Log every compression step")
	benchmarkFS.Parse(args)

	files, err := inputFiles(benchmarkFS.Args(), "benchmark")
	if err != nil {
		return err
	}
	log := logger.Nop()
	if *verbose {
		log = logger.New(os.Stderr)
	}
	fmt.Printf("Executing benchmark on %d file(s):\n\n", len(files))
	if _, err = engine.New(log, nil).Benchmark(files, os.Stdout); err != nil {
		return err
	}
	color.Green("\nLossless compression verified.")
	return nil
}

func runGenerate(args []string) error {
	generateFS := commandFlagSet("generate", "")
	dir := generateFS.String("dir", "fixtures", "Directory for the generated files")
	size := generateFS.Int("size", 20000, "Number of symbols per generated file")
	seed := generateFS.Uint64("seed", 1, "Random seed")
	generateFS.Parse(args)

	files, err := engine.Generate(*dir, *size, *seed)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

func runServe(log logger.Logger, args []string) error {
	serveFS := commandFlagSet("serve", "")
	addr := serveFS.String("addr", ":8080", "Listen address")
	maxBody := serveFS.Int64("maxbody", server.DefaultMaxBody, "Maximum request body in bytes")
	serveFS.Parse(args)

	gin.SetMode(gin.ReleaseMode)
	r := server.NewRouter(server.NewHandler(log, *maxBody))
	log.Infof("starting server at %s", *addr)
	return r.Run(*addr)
}

// inputFiles accepts files as separate arguments or comma separated, and
// checks that each one exists.
func inputFiles(args []string, purpose string) ([]string, error) {
	var files []string
	for _, arg := range args {
		files = append(files, strings.Split(arg, ",")...)
	}
	trimSpace(files)
	files = dropEmpty(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("No file provided for %s", purpose)
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			return nil, fmt.Errorf("Could not open the provided file %s", f)
		}
	}
	return files, nil
}

func progressWriter(quiet bool) io.Writer {
	if quiet {
		return nil
	}
	return os.Stderr
}

func fail(msg string) {
	color.New(color.FgRed).Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func countTrue(commands []bool) int {
	count := 0
	for _, c := range commands {
		if c {
			count++
		}
	}
	return count
}

func findIntersection(commandList, argList []string) []string {
	set := make(map[string]struct{}, len(commandList))
	for _, c := range commandList {
		set[c] = struct{}{}
	}
	var out []string
	for _, arg := range argList {
		if _, ok := set[arg]; ok {
			out = append(out, arg)
		}
	}
	return out
}

func withoutCommands(argList, commands []string) []string {
	set := make(map[string]struct{}, len(commands))
	for _, c := range commands {
		set[c] = struct{}{}
	}
	var out []string
	for _, arg := range argList {
		if _, ok := set[arg]; !ok {
			out = append(out, arg)
		}
	}
	return out
}

func trimSpace(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}

func dropEmpty(s []string) []string {
	out := s[:0]
	for _, v := range s {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func deleteFiles(files []string) error {
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	md2post "github.com/alnah/go-md2post"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput        = errors.New("failed to read input")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrInvalidExtension = errors.New("file must have .md, .markdown, or .txt extension")
	ErrBatchFlags       = errors.New("--out and --html apply to single-input mode only")
)

// run resolves configuration, then converts stdin or the given input files.
func run(flags cliFlags, inputs []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	flags = mergeConfig(flags, cfg)

	if flags.target == "" {
		flags.target = string(md2post.TargetStyledText)
	}
	target, err := md2post.ParseTarget(flags.target)
	if err != nil {
		return err
	}

	if len(inputs) <= 1 {
		return convertOne(flags, target, inputs, stdin, stdout)
	}
	if flags.outPath != "" || flags.htmlPath != "" {
		return ErrBatchFlags
	}
	return convertBatch(flags, target, inputs)
}

// convertOne handles stdin or a single input file.
func convertOne(flags cliFlags, target md2post.Target, inputs []string, stdin io.Reader, stdout io.Writer) error {
	var (
		content string
		err     error
	)
	if len(inputs) == 0 {
		content, err = readAll(stdin)
	} else {
		content, err = readInputFile(inputs[0])
	}
	if err != nil {
		return err
	}

	svc := md2post.New(md2post.WithSmartQuotes(flags.smartQuotes))
	result, err := convert(svc, target, flags, content)
	if err != nil {
		return err
	}

	if flags.verbose {
		for _, note := range result.Notes {
			fmt.Fprintln(os.Stderr, "note:", note)
		}
	}

	if flags.htmlPath != "" {
		if err := writeFile(flags.htmlPath, result.HTML); err != nil {
			return err
		}
	}
	if flags.outPath != "" {
		return writeFile(flags.outPath, result.Markdown)
	}
	_, err = fmt.Fprintln(stdout, result.Markdown)
	return err
}

// convertBatch processes input files concurrently using a service pool.
// Outputs land next to each source as <stem>.post.md and <stem>.post.html.
func convertBatch(flags cliFlags, target md2post.Target, inputs []string) error {
	pool := md2post.NewServicePool(
		md2post.ResolvePoolSize(flags.workers),
		md2post.WithSmartQuotes(flags.smartQuotes),
	)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, input := range inputs {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			err := convertFile(svc, target, flags, input)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", input, err))
			} else if flags.verbose {
				fmt.Fprintln(os.Stderr, "converted", input)
			}
		}(input)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// convertFile converts one source file and writes its derived outputs.
func convertFile(svc *md2post.Service, target md2post.Target, flags cliFlags, input string) error {
	content, err := readInputFile(input)
	if err != nil {
		return err
	}

	result, err := convert(svc, target, flags, content)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(input, filepath.Ext(input))
	if err := writeFile(stem+".post.md", result.Markdown); err != nil {
		return err
	}
	return writeFile(stem+".post.html", result.HTML)
}

// convert applies the optional chat-syntax preprocessor, then the preset.
func convert(svc *md2post.Service, target md2post.Target, flags cliFlags, content string) (md2post.Result, error) {
	content = md2post.Normalize(content, flags.chatSyntax)
	return svc.ApplyPreset(context.Background(), md2post.Input{
		Markdown: content,
		Target:   target,
	})
}

// readInputFile validates the extension and reads the file.
func readInputFile(path string) (string, error) {
	switch filepath.Ext(path) {
	case ".md", ".markdown", ".txt":
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// Walks a source tree, asks Gemini for a per-file summary and writes
// the result to backend-summary.md. Developer tooling, not part of the
// API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

const summaryModel = "gemini-2.5-flash"

var ignoreDirs = map[string]bool{
	"__pycache__":  true,
	"venv":         true,
	"node_modules": true,
	".git":         true,
	"vendor":       true,
}

var codeExtensions = map[string]bool{
	".go": true,
	".py": true,
	".js": true,
	".ts": true,
}

func main() {
	base := flag.String("path", ".", "backend folder to summarize")
	out := flag.String("out", "backend-summary.md", "output file")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	files, err := collectCodeFiles(*base)
	if err != nil {
		log.Fatalf("Failed to walk %s: %v", *base, err)
	}
	log.Printf("Found %d code files. Summarizing...", len(files))

	output, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer output.Close()

	fmt.Fprintf(output, "# Backend Summary for %s\n\n", *base)
	for _, file := range files {
		fmt.Fprintf(output, "%s\n\n", summarizeFile(ctx, client, file))
	}

	log.Printf("Summary written to %s", *out)
}

func collectCodeFiles(base string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if ignoreDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if codeExtensions[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func summarizeFile(ctx context.Context, client *genai.Client, path string) string {
	header := fmt.Sprintf("## %s\nPath: `%s`", filepath.Base(path), path)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("%s\n\nError reading file: %v\n", header, err)
	}

	prompt := strings.Join([]string{
		"Summarize this code file. Include: purpose, key functions/classes,",
		"and how it fits into a backend system:",
		"",
		string(content),
	}, "\n")

	result, err := client.Models.GenerateContent(ctx, summaryModel, genai.Text(prompt), nil)
	if err != nil {
		return fmt.Sprintf("%s\n\nError summarizing: %v\n", header, err)
	}

	return fmt.Sprintf("%s\n\n%s\n", header, result.Text())
}

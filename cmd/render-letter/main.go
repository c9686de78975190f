package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ymorimoto/mirai-letter/internal/letter"
	"github.com/ymorimoto/mirai-letter/internal/letterdoc"
	"github.com/ymorimoto/mirai-letter/internal/lettergen"
	"github.com/ymorimoto/mirai-letter/internal/projection"
)

func main() {
	inputPath := flag.String("input", "", "Path to letter input JSON")
	outputPath := flag.String("output", "", "Path to write the rendered memo (defaults to stdout)")
	format := flag.String("format", "md", "Output format: md, html, or pdf")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	var in letter.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		log.Fatalf("decode input JSON: %v", err)
	}
	if err := in.Validate(); err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	proj := projection.Compute(in)
	content := lettergen.BuildContent(in, proj)
	memo := letterdoc.BuildMemo(in, proj, content)

	switch *format {
	case "md":
		if err := writeOut(*outputPath, []byte(memo)); err != nil {
			log.Fatalf("write markdown: %v", err)
		}
	case "html":
		html, err := letterdoc.RenderHTML(memo)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := writeOut(*outputPath, []byte(html)); err != nil {
			log.Fatalf("write html: %v", err)
		}
	case "pdf":
		if *outputPath == "" {
			log.Fatal("pdf output requires -output")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		pdf, err := letterdoc.NewPDFRenderer().Render(ctx, memo)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*outputPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
	default:
		log.Fatalf("unknown format %q (want md, html, or pdf)", *format)
	}
}

func writeOut(path string, data []byte) error {
	if path == "" {
		_, err := fmt.Print(string(data))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

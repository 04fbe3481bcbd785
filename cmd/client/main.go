package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrianliechti/docread/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")

	fileFlag := flag.String("file", "", "document to upload")
	documentFlag := flag.String("document-url", "", "document url to submit instead of uploading")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	var result *client.Recognition
	var err error

	switch {
	case *documentFlag != "":
		result, err = c.Recognitions.New(ctx, client.RecognitionRequest{
			URL: *documentFlag,
		})

	case *fileFlag != "":
		file, ferr := os.Open(*fileFlag)

		if ferr != nil {
			fatal(ferr)
		}

		defer file.Close()

		result, err = c.Recognitions.New(ctx, client.RecognitionRequest{
			Name:   filepath.Base(*fileFlag),
			Reader: file,
		})

	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fatal(err)
	}

	fmt.Fprintf(os.Stderr, "%s: %d page(s), %d output file(s)\n", result.ID, result.Pages, len(result.Files))
	fmt.Println(result.Text)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

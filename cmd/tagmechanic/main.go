// Copyright 2026 The tagmechanic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command tagmechanic deletes or modifies tags in (X)HTML files.
//
// Usage:
//
//	tagmechanic [flags] [file ...]
//
// The criterion is given either as a YAML file with -config
// or with the -action, -tag, -attr, -value, -regex, -new-tag, -new-attrs,
// and -copy flags.
// With no files, tagmechanic reads standard input.
// Rewritten documents are written to standard output in argument order
// unless -w is given, in which case files are rewritten in place.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	tagmechanic "github.com/Acidburn0zzz/tagmechanic-sigil-plugin"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

type options struct {
	criterion *tagmechanic.Criterion
	inPlace   bool
	list      bool
	enc       encoding.Encoding // nil for UTF-8
	jobs      int
	logger    *slog.Logger
}

// document is a single input and the outcome of processing it.
type document struct {
	name    string
	path    string // empty for standard input
	output  string
	result  *tagmechanic.Result
	matches []tagmechanic.Match
}

func runWithArgs(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tagmechanic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML criterion `file`")
	action := fs.String("action", "", "action to take: modify or delete")
	tag := fs.String("tag", "", "tag `name` to match")
	attr := fs.String("attr", "", "attribute `name` to match (empty matches only tags without attributes)")
	value := fs.String("value", "", "attribute value to match")
	useRegexp := fs.Bool("regex", false, "match -value as a regular expression anchored at the start")
	newTag := fs.String("new-tag", "", "replacement tag `name` for modify")
	newAttrs := fs.String("new-attrs", "", "replacement attributes for modify, like 'class=\"x\"'")
	copyAttrs := fs.Bool("copy", false, "keep the original attributes when modifying")
	inPlace := fs.Bool("w", false, "rewrite files in place")
	list := fs.Bool("list", false, "list matching tags without rewriting")
	charset := fs.String("charset", "", "character `encoding` of the input (default UTF-8)")
	jobs := fs.Int("j", runtime.GOMAXPROCS(0), "number of files to process concurrently")
	verbose := fs.Bool("v", false, "log debugging information")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tagmechanic [flags] [file ...]\n\n")
		fmt.Fprintln(stderr, "Deletes or modifies the tags selected by a criterion.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	opts := &options{
		inPlace: *inPlace,
		list:    *list,
		jobs:    *jobs,
		logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	var err error
	if *configPath != "" {
		opts.criterion, err = tagmechanic.LoadCriterionFile(*configPath)
	} else {
		opts.criterion, err = criterionFromFlags(*action, *tag, *attr, *value, *useRegexp, *newTag, *newAttrs, *copyAttrs)
	}
	if err != nil {
		fmt.Fprintf(stderr, "tagmechanic: %v\n", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		return 1
	}
	if opts.enc, err = lookupEncoding(*charset); err != nil {
		fmt.Fprintf(stderr, "tagmechanic: %v\n", err)
		return 2
	}
	if opts.inPlace && fs.NArg() == 0 {
		fmt.Fprintln(stderr, "tagmechanic: -w requires at least one file")
		return 2
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}

	docs, err := processAll(ctx, opts, fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "tagmechanic: %v\n", err)
		return 1
	}
	if err := report(stdout, stderr, opts, docs); err != nil {
		fmt.Fprintf(stderr, "tagmechanic: %v\n", err)
		return 1
	}
	return 0
}

var errUsage = errors.New("usage error")

func criterionFromFlags(action, tag, attr, value string, useRegexp bool, newTag, newAttrs string, copyAttrs bool) (*tagmechanic.Criterion, error) {
	if action == "" || tag == "" {
		return nil, fmt.Errorf("either -config or both -action and -tag are required: %w", errUsage)
	}
	c := &tagmechanic.Criterion{
		Tag:       tag,
		NewTag:    newTag,
		NewAttrs:  newAttrs,
		CopyAttrs: copyAttrs,
	}
	if err := c.Action.UnmarshalText([]byte(action)); err != nil {
		return nil, fmt.Errorf("-action: %v: %w", err, errUsage)
	}
	if attr != "" {
		c.Attr = &tagmechanic.AttrMatch{
			Name:   attr,
			Value:  value,
			Method: tagmechanic.Literal,
		}
		if useRegexp {
			c.Attr.Method = tagmechanic.Regex
		}
	} else if value != "" {
		return nil, fmt.Errorf("-value given without -attr: %w", errUsage)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("-charset %q: %w", name, err)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// processAll rewrites each input concurrently.
// Every document gets its own rewrite state,
// so no synchronization is needed beyond collecting the results.
func processAll(ctx context.Context, opts *options, paths []string, stdin io.Reader) ([]*document, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		doc := &document{name: "<stdin>"}
		if err := process(opts, doc, data); err != nil {
			return nil, err
		}
		return []*document{doc}, nil
	}

	docs := make([]*document, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)
	for i, path := range paths {
		doc := &document{name: path, path: path}
		docs[i] = doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(doc.path)
			if err != nil {
				return err
			}
			if err := process(opts, doc, data); err != nil {
				return err
			}
			if opts.inPlace && !opts.list && doc.result.Occurrences > 0 {
				return writeInPlace(opts, doc)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func process(opts *options, doc *document, data []byte) error {
	text := string(data)
	if opts.enc != nil {
		var err error
		text, err = opts.enc.NewDecoder().String(text)
		if err != nil {
			return fmt.Errorf("%s: decode: %w", doc.name, err)
		}
	}

	if opts.list {
		matches, err := tagmechanic.Find(text, opts.criterion)
		if err != nil {
			return fmt.Errorf("%s: %w", doc.name, err)
		}
		doc.matches = matches
		return nil
	}

	r := &tagmechanic.Rewriter{Logger: opts.logger.With(slog.String("file", doc.name))}
	result, err := r.Rewrite(text, opts.criterion)
	if err != nil {
		return fmt.Errorf("%s: %w", doc.name, err)
	}
	doc.result = result
	doc.output = result.Output
	if opts.enc != nil {
		doc.output, err = opts.enc.NewEncoder().String(doc.output)
		if err != nil {
			return fmt.Errorf("%s: encode: %w", doc.name, err)
		}
	}
	return nil
}

func writeInPlace(opts *options, doc *document) error {
	info, err := os.Stat(doc.path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(doc.path, []byte(doc.output), info.Mode().Perm()); err != nil {
		return err
	}
	opts.logger.Debug("Rewrote file", slog.String("file", doc.name), slog.Int("occurrences", doc.result.Occurrences))
	return nil
}

func report(stdout, stderr io.Writer, opts *options, docs []*document) error {
	for _, doc := range docs {
		if opts.list {
			for _, m := range doc.matches {
				path := strings.Join(m.Path, "/")
				if _, err := fmt.Fprintf(stdout, "%s:%d: %v\t/%s\n", doc.name, m.Offset, m.Tag, path); err != nil {
					return err
				}
			}
			continue
		}
		if !opts.inPlace {
			if _, err := io.WriteString(stdout, doc.output); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(stderr, "%s: %d occurrence(s)\n", doc.name, doc.result.Occurrences); err != nil {
			return err
		}
	}
	return nil
}

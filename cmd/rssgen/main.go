// Command rssgen renders a YAML feed definition as an RSS 2.0 document.
//
// Usage:
//
//	rssgen [flags] [definition.yaml]
//
// The definition is read from standard input when no file or "-" is given.
// Settings can also come from the environment, see internal/config.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rsskit/rss"
	"github.com/rsskit/rss/feedfile"
	"github.com/rsskit/rss/internal/config"
	"github.com/rsskit/rss/internal/logger"
	"github.com/rsskit/rss/logging"
	"github.com/rsskit/rss/xml"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "rssgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("rssgen", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(flagSet.Output(), "Usage: rssgen [options] [definition.yaml]\n")
		fmt.Fprintln(flagSet.Output(), "Where options can be any of:")
		flagSet.PrintDefaults()
	}

	envFile := flagSet.String("env", "", "An optional .env file")
	output := flagSet.String("o", "", "Write the document to this file instead of stdout")
	selectExpr := flagSet.String("select", "", "JMESPath expression selecting the items to publish")
	header := flagSet.Bool("header", false, "Prefix the document with the XML declaration")
	normalizeDates := flagSet.Bool("normalize-dates", false, "Rewrite parseable dates as RFC 822 dates")
	noValidate := flagSet.Bool("no-validate", false, "Render even if mandatory fields are empty")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() > 1 {
		flagSet.Usage()
		return fmt.Errorf("expected at most one definition, got %d", flagSet.NArg())
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "header":
			cfg.XMLHeader = *header
		case "normalize-dates":
			cfg.NormalizeDates = *normalizeDates
		}
	})

	log, err := logger.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	name := flagSet.Arg(0)
	in := stdin
	if len(name) != 0 && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	} else {
		name = "stdin"
	}

	entry := log.WithField("definition", name)
	doc, err := feedfile.Decode(in, func(o *feedfile.Options) {
		o.Logger = logging.NewLogrus(entry)
		o.Select = *selectExpr
		o.Generator = cfg.Generator
		o.NormalizeDates = cfg.NormalizeDates
	})
	if err != nil {
		return err
	}

	if !*noValidate {
		if err := doc.Validate(); err != nil {
			return fmt.Errorf("invalid feed: %w", err)
		}
	}

	if len(*output) == 0 {
		err = write(stdout, doc, cfg.XMLHeader)
	} else {
		err = writeFile(*output, doc, cfg.XMLHeader)
	}
	if err != nil {
		return fmt.Errorf("write feed: %w", err)
	}

	entry.WithFields(logrus.Fields{
		"items":  len(doc.Channel.Items()),
		"output": outputName(*output),
	}).Info("Feed written")
	return nil
}

func write(w io.Writer, doc *rss.RSS, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := bw.WriteString(xml.Header); err != nil {
			return err
		}
	}
	if _, err := doc.WriteTo(bw); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func writeFile(path string, doc *rss.RSS, header bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeClose(f, doc, header)
}

// writeClose writes doc to wc and closes it. The first error wins.
func writeClose(wc io.WriteCloser, doc *rss.RSS, header bool) error {
	if err := write(wc, doc, header); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func outputName(path string) string {
	if len(path) == 0 {
		return "stdout"
	}
	return path
}

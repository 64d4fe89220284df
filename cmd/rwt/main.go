package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pzl/rwt"
)

const usage = `usage: rwt [flags] issue [payload-json]
       rwt [flags] verify [token]

reads the payload or token from stdin when the argument is omitted or "-"`

func main() {
	cfg := parseCLI()

	switch cfg.cmd {
	case "issue":
		must(issue(cfg))
	case "verify":
		must(verify(cfg))
	default:
		exit(usage)
	}
}

func issue(cfg config) error {
	payload, err := readInput(cfg.arg)
	if err != nil {
		return err
	}

	cfg.log.WithField("bytes", len(payload)).Debug("issuing token")
	ts, err := rwt.Issue(json.RawMessage(payload), cfg.secret)
	if err != nil {
		return err
	}
	fmt.Println(ts)
	return nil
}

func verify(cfg config) error {
	in, err := readInput(cfg.arg)
	if err != nil {
		return err
	}
	ts := strings.TrimSpace(string(in))
	if ts == "" {
		return fmt.Errorf("no token provided")
	}

	payload, err := rwt.Verify[json.RawMessage](ts, cfg.secret)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", payload)
	return nil
}

func readInput(arg string) ([]byte, error) {
	if arg != "" && arg != "-" {
		return []byte(arg), nil
	}
	buf, err := io.ReadAll(os.Stdin)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf, nil
}

func must(e error) {
	if e != nil {
		exit(e.Error())
	}
}

func exit(s string) {
	fmt.Fprintln(os.Stderr, s)
	os.Exit(1)
}

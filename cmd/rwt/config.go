package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/pzl/rwt/internal/logger"
	"github.com/pzl/rwt/internal/secret"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type config struct {
	cmd    string
	arg    string
	secret []byte
	log    *logrus.Logger
}

func parseCLI() config {
	pflag.StringP("secret", "s", "", "token signing secret")
	pflag.StringP("secret-hex", "x", "", "token signing secret, hex encoded (e.g. mksecret output)")
	cfile := pflag.StringP("config", "c", "", "Config file to read values from")
	cdir := pflag.StringP("conf-dir", "d", "", "Search this directory for config files")
	jsonLog := pflag.BoolP("json", "j", false, "output logs in JSON format")
	v := pflag.CountP("verbose", "v", "turn on verbose output. Can use multiple times")
	pflag.Parse()

	log := logger.New(*jsonLog)
	logger.SetVerbosity(log, *v)

	k := koanf.New(".")
	searchDir(log, k, "/etc/rwt/")
	searchDir(log, k, ".")
	if cd := os.Getenv("CONFIG_DIR"); cd != "" {
		searchDir(log, k, cd) // search $CONFIG_DIR if passed in env
	}
	if cdir != nil && *cdir != "" {
		searchDir(log, k, *cdir) // load --conf-dir if passed as a flag
	}
	if cfile != nil && *cfile != "" {
		// load explicit config file if passed as -c
		parser, err := determineParser(*cfile)
		must(err)
		must(k.Load(file.Provider(*cfile), parser))
	}

	// load environment next
	must(k.Load(env.Provider("RWT_", ".", func(key string) string {
		key = strings.TrimPrefix(key, "RWT_")
		return strings.ReplaceAll(strings.ToLower(key), "_", "-")
	}), nil))

	// load CLI flags last
	must(k.Load(posflag.Provider(pflag.CommandLine, ".", k), nil))

	var cfg struct {
		Secret    string `koanf:"secret"`
		SecretHex string `koanf:"secret-hex"`
		JSON      bool   `koanf:"json"`
	}
	must(k.Unmarshal("", &cfg))
	logger.SetFormat(log, cfg.JSON)

	sec := []byte(cfg.Secret)
	if cfg.SecretHex != "" {
		b, err := hex.DecodeString(cfg.SecretHex)
		must(err)
		sec = b
	}
	if len(sec) == 0 {
		log.Warn("no signing secret configured. Generating a random one; tokens will not verify anywhere else")
		b, err := secret.Random(secret.KeyLength)
		must(err)
		sec = b
	}

	args := pflag.Args()
	var cmd, arg string
	if len(args) > 0 {
		cmd = args[0]
	}
	if len(args) > 1 {
		arg = args[1]
	}

	return config{
		cmd:    cmd,
		arg:    arg,
		secret: sec,
		log:    log,
	}
}

func searchDir(log *logrus.Logger, k *koanf.Koanf, dir string) {
	exts := map[string]struct{}{
		".js":   {},
		".json": {},
		".toml": {},
		".tml":  {},
		".yaml": {},
		".yml":  {},
		".conf": {},
		".cnf":  {},
		".ini":  {},
	}

	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error { //nolint
		if err != nil {
			if !os.IsNotExist(err) {
				log.WithError(err).Error("unable to search config dir")
			}
			return err
		}

		l := log.WithFields(logrus.Fields{
			"path":  path,
			"name":  info.Name(),
			"isdir": info.IsDir(),
		})
		l.Trace("searching config dir..")

		if dir == info.Name() {
			return nil // top-level dir
		}
		if info.IsDir() {
			l.Trace("skipping, is directory")
			return filepath.SkipDir
		}

		filename := info.Name()
		li := strings.LastIndex(filename, ".")
		if li < 1 {
			return nil // hidden, or no extension
		}
		if strings.ToLower(filename[:li]) != "rwt" {
			return nil
		}
		ext := filename[li:]
		if _, ok := exts[ext]; ok {
			parser, err := determineParser(filename)
			if err != nil {
				l.WithError(err).Error("unable to determine parser for file")
				return err
			}
			log.WithField("file", path).Debug("Loading config file")
			return k.Load(file.Provider(path), parser)
		}
		return nil
	})
}

func determineParser(filename string) (koanf.Parser, error) {
	j := json.Parser()
	t := toml.Parser()
	y := yaml.Parser()

	exts := map[string]koanf.Parser{
		".js":   j,
		".json": j,
		".toml": t,
		".tml":  t,
		".yaml": y,
		".yml":  y,
		".conf": t, // process confs as inis... and inis as tomls
		".cnf":  t,
		".ini":  t,
	}

	ext := filepath.Ext(filename)
	if p, ok := exts[ext]; ok {
		return p, nil
	}

	// attempt to determine from file contents

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, 50)
	if _, err = io.ReadFull(f, buf); err != nil {
		return nil, err
	}

	buf = bytes.TrimSpace(buf)
	// best guesses by syntax
	if buf[0] == '{' {
		return j, nil
	}
	if buf[0] == '[' {
		return t, nil
	}

	// looks like a yaml list somewhere in the file
	yamlList := regexp.MustCompile(`(?im)^\s*- \w+`)
	if yamlList.Match(buf) {
		return y, nil
	}

	// look at  key: value  vs key =
	eql := regexp.MustCompile(`(?im)^\w+\s*([=:])\s*`)
	if match := eql.FindSubmatch(buf); match != nil {
		switch match[1][0] {
		case ':':
			return y, nil
		case '=':
			return t, nil
		}
	}

	return nil, fmt.Errorf("no provider found for file %s", filename)
}

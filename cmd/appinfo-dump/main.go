// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/go-appinfo"
)

type cmdFlags struct {
	flagset *flag.FlagSet
	file    string
	format  string
	app     uint
	indent  bool
	strict  bool
	verify  bool
}

func newCmdFlags() *cmdFlags {
	f := &cmdFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"path to the appinfo.vdf file to decode",
	)
	f.flagset.StringVar(
		&f.format,
		"format",
		"json",
		"output format: json or cbor",
	)
	f.flagset.UintVar(
		&f.app,
		"app",
		0,
		"dump only the entry with this app ID",
	)
	f.flagset.BoolVar(&f.indent, "indent", false, "pretty-print JSON output")
	f.flagset.BoolVar(
		&f.strict,
		"strict",
		false,
		"fail on truncated trailing entries and unsupported node types",
	)
	f.flagset.BoolVar(
		&f.verify,
		"verify",
		false,
		"report per-entry digest verification instead of dumping",
	)
	return f
}

func main() {
	f := newCmdFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.file == "" {
		fmt.Println("you must specify a file to decode with -file")
		os.Exit(1)
	}
	data, err := os.ReadFile(f.file)
	if err != nil {
		fmt.Printf("failed to read %s: %s\n", f.file, err)
		os.Exit(1)
	}
	opts := []appinfo.DecodeOptionFunc{}
	if f.strict {
		opts = append(
			opts,
			appinfo.WithStrict(true),
			appinfo.WithStrictTypes(true),
		)
	}
	doc, err := appinfo.Decode(data, opts...)
	if err != nil {
		fmt.Printf("failed to decode %s: %s\n", f.file, err)
		os.Exit(1)
	}
	if f.verify {
		failures := 0
		for i := range doc.Entries {
			entry := &doc.Entries[i]
			status := "ok"
			if !entry.VerifyDigest() {
				status = "MISMATCH"
				failures++
			}
			fmt.Printf("%d %s %s\n", entry.AppID, entry.Digest, status)
		}
		if failures > 0 {
			fmt.Printf("%d of %d entries failed digest verification\n", failures, len(doc.Entries))
			os.Exit(1)
		}
		return
	}
	var out any = doc
	if f.app > 0 {
		entry, ok := doc.GetEntry(uint32(f.app))
		if !ok {
			fmt.Printf("no entry with app ID %d\n", f.app)
			os.Exit(1)
		}
		out = entry
	}
	switch f.format {
	case "json":
		var encoded []byte
		if f.indent {
			encoded, err = json.MarshalIndent(out, "", "  ")
		} else {
			encoded, err = json.Marshal(out)
		}
		if err != nil {
			fmt.Printf("failed to encode JSON: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(string(encoded))
	case "cbor":
		var encoded []byte
		switch v := out.(type) {
		case *appinfo.Document:
			encoded, err = v.MarshalCBOR()
		case *appinfo.Entry:
			encoded, err = v.MarshalCBOR()
		}
		if err != nil {
			fmt.Printf("failed to encode CBOR: %s\n", err)
			os.Exit(1)
		}
		if _, err := os.Stdout.Write(encoded); err != nil {
			fmt.Printf("failed to write output: %s\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("unknown output format %q\n", f.format)
		os.Exit(1)
	}
}

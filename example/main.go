package main

import (
	"flag"
	"fmt"
	"os"

	strview "StrView"
	"StrView/abi"
	"StrView/intern"
	"StrView/utf8x"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

type report struct {
	Len       int          `json:"len"`
	ValidUTF8 bool         `json:"valid_utf8"`
	Error     *decodeError `json:"error,omitempty"`
	Lossy     string       `json:"lossy"`
	Hash      uint64       `json:"hash"`
}

// decodeError mirrors utf8x.DecodeError so that offset 0 and a truncated
// tail (len 0) still show up in the report.
type decodeError struct {
	Offset int `json:"offset"`
	Len    int `json:"len"`
}

func inspect(v strview.View) report {
	r := report{
		Len:   v.Len(),
		Lossy: v.LossyText(),
		Hash:  v.Sum64(),
	}
	if _, err := v.Text(); err != nil {
		e := err.(*utf8x.DecodeError)
		r.Error = &decodeError{Offset: e.Offset, Len: e.Len}
	} else {
		r.ValidUTF8 = true
	}
	return r
}

func main() {
	text := flag.String("s", "A string from C++", "text to view")
	file := flag.String("f", "", "file to view")
	lib := flag.String("lib", "", "path to a native runtime shim library")
	flag.Parse()

	if *lib != "" {
		rt, err := abi.OpenNative(*lib)
		if err != nil {
			logrus.Fatalf("open native runtime: %v", err)
		}
		strview.DefaultRuntime = rt
	}

	owned := strview.NewOwned(*text)
	view := owned.View()
	logrus.Infof("view over %q: len=%d equal=%v", *text, view.Len(), view.EqualString(*text))

	samples := []strview.View{view, strview.New([]byte{0xFF, 0xFE})}
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			logrus.Fatalf("read %s: %v", *file, err)
		}
		samples = append(samples, strview.New(data))
	}

	table := intern.New(intern.DefaultOptions)
	defer table.Close()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, v := range samples {
		table.InternView(v)
		if err := enc.Encode(inspect(v)); err != nil {
			logrus.Fatalf("encode report: %v", err)
		}
	}

	fmt.Println(table.Stats())
}

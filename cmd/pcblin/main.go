// Command pcblin compiles an HCL board-layer description into a Gerber X2
// photoplot file.
//
// Usage:
//
//	pcblin [-o layer.gbr] [-checksum] board.hcl
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/xdevs23/pcblin"
	"github.com/xdevs23/pcblin/internal/boardspec"
)

func main() {
	output := flag.String("o", "", "output file (default: input name with .gbr extension)")
	checksum := flag.Bool("checksum", true, "append an .MD5 content checksum attribute")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()
	defer klog.Flush()

	if flag.NArg() != 1 {
		klog.Fatalf("usage: pcblin [-o output.gbr] board.hcl")
	}
	input := flag.Arg(0)

	out := *output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".gbr"
	}

	board, err := boardspec.Load(input)
	if err != nil {
		klog.Fatalf("loading board: %v", err)
	}
	klog.Infof("loaded %s: %d apertures, %d flashes, %d traces, %d regions",
		input, len(board.Apertures), len(board.Flashes), len(board.Traces), len(board.Regions))

	doc, err := boardspec.Compile(board)
	if err != nil {
		klog.Fatalf("compiling board: %v", err)
	}
	if *checksum {
		if err := pcblin.Checksum(doc); err != nil {
			klog.Fatalf("computing checksum: %v", err)
		}
	}

	if err := os.WriteFile(out, []byte(doc.Serialize()), 0o644); err != nil {
		klog.Fatalf("writing %s: %v", out, err)
	}
	klog.Infof("wrote %s (%d blocks)", out, doc.Len())
}

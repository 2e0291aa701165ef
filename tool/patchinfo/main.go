package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/davecgh/go-spew/spew"

	"crylauncher/internal/arch"
	"crylauncher/internal/catalog"
	"crylauncher/internal/convert"
	"crylauncher/internal/mempatch"
	"crylauncher/internal/patch/json"
	"crylauncher/internal/system"
)

func main() {
	parser := argparse.NewParser("patchinfo", "list the patch catalog of one game build")
	build := parser.Int("b", "build", &argparse.Options{
		Required: true,
		Help:     "game build number",
	})
	variantStr := parser.String("a", "arch", &argparse.Options{
		Default: arch.Current.String(),
		Help:    "architecture variant, 386 or amd64",
	})
	capFilter := parser.String("c", "capability", &argparse.Options{
		Help: "only list this capability",
	})
	jsonOut := parser.Flag("j", "json", &argparse.Options{
		Help: "print machine readable output",
	})
	verbose := parser.Flag("v", "verbose", &argparse.Options{
		Help: "dump raw operation values",
	})
	err := parser.Parse(os.Args)
	system.CheckError(err)

	variant, err := arch.Parse(*variantStr)
	system.CheckError(err)

	infos := collect(*build, variant, *capFilter)
	switch {
	case *jsonOut:
		data, err := json.Marshal(infos)
		system.CheckError(err)
		fmt.Println(string(data))
	case *verbose:
		for _, info := range infos {
			fmt.Printf("%s %s\n", info.Target, info.Capability)
			ops, err := catalog.Default().Lookup(
				mempatch.Capability(info.Capability), variant, *build,
			)
			system.CheckError(err)
			spew.Dump(ops)
		}
	default:
		printTable(infos)
	}
}

// OpInfo describes one operation of a capability for one exact build.
type OpInfo struct {
	Kind   string `json:"kind"`
	Offset string `json:"offset"`
	Size   int    `json:"size"`
	Data   string `json:"data,omitempty"`
}

// Info groups the operations of one capability.
type Info struct {
	Target     string   `json:"target"`
	Capability string   `json:"capability"`
	Ops        []OpInfo `json:"ops"`
}

func collect(build int, variant arch.Variant, capFilter string) []Info {
	infos := make([]Info, 0, 18)
	for _, target := range catalog.Targets() {
		for _, cap := range target.Capabilities {
			if capFilter != "" && capFilter != string(cap) {
				continue
			}
			ops, err := catalog.Default().Lookup(cap, variant, build)
			system.CheckError(err)
			if len(ops) == 0 {
				continue
			}
			info := Info{
				Target:     target.Name,
				Capability: string(cap),
			}
			for _, op := range ops {
				info.Ops = append(info.Ops, describeOp(op, variant))
			}
			infos = append(infos, info)
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Target != infos[j].Target {
			return infos[i].Target < infos[j].Target
		}
		return infos[i].Capability < infos[j].Capability
	})
	return infos
}

func describeOp(op mempatch.Op, variant arch.Variant) OpInfo {
	info := OpInfo{Kind: op.Kind()}
	switch op := op.(type) {
	case mempatch.NopFill:
		info.Offset = fmt.Sprintf("0x%X", op.Offset)
		info.Size = op.Size
	case mempatch.Overwrite:
		info.Offset = fmt.Sprintf("0x%X", op.Offset)
		info.Size = len(op.Data)
		info.Data = convert.OutputBytes(op.Data)
	case mempatch.Trampoline:
		info.Offset = fmt.Sprintf("0x%X", op.Offset)
		info.Size = len(op.Template)
		info.Data = convert.OutputBytes(op.Template)
	case mempatch.VTableNeuter:
		info.Offset = fmt.Sprintf("0x%X", op.Offset)
		info.Size = op.Total * variant.PointerSize()
		info.Data = fmt.Sprintf("keep %d of %d entries", op.Keep, op.Total)
	}
	return info
}

func printTable(infos []Info) {
	for _, info := range infos {
		fmt.Printf("%s %s\n", info.Target, info.Capability)
		for _, op := range info.Ops {
			line := fmt.Sprintf("  %-13s %s, %d bytes", op.Kind, op.Offset, op.Size)
			if op.Data != "" && !strings.Contains(op.Data, "\n") {
				line += ", " + op.Data
			}
			fmt.Println(line)
		}
	}
}
